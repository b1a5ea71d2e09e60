package handler

import (
	"errors"
	"net/http"

	"planiftchop/internal/apierror"
	"planiftchop/internal/dto"
	"planiftchop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DishesHandler struct {
	svc    service.DishService
	userID string
}

func NewDishesHandler(svc service.DishService, userID string) *DishesHandler {
	return &DishesHandler{svc: svc, userID: userID}
}

// Create godoc
// @Summary Créer un plat avec sa recette
// @Tags plats
// @Accept json
// @Produce json
// @Param plat body dto.CreateDishRequest true "Plat"
// @Success 201 {object} dto.DishResponse
// @Router /v1/dishes [post]
func (h *DishesHandler) Create(c *gin.Context) {
	var req dto.CreateDishRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), h.userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary Lister les plats
// @Tags plats
// @Produce json
// @Success 200 {array} dto.DishResponse
// @Router /v1/dishes [get]
func (h *DishesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), h.userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement des plats"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DishesHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement du plat"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DishesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	var req dto.UpdateDishRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DishesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la suppression du plat"))
		return
	}
	c.Status(http.StatusNoContent)
}
