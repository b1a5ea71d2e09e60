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

type PlansHandler struct {
	svc    service.PlanService
	userID string
}

func NewPlansHandler(svc service.PlanService, userID string) *PlansHandler {
	return &PlansHandler{svc: svc, userID: userID}
}

func (h *PlansHandler) Create(c *gin.Context) {
	var req dto.CreateMealPlanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), h.userID, req)
	if err != nil {
		if errors.Is(err, service.ErrDishNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Planning des repas d'une période
// @Tags         planning
// @Produce      json
// @Param        start query string false "Date de début (YYYY-MM-DD, défaut lundi de la semaine)"
// @Param        end   query string false "Date de fin (YYYY-MM-DD, défaut dimanche de la semaine)"
// @Success      200 {array} dto.MealPlanResponse
// @Router       /v1/plans [get]
func (h *PlansHandler) List(c *gin.Context) {
	var filter dto.MealPlanFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.ListRange(c.Request.Context(), h.userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement du planning"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetPrepared marks a planned meal as cooked (or not). Prepared meals no
// longer contribute to the shopping list.
func (h *PlansHandler) SetPrepared(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	var req dto.SetPreparedRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SetPrepared(c.Request.Context(), id, *req.Prepared)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la mise à jour du repas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PlansHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la suppression du repas"))
		return
	}
	c.Status(http.StatusNoContent)
}
