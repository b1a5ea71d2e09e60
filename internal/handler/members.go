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

type MembersHandler struct {
	svc    service.MemberService
	userID string
}

func NewMembersHandler(svc service.MemberService, userID string) *MembersHandler {
	return &MembersHandler{svc: svc, userID: userID}
}

func (h *MembersHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
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

func (h *MembersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), h.userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du chargement des membres"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MembersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalide"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la suppression du membre"))
		return
	}
	c.Status(http.StatusNoContent)
}
