package handler

import (
	"errors"
	"net/http"

	"planiftchop/internal/apierror"
	"planiftchop/internal/dto"
	"planiftchop/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	svc    service.ReportService
	userID string
}

func NewReportsHandler(svc service.ReportService, userID string) *ReportsHandler {
	return &ReportsHandler{svc: svc, userID: userID}
}

// Email godoc
// @Summary      Envoyer le rapport (planning, stock, liste de courses) par email
// @Tags         rapports
// @Accept       json
// @Produce      json
// @Param        rapport body dto.EmailReportRequest true "Rapport"
// @Success      200 {object} dto.EmailReportResponse
// @Router       /v1/reports/email [post]
func (h *ReportsHandler) Email(c *gin.Context) {
	var req dto.EmailReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Send(c.Request.Context(), h.userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNoRecipients) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la préparation du rapport"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
