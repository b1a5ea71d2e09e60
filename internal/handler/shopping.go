package handler

import (
	"fmt"
	"net/http"
	"time"

	"planiftchop/internal/apierror"
	"planiftchop/internal/dto"
	"planiftchop/internal/infra"
	"planiftchop/internal/report"
	"planiftchop/internal/service"
	"planiftchop/internal/shopping"

	"github.com/gin-gonic/gin"
)

type ShoppingHandler struct {
	svc    service.ShoppingService
	userID string
}

func NewShoppingHandler(svc service.ShoppingService, userID string) *ShoppingHandler {
	return &ShoppingHandler{svc: svc, userID: userID}
}

// Get godoc
// @Summary      Liste de courses dérivée du planning et du stock
// @Tags         courses
// @Produce      json
// @Param        start query string false "Date de début (YYYY-MM-DD, défaut lundi de la semaine)"
// @Param        end   query string false "Date de fin (YYYY-MM-DD, défaut dimanche de la semaine)"
// @Success      200 {object} dto.ShoppingListResponse
// @Router       /v1/shopping-list [get]
func (h *ShoppingHandler) Get(c *gin.Context) {
	var filter dto.ShoppingListFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Generate(c.Request.Context(), h.userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du calcul de la liste de courses"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportPDF streams the list as an A4 PDF for printing.
func (h *ShoppingHandler) ExportPDF(c *gin.Context) {
	grouped, start, end, ok := h.grouped(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=liste-courses_%s_%s.pdf", start, end))
	c.Header("Content-Type", "application/pdf")
	if err := infra.WriteShoppingListPDF(c.Writer, grouped, start, end, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la génération du PDF"))
		return
	}
}

// ExportXLSX streams the list as an Excel workbook.
func (h *ShoppingHandler) ExportXLSX(c *gin.Context) {
	grouped, start, end, ok := h.grouped(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=liste-courses_%s_%s.xlsx", start, end))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	if err := infra.WriteShoppingListXLSX(c.Writer, grouped); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors de la génération du fichier Excel"))
		return
	}
}

func (h *ShoppingHandler) grouped(c *gin.Context) (map[string][]shopping.Entry, string, string, bool) {
	var filter dto.ShoppingListFilter
	if !bindQueryAndValidate(c, &filter) {
		return nil, "", "", false
	}
	start, end := filter.Start, filter.End
	if start == "" || end == "" {
		weekStart, weekEnd := report.WeekRange(time.Now())
		if start == "" {
			start = weekStart
		}
		if end == "" {
			end = weekEnd
		}
	}

	grouped, err := h.svc.Grouped(c.Request.Context(), h.userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erreur lors du calcul de la liste de courses"))
		return nil, "", "", false
	}
	if grouped == nil {
		grouped = map[string][]shopping.Entry{}
	}
	return grouped, start, end, true
}
