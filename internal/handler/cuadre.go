package handler

import (
	"fmt"
	"net/http"
	"time"

	"cuadre/internal/apierror"
	"cuadre/internal/service"

	"github.com/gin-gonic/gin"
)

type CuadreHandler struct{ svc service.ReporteService }

func NewCuadreHandler(svc service.ReporteService) *CuadreHandler {
	return &CuadreHandler{svc: svc}
}

// fechaParam parses the :fecha path segment. Writes the error response and
// returns false when the segment is not an ISO date.
func fechaParam(c *gin.Context) (time.Time, bool) {
	fecha, err := time.Parse("2006-01-02", c.Param("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Fecha inválida, se espera AAAA-MM-DD"))
		return time.Time{}, false
	}
	return fecha, true
}

// Reporte godoc
// @Summary Reporte de cuadre del dia completo
// @Tags cuadre
// @Produce json
// @Security BearerAuth
// @Param fecha path string true "Fecha AAAA-MM-DD"
// @Success 200 {object} recon.ReporteDia
// @Failure 400 {object} apierror.APIError
// @Router /v1/cuadre/{fecha} [get]
func (h *CuadreHandler) Reporte(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	rep, err := h.svc.Reporte(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, rep)
}

// Resumen returns the status-bar tuple: total amount + compact one-liner.
func (h *CuadreHandler) Resumen(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Resumen(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Detalle returns the verbose audit view as text-in-JSON.
func (h *CuadreHandler) Detalle(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Detalle(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF streams the audit report as a PDF attachment.
func (h *CuadreHandler) PDF(c *gin.Context) {
	fecha, ok := fechaParam(c)
	if !ok {
		return
	}
	data, err := h.svc.PDF(c.Request.Context(), fecha)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	nombre := fmt.Sprintf("cuadre_%s.pdf", fecha.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
