package handler

import (
	"net/http"

	"inmobiliaria/internal/apierror"
	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AbonosHandler struct{ svc service.AbonoService }

func NewAbonosHandler(svc service.AbonoService) *AbonosHandler {
	return &AbonosHandler{svc: svc}
}

// Registrar POST /api/abonos
func (h *AbonosHandler) Registrar(c *gin.Context) {
	var req dto.AbonoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorID GET /api/abonos/:id
func (h *AbonosHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ObtenerPorID(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarPorVenta GET /api/abonos/venta/:ventaId
// Devuelve el ledger de la venta, del abono más reciente al más antiguo.
func (h *AbonosHandler) ListarPorVenta(c *gin.Context) {
	ventaID, err := uuid.Parse(c.Param("ventaId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ListarPorVenta(c.Request.Context(), ventaID)
	if svcErr != nil {
		c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
