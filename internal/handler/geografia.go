package handler

import (
	"net/http"

	"inmobiliaria/internal/apierror"
	"inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GeografiaHandler struct{ svc service.GeografiaService }

func NewGeografiaHandler(svc service.GeografiaService) *GeografiaHandler {
	return &GeografiaHandler{svc: svc}
}

// ListarDepartamentos GET /api/departamentos
func (h *GeografiaHandler) ListarDepartamentos(c *gin.Context) {
	resp, err := h.svc.ListarDepartamentos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar departamentos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarProvincias GET /api/provincias/departamento/:departamentoId
func (h *GeografiaHandler) ListarProvincias(c *gin.Context) {
	id, err := uuid.Parse(c.Param("departamentoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ListarProvincias(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar provincias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarDistritos GET /api/distritos/provincia/:provinciaId
func (h *GeografiaHandler) ListarDistritos(c *gin.Context) {
	id, err := uuid.Parse(c.Param("provinciaId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ListarDistritos(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar distritos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
