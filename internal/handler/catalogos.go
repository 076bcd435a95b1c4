package handler

import (
	"net/http"

	"inmobiliaria/internal/apierror"
	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogoHandler serves one reference catalog. The generic parameter keeps
// one handler implementation for the six catalogs; toResponse supplies the
// per-entity JSON shape (tipoDocumentoId, estadoVentaId, ...).
type CatalogoHandler[M any] struct {
	svc        service.CatalogoService[M]
	toResponse func(*M) any
}

func NewCatalogoHandler[M any](svc service.CatalogoService[M], toResponse func(*M) any) *CatalogoHandler[M] {
	return &CatalogoHandler[M]{svc: svc, toResponse: toResponse}
}

func (h *CatalogoHandler[M]) Crear(c *gin.Context) {
	var req dto.CatalogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(m))
}

func (h *CatalogoHandler[M]) Listar(c *gin.Context) {
	items, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar el catálogo"))
		return
	}
	result := make([]any, 0, len(items))
	for i := range items {
		result = append(result, h.toResponse(&items[i]))
	}
	c.JSON(http.StatusOK, result)
}

func (h *CatalogoHandler[M]) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	m, svcErr := h.svc.ObtenerPorID(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(http.StatusNotFound, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, h.toResponse(m))
}

func (h *CatalogoHandler[M]) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.CatalogoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, svcErr := h.svc.Actualizar(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, h.toResponse(m))
}

func (h *CatalogoHandler[M]) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.Eliminar(c.Request.Context(), id); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
