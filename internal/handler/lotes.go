package handler

import (
	"net/http"

	"inmobiliaria/internal/apierror"
	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LotesHandler struct{ svc service.LoteService }

func NewLotesHandler(svc service.LoteService) *LotesHandler {
	return &LotesHandler{svc: svc}
}

// Crear POST /api/lotes
func (h *LotesHandler) Crear(c *gin.Context) {
	var req dto.LoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /api/lotes
func (h *LotesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar lotes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarActivos GET /api/lotes/activos?search=
func (h *LotesHandler) ListarActivos(c *gin.Context) {
	resp, err := h.svc.ListarActivos(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar lotes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarDisponibles GET /api/lotes/disponibles?proyectoId=
// Cascada del formulario de venta: solo lotes en estado Disponible. El
// proyecto puede venir en la ruta o como query; sin proyecto se listan los
// disponibles de todos.
func (h *LotesHandler) ListarDisponibles(c *gin.Context) {
	raw := c.Param("proyectoId")
	if raw == "" {
		raw = c.Query("proyectoId")
	}
	proyectoID := uuid.Nil
	if raw != "" {
		var err error
		proyectoID, err = uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
			return
		}
	}
	resp, err := h.svc.ListarDisponibles(c.Request.Context(), proyectoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar lotes disponibles"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorProyecto GET /api/lotes/buscar/proyecto/:proyectoId
func (h *LotesHandler) BuscarPorProyecto(c *gin.Context) {
	proyectoID, err := uuid.Parse(c.Param("proyectoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, svcErr := h.svc.ListarPorProyecto(c.Request.Context(), proyectoID)
	if svcErr != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar lotes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorEstado GET /api/lotes/buscar/estado?estado=<nombre>
// La pantalla de búsqueda manda el nombre del estado; también se acepta la
// forma /buscar/estado/:estadoLoteId con el id del catálogo.
func (h *LotesHandler) BuscarPorEstado(c *gin.Context) {
	if raw := c.Param("estadoLoteId"); raw != "" {
		estadoID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
			return
		}
		resp, svcErr := h.svc.ListarPorEstado(c.Request.Context(), estadoID)
		if svcErr != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar lotes"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	nombre := c.Query("estado")
	if nombre == "" {
		c.JSON(http.StatusBadRequest, apierror.New("estado requerido"))
		return
	}
	resp, err := h.svc.ListarPorEstadoNombre(c.Request.Context(), nombre)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar lotes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/lotes/:id
func (h *LotesHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT /api/lotes/:id
func (h *LotesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.LoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Actualizar(c.Request.Context(), id, req)
	if svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/lotes/:id
func (h *LotesHandler) Eliminar(c *gin.Context) {
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
