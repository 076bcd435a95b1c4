package dto

import "inmobiliaria/internal/model"

// CatalogoRequest covers creation and update of every reference catalog.
// Simbolo only applies to monedas and is ignored elsewhere.
type CatalogoRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=60"`
	Descripcion string `json:"descripcion" validate:"max=255"`
	Simbolo     string `json:"simbolo" validate:"max=10"`
}

// Each catalog keeps its own response type because the SPA expects a
// per-entity id key (tipoDocumentoId, estadoVentaId, ...).

type TipoDocumentoResponse struct {
	TipoDocumentoID   string  `json:"tipoDocumentoId"`
	Nombre            string  `json:"nombre"`
	Descripcion       string  `json:"descripcion"`
	FechaCreacion     string  `json:"fechaCreacion"`
	FechaModificacion string  `json:"fechaModificacion"`
	FechaEliminacion  *string `json:"fechaEliminacion"`
}

func TipoDocumentoToResponse(m *model.TipoDocumento) any {
	return TipoDocumentoResponse{
		TipoDocumentoID:   m.ID.String(),
		Nombre:            m.Nombre,
		Descripcion:       m.Descripcion,
		FechaCreacion:     fechaISO(m.FechaCreacion),
		FechaModificacion: fechaISO(m.FechaModificacion),
		FechaEliminacion:  fechaISOPtr(m.FechaEliminacion),
	}
}

type TipoLoteResponse struct {
	TipoLoteID        string  `json:"tipoLoteId"`
	Nombre            string  `json:"nombre"`
	Descripcion       string  `json:"descripcion"`
	FechaCreacion     string  `json:"fechaCreacion"`
	FechaModificacion string  `json:"fechaModificacion"`
	FechaEliminacion  *string `json:"fechaEliminacion"`
}

func TipoLoteToResponse(m *model.TipoLote) any {
	return TipoLoteResponse{
		TipoLoteID:        m.ID.String(),
		Nombre:            m.Nombre,
		Descripcion:       m.Descripcion,
		FechaCreacion:     fechaISO(m.FechaCreacion),
		FechaModificacion: fechaISO(m.FechaModificacion),
		FechaEliminacion:  fechaISOPtr(m.FechaEliminacion),
	}
}

type EstadoLoteResponse struct {
	EstadoLoteID      string  `json:"estadoLoteId"`
	Nombre            string  `json:"nombre"`
	Descripcion       string  `json:"descripcion"`
	FechaCreacion     string  `json:"fechaCreacion"`
	FechaModificacion string  `json:"fechaModificacion"`
	FechaEliminacion  *string `json:"fechaEliminacion"`
}

func EstadoLoteToResponse(m *model.EstadoLote) any {
	return EstadoLoteResponse{
		EstadoLoteID:      m.ID.String(),
		Nombre:            m.Nombre,
		Descripcion:       m.Descripcion,
		FechaCreacion:     fechaISO(m.FechaCreacion),
		FechaModificacion: fechaISO(m.FechaModificacion),
		FechaEliminacion:  fechaISOPtr(m.FechaEliminacion),
	}
}

type EstadoVentaResponse struct {
	EstadoVentaID     string  `json:"estadoVentaId"`
	Nombre            string  `json:"nombre"`
	Descripcion       string  `json:"descripcion"`
	FechaCreacion     string  `json:"fechaCreacion"`
	FechaModificacion string  `json:"fechaModificacion"`
	FechaEliminacion  *string `json:"fechaEliminacion"`
}

func EstadoVentaToResponse(m *model.EstadoVenta) any {
	return EstadoVentaResponse{
		EstadoVentaID:     m.ID.String(),
		Nombre:            m.Nombre,
		Descripcion:       m.Descripcion,
		FechaCreacion:     fechaISO(m.FechaCreacion),
		FechaModificacion: fechaISO(m.FechaModificacion),
		FechaEliminacion:  fechaISOPtr(m.FechaEliminacion),
	}
}

type MonedaResponse struct {
	MonedaID          string  `json:"monedaId"`
	Nombre            string  `json:"nombre"`
	Simbolo           string  `json:"simbolo"`
	Descripcion       string  `json:"descripcion"`
	FechaCreacion     string  `json:"fechaCreacion"`
	FechaModificacion string  `json:"fechaModificacion"`
	FechaEliminacion  *string `json:"fechaEliminacion"`
}

func MonedaToResponse(m *model.Moneda) any {
	return MonedaResponse{
		MonedaID:          m.ID.String(),
		Nombre:            m.Nombre,
		Simbolo:           m.Simbolo,
		Descripcion:       m.Descripcion,
		FechaCreacion:     fechaISO(m.FechaCreacion),
		FechaModificacion: fechaISO(m.FechaModificacion),
		FechaEliminacion:  fechaISOPtr(m.FechaEliminacion),
	}
}

// RolResponse uses the usuarioRolId key the SPA's rol service expects.
type RolResponse struct {
	UsuarioRolID      string  `json:"usuarioRolId"`
	Nombre            string  `json:"nombre"`
	Activo            bool    `json:"activo"`
	FechaCreacion     string  `json:"fechaCreacion"`
	FechaModificacion string  `json:"fechaModificacion"`
	FechaEliminacion  *string `json:"fechaEliminacion"`
}

func RolToResponse(m *model.Rol) any {
	return RolResponse{
		UsuarioRolID:      m.ID.String(),
		Nombre:            m.Nombre,
		Activo:            m.Activo(),
		FechaCreacion:     fechaISO(m.FechaCreacion),
		FechaModificacion: fechaISO(m.FechaModificacion),
		FechaEliminacion:  fechaISOPtr(m.FechaEliminacion),
	}
}
