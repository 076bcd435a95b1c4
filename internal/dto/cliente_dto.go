package dto

import (
	"inmobiliaria/internal/model"

	"github.com/shopspring/decimal"
)

type ClienteRequest struct {
	PrimerNombre      string          `json:"primerNombre" validate:"required,min=2"`
	SegundoNombre     *string         `json:"segundoNombre"`
	ApellidoPaterno   string          `json:"apellidoPaterno" validate:"required,min=2"`
	ApellidoMaterno   string          `json:"apellidoMaterno" validate:"required,min=2"`
	TipoDocumentoID   string          `json:"tipoDocumentoId" validate:"required,uuid"`
	NumeroDocumento   string          `json:"numeroDocumento" validate:"required,min=6,max=20"`
	Correo            string          `json:"correo" validate:"omitempty,email"`
	Telefono          string          `json:"telefono" validate:"max=20"`
	IngresosMensuales decimal.Decimal `json:"ingresosMensuales" validate:"min=0"`
}

// ClienteResponse embeds the full tipoDocumento the SPA renders inline.
type ClienteResponse struct {
	ClienteID         string          `json:"clienteId"`
	PrimerNombre      string          `json:"primerNombre"`
	SegundoNombre     *string         `json:"segundoNombre"`
	ApellidoPaterno   string          `json:"apellidoPaterno"`
	ApellidoMaterno   string          `json:"apellidoMaterno"`
	TipoDocumento     any             `json:"tipoDocumento"`
	NumeroDocumento   string          `json:"numeroDocumento"`
	Correo            string          `json:"correo"`
	Telefono          string          `json:"telefono"`
	IngresosMensuales decimal.Decimal `json:"ingresosMensuales"`
	FechaCreacion     string          `json:"fechaCreacion"`
	FechaModificacion string          `json:"fechaModificacion"`
	FechaEliminacion  *string         `json:"fechaEliminacion"`
}

func ClienteToResponse(c *model.Cliente) ClienteResponse {
	var tipoDoc any
	if c.TipoDocumento != nil {
		tipoDoc = TipoDocumentoToResponse(c.TipoDocumento)
	}
	return ClienteResponse{
		ClienteID:         c.ID.String(),
		PrimerNombre:      c.PrimerNombre,
		SegundoNombre:     c.SegundoNombre,
		ApellidoPaterno:   c.ApellidoPaterno,
		ApellidoMaterno:   c.ApellidoMaterno,
		TipoDocumento:     tipoDoc,
		NumeroDocumento:   c.NumeroDocumento,
		Correo:            c.Correo,
		Telefono:          c.Telefono,
		IngresosMensuales: c.IngresosMensuales,
		FechaCreacion:     fechaISO(c.FechaCreacion),
		FechaModificacion: fechaISO(c.FechaModificacion),
		FechaEliminacion:  fechaISOPtr(c.FechaEliminacion),
	}
}
