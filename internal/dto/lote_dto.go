package dto

import (
	"inmobiliaria/internal/model"

	"github.com/shopspring/decimal"
)

type LoteRequest struct {
	Nombre       string          `json:"nombre" validate:"required,min=2"`
	Descripcion  string          `json:"descripcion" validate:"max=255"`
	Precio       decimal.Decimal `json:"precio" validate:"required"`
	Area         decimal.Decimal `json:"area" validate:"required"`
	EstadoLoteID string          `json:"estadoLoteId" validate:"required,uuid"`
	TipoLoteID   *string         `json:"tipoLoteId" validate:"omitempty,uuid"`
	ProyectoID   string          `json:"proyectoId" validate:"required,uuid"`
	Direccion    string          `json:"direccion" validate:"max=255"`
}

type LoteResponse struct {
	LoteID           string          `json:"loteId"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	Precio           decimal.Decimal `json:"precio"`
	Area             decimal.Decimal `json:"area"`
	EstadoLoteNombre string          `json:"estadoLoteNombre"`
	Direccion        string          `json:"direccion"`
	Activo           bool            `json:"activo"`
	ProyectoID       string          `json:"proyectoId"`
	ProyectoNombre   string          `json:"proyectoNombre"`
	DistritoID       string          `json:"distritoId"`
	DistritoNombre   string          `json:"distritoNombre"`
	ProvinciaID      string          `json:"provinciaId"`
	DepartamentoID   string          `json:"departamentoId"`
}

func LoteToResponse(l *model.Lote) LoteResponse {
	resp := LoteResponse{
		LoteID:           l.ID.String(),
		Nombre:           l.Nombre,
		Descripcion:      l.Descripcion,
		Precio:           l.Precio,
		Area:             l.Area,
		EstadoLoteNombre: l.EstadoNombre(),
		Direccion:        l.Direccion,
		Activo:           l.Activo(),
		ProyectoID:       l.ProyectoID.String(),
	}
	if p := l.Proyecto; p != nil {
		resp.ProyectoNombre = p.Nombre
		resp.DistritoID = p.DistritoID.String()
		if d := p.Distrito; d != nil {
			resp.DistritoNombre = d.Nombre
			resp.ProvinciaID = d.ProvinciaID.String()
			if pr := d.Provincia; pr != nil {
				resp.DepartamentoID = pr.DepartamentoID.String()
			}
		}
	}
	return resp
}
