package dto

import (
	"inmobiliaria/internal/model"

	"github.com/shopspring/decimal"
)

type AbonoRequest struct {
	VentaID      string          `json:"ventaId" validate:"required,uuid"`
	MontoAbonado decimal.Decimal `json:"montoAbonado"`
	FechaAbono   string          `json:"fechaAbono" validate:"required"`
}

type AbonoResponse struct {
	AbonoID      string          `json:"abonoId"`
	VentaID      string          `json:"ventaId"`
	MontoAbonado decimal.Decimal `json:"montoAbonado"`
	FechaAbono   string          `json:"fechaAbono"`
}

func AbonoToResponse(a *model.Abono) AbonoResponse {
	return AbonoResponse{
		AbonoID:      a.ID.String(),
		VentaID:      a.VentaID.String(),
		MontoAbonado: a.MontoAbonado,
		FechaAbono:   a.FechaAbono.Format(FormatoFechaHora),
	}
}
