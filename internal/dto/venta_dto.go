package dto

import (
	"time"

	"inmobiliaria/internal/model"

	"github.com/shopspring/decimal"
)

type VentaRequest struct {
	ClienteID     string          `json:"clienteId" validate:"required,uuid"`
	LoteID        string          `json:"loteId" validate:"required,uuid"`
	ProyectoID    string          `json:"proyectoId" validate:"required,uuid"`
	EstadoVentaID string          `json:"estadoVentaId" validate:"required,uuid"`
	MonedaID      string          `json:"monedaId" validate:"required,uuid"`
	FechaContrato *string         `json:"fechaContrato" validate:"omitempty,datetime=2006-01-02"`
	NroCuotas     *int            `json:"nroCuotas" validate:"omitempty,min=1"`
	MontoTotal    decimal.Decimal `json:"montoTotal"`
}

// VentaCapacidades tells the caller which actions the current user may take
// on a sale, so the lifecycle rules live in one place instead of being
// re-derived client side.
type VentaCapacidades struct {
	PuedeEditar             bool `json:"puedeEditar"`
	PuedeCancelar           bool `json:"puedeCancelar"`
	PuedeEliminar           bool `json:"puedeEliminar"`
	PuedeRegistrarAbono     bool `json:"puedeRegistrarAbono"`
	PuedeFijarFechaContrato bool `json:"puedeFijarFechaContrato"`
}

type VentaResponse struct {
	VentaID               string           `json:"ventaId"`
	ClienteID             string           `json:"clienteId"`
	ClienteNombreCompleto string           `json:"clienteNombreCompleto"`
	LoteID                string           `json:"loteId"`
	LoteNombre            string           `json:"loteNombre"`
	ProyectoID            string           `json:"proyectoId"`
	ProyectoNombre        string           `json:"proyectoNombre"`
	EstadoVentaID         string           `json:"estadoVentaId"`
	EstadoVentaNombre     string           `json:"estadoVentaNombre"`
	MonedaID              string           `json:"monedaId"`
	MonedaNombre          string           `json:"monedaNombre"`
	FechaContrato         *string          `json:"fechaContrato"`
	NroCuotas             *int             `json:"nroCuotas"`
	MontoTotal            decimal.Decimal  `json:"montoTotal"`
	MontoAbonado          decimal.Decimal  `json:"montoAbonado"`
	SaldoPendiente        decimal.Decimal  `json:"saldoPendiente"`
	FechaAbono            *string          `json:"fechaAbono"`
	Activo                bool             `json:"activo"`
	Capacidades           VentaCapacidades `json:"capacidades"`
}

// VentaToResponse maps a preloaded sale. The derived amounts and the last
// payment date come from the service because only it knows the payment ledger.
func VentaToResponse(v *model.Venta, montoAbonado, saldoPendiente decimal.Decimal, ultimoAbono *time.Time, cap VentaCapacidades) VentaResponse {
	resp := VentaResponse{
		VentaID:        v.ID.String(),
		ClienteID:      v.ClienteID.String(),
		LoteID:         v.LoteID.String(),
		ProyectoID:     v.ProyectoID.String(),
		EstadoVentaID:  v.EstadoVentaID.String(),
		MonedaID:       v.MonedaID.String(),
		NroCuotas:      v.NroCuotas,
		MontoTotal:     v.MontoTotal,
		MontoAbonado:   montoAbonado,
		SaldoPendiente: saldoPendiente,
		Activo:         v.Activo(),
		Capacidades:    cap,
	}
	if v.Cliente != nil {
		resp.ClienteNombreCompleto = v.Cliente.NombreCompleto()
	}
	if v.Lote != nil {
		resp.LoteNombre = v.Lote.Nombre
	}
	if v.Proyecto != nil {
		resp.ProyectoNombre = v.Proyecto.Nombre
	}
	if v.EstadoVenta != nil {
		resp.EstadoVentaNombre = v.EstadoVenta.Nombre
	}
	if v.Moneda != nil {
		resp.MonedaNombre = v.Moneda.Nombre
	}
	if v.FechaContrato != nil {
		fc := v.FechaContrato.Format(FormatoFecha)
		resp.FechaContrato = &fc
	}
	if ultimoAbono != nil {
		fa := ultimoAbono.Format(FormatoFechaHora)
		resp.FechaAbono = &fa
	}
	return resp
}
