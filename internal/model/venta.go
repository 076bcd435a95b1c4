package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta binds one cliente to one lote within one proyecto.
//
// MontoTotal, ClienteID, LoteID, ProyectoID, MonedaID and NroCuotas are
// write-once at creation. FechaContrato starts null and is written exactly
// once, after the sale is fully paid. The amounts owed are never stored:
// they are derived from the abono ledger on every read.
type Venta struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID     uuid.UUID `gorm:"type:uuid;not null;index"`
	LoteID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProyectoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EstadoVentaID uuid.UUID `gorm:"type:uuid;not null"`
	MonedaID      uuid.UUID `gorm:"type:uuid;not null"`
	FechaContrato *time.Time `gorm:"type:date"`
	// NroCuotas = 1 denotes venta al contado; nil when no plan was agreed yet.
	NroCuotas  *int
	MontoTotal decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Auditable

	Cliente     *Cliente     `gorm:"foreignKey:ClienteID"`
	Lote        *Lote        `gorm:"foreignKey:LoteID"`
	Proyecto    *Proyecto    `gorm:"foreignKey:ProyectoID"`
	EstadoVenta *EstadoVenta `gorm:"foreignKey:EstadoVentaID"`
	Moneda      *Moneda      `gorm:"foreignKey:MonedaID"`
	Abonos      []Abono      `gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "ventas" }

// EstadoNombre returns the sale-state name, empty when not preloaded.
func (v *Venta) EstadoNombre() string {
	if v.EstadoVenta == nil {
		return ""
	}
	return v.EstadoVenta.Nombre
}
