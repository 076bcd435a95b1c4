package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lote is the sellable unit: a parcel of land inside a proyecto.
// Precio is the list price a venta's montoTotal is fixed from at creation.
type Lote struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"index;not null"`
	Descripcion  string
	Precio       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Area         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Direccion    string
	EstadoLoteID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TipoLoteID   *uuid.UUID `gorm:"type:uuid"`
	ProyectoID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Auditable

	EstadoLote *EstadoLote `gorm:"foreignKey:EstadoLoteID"`
	TipoLote   *TipoLote   `gorm:"foreignKey:TipoLoteID"`
	Proyecto   *Proyecto   `gorm:"foreignKey:ProyectoID"`
}

func (Lote) TableName() string { return "lotes" }

// EstadoNombre returns the lot-state name, empty when not preloaded.
func (l *Lote) EstadoNombre() string {
	if l.EstadoLote == nil {
		return ""
	}
	return l.EstadoLote.Nombre
}
