package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente is a prospective or actual lot buyer.
type Cliente struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PrimerNombre      string    `gorm:"not null"`
	SegundoNombre     *string
	ApellidoPaterno   string    `gorm:"not null"`
	ApellidoMaterno   string    `gorm:"not null"`
	TipoDocumentoID   uuid.UUID `gorm:"type:uuid;not null"`
	NumeroDocumento   string    `gorm:"uniqueIndex;not null"`
	Correo            string
	Telefono          string
	IngresosMensuales decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Auditable

	TipoDocumento *TipoDocumento `gorm:"foreignKey:TipoDocumentoID"`
}

func (Cliente) TableName() string { return "clientes" }

// NombreCompleto joins the four name parts, skipping the optional middle name.
func (c *Cliente) NombreCompleto() string {
	parts := []string{c.PrimerNombre}
	if c.SegundoNombre != nil && *c.SegundoNombre != "" {
		parts = append(parts, *c.SegundoNombre)
	}
	parts = append(parts, c.ApellidoPaterno, c.ApellidoMaterno)
	return strings.Join(parts, " ")
}
