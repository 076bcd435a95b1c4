package model

import (
	"github.com/google/uuid"
)

// Estado names carry fixed semantics in the venta lifecycle even though the
// rows themselves are data-driven catalog entries.
const (
	EstadoVentaPendiente  = "Pendiente"
	EstadoVentaConfirmada = "Confirmada"
	EstadoVentaCancelada  = "Cancelada"

	EstadoLoteDisponible = "Disponible"
	EstadoLoteReservado  = "Reservado"
	EstadoLoteVendido    = "Vendido"
)

// Role names recognized by the authorization layer.
const (
	RolPropietario = "PROPIETARIO"
	RolAdmin       = "ADMIN"
	RolVendedor    = "VENDEDOR"
)

// CatalogoBase is the common shape of every reference catalog
// (tipos de documento, estados de lote/venta, monedas, roles).
type CatalogoBase struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion string
	Auditable
}

// Base exposes the embedded struct so generic repositories and services can
// operate over any catalog type.
func (c *CatalogoBase) Base() *CatalogoBase { return c }

type TipoDocumento struct{ CatalogoBase }

func (TipoDocumento) TableName() string { return "tipos_documento" }

type TipoLote struct{ CatalogoBase }

func (TipoLote) TableName() string { return "tipos_lote" }

type EstadoLote struct{ CatalogoBase }

func (EstadoLote) TableName() string { return "estados_lote" }

type EstadoVenta struct{ CatalogoBase }

func (EstadoVenta) TableName() string { return "estados_venta" }

// Moneda adds a display symbol on top of the common catalog shape.
type Moneda struct {
	CatalogoBase
	Simbolo string
}

func (Moneda) TableName() string { return "monedas" }

func (m *Moneda) SetSimbolo(s string) { m.Simbolo = s }

// Rol is a user role. Stored as a catalog so the UI can manage them, but the
// three names above are the ones the authorization middleware understands.
type Rol struct{ CatalogoBase }

func (Rol) TableName() string { return "roles" }
