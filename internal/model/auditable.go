package model

import "time"

// Auditable carries the audit timestamps shared by every entity.
// FechaEliminacion doubles as the soft-delete marker: a non-nil value means
// the row is logically deleted and excluded from all default listings.
type Auditable struct {
	FechaCreacion     time.Time  `gorm:"autoCreateTime"`
	FechaModificacion time.Time  `gorm:"autoUpdateTime"`
	FechaEliminacion  *time.Time `gorm:"index"`
}

// Activo reports whether the row is logically active.
func (a Auditable) Activo() bool { return a.FechaEliminacion == nil }
