package model

import "github.com/google/uuid"

// Proyecto groups lots under one geographic location (distrito).
type Proyecto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"uniqueIndex;not null"`
	Descripcion string
	DistritoID  uuid.UUID `gorm:"type:uuid;not null"`
	Auditable

	Distrito *Distrito `gorm:"foreignKey:DistritoID"`
	Lotes    []Lote    `gorm:"foreignKey:ProyectoID"`
}

func (Proyecto) TableName() string { return "proyectos" }
