package model

import "github.com/google/uuid"

// Geographic hierarchy: departamento → provincia → distrito.
// Read-only reference data loaded at deployment time.

type Departamento struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`
}

func (Departamento) TableName() string { return "departamentos" }

type Provincia struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"index;not null"`
	DepartamentoID uuid.UUID `gorm:"type:uuid;index;not null"`

	Departamento *Departamento `gorm:"foreignKey:DepartamentoID"`
}

func (Provincia) TableName() string { return "provincias" }

type Distrito struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"index;not null"`
	ProvinciaID uuid.UUID `gorm:"type:uuid;index;not null"`

	Provincia *Provincia `gorm:"foreignKey:ProvinciaID"`
}

func (Distrito) TableName() string { return "distritos" }
