package model

import "github.com/google/uuid"

// Usuario stores system users. Authorization is role-based through the
// many-to-many roles relation (PROPIETARIO / ADMIN / VENDEDOR).
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Auditable

	Roles []Rol `gorm:"many2many:usuario_roles"`
}

func (Usuario) TableName() string { return "usuarios" }

// RolNombres returns the role names for JWT claims and responses.
func (u *Usuario) RolNombres() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Nombre)
	}
	return names
}

// TieneRol reports whether the user carries the given role name.
func (u *Usuario) TieneRol(nombre string) bool {
	for _, r := range u.Roles {
		if r.Nombre == nombre {
			return true
		}
	}
	return false
}
