package dto

import "inmobiliaria/internal/model"

type UsuarioRequest struct {
	Username string   `json:"username" validate:"required,min=4,max=40"`
	Password string   `json:"password" validate:"omitempty,min=8"`
	Roles    []string `json:"roles" validate:"omitempty,dive,uuid"`
}

// RolResumen is the role shape embedded in usuario responses; the SPA's
// user-management screen needs the id to edit assignments.
type RolResumen struct {
	UsuarioRolID string `json:"usuarioRolId"`
	Nombre       string `json:"nombre"`
	Activo       bool   `json:"activo"`
}

type UsuarioResponse struct {
	UsuarioID         string       `json:"usuarioId"`
	Username          string       `json:"username"`
	Roles             []RolResumen `json:"roles"`
	Activo            bool         `json:"activo"`
	FechaCreacion     string       `json:"fechaCreacion"`
	FechaModificacion string       `json:"fechaModificacion"`
}

func UsuarioToResponse(u *model.Usuario) UsuarioResponse {
	roles := make([]RolResumen, 0, len(u.Roles))
	for i := range u.Roles {
		r := &u.Roles[i]
		roles = append(roles, RolResumen{
			UsuarioRolID: r.ID.String(),
			Nombre:       r.Nombre,
			Activo:       r.Activo(),
		})
	}
	return UsuarioResponse{
		UsuarioID:         u.ID.String(),
		Username:          u.Username,
		Roles:             roles,
		Activo:            u.Activo(),
		FechaCreacion:     fechaISO(u.FechaCreacion),
		FechaModificacion: fechaISO(u.FechaModificacion),
	}
}
