package dto

import "inmobiliaria/internal/model"

type ProyectoRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=3"`
	Descripcion string `json:"descripcion" validate:"max=255"`
	DistritoID  string `json:"distritoId" validate:"required,uuid"`
}

// ProyectoResponse denormalizes the full geographic hierarchy so the SPA can
// render and pre-select cascading location dropdowns without extra requests.
type ProyectoResponse struct {
	ProyectoID         string `json:"proyectoId"`
	Nombre             string `json:"nombre"`
	Descripcion        string `json:"descripcion"`
	DistritoID         string `json:"distritoId"`
	DistritoNombre     string `json:"distritoNombre"`
	ProvinciaID        string `json:"provinciaId"`
	ProvinciaNombre    string `json:"provinciaNombre"`
	DepartamentoID     string `json:"departamentoId"`
	DepartamentoNombre string `json:"departamentoNombre"`
	TotalLotes         int64  `json:"totalLotes"`
	Activo             bool   `json:"activo"`
}

func ProyectoToResponse(p *model.Proyecto, totalLotes int64) ProyectoResponse {
	resp := ProyectoResponse{
		ProyectoID:  p.ID.String(),
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		DistritoID:  p.DistritoID.String(),
		TotalLotes:  totalLotes,
		Activo:      p.Activo(),
	}
	if d := p.Distrito; d != nil {
		resp.DistritoNombre = d.Nombre
		resp.ProvinciaID = d.ProvinciaID.String()
		if pr := d.Provincia; pr != nil {
			resp.ProvinciaNombre = pr.Nombre
			resp.DepartamentoID = pr.DepartamentoID.String()
			if dep := pr.Departamento; dep != nil {
				resp.DepartamentoNombre = dep.Nombre
			}
		}
	}
	return resp
}
