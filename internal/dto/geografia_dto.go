package dto

import "inmobiliaria/internal/model"

type DepartamentoResponse struct {
	DepartamentoID string `json:"departamentoId"`
	Nombre         string `json:"nombre"`
}

func DepartamentoToResponse(m *model.Departamento) DepartamentoResponse {
	return DepartamentoResponse{DepartamentoID: m.ID.String(), Nombre: m.Nombre}
}

type ProvinciaResponse struct {
	ProvinciaID    string `json:"provinciaId"`
	Nombre         string `json:"nombre"`
	DepartamentoID string `json:"departamentoId"`
}

func ProvinciaToResponse(m *model.Provincia) ProvinciaResponse {
	return ProvinciaResponse{
		ProvinciaID:    m.ID.String(),
		Nombre:         m.Nombre,
		DepartamentoID: m.DepartamentoID.String(),
	}
}

type DistritoResponse struct {
	DistritoID  string `json:"distritoId"`
	Nombre      string `json:"nombre"`
	ProvinciaID string `json:"provinciaId"`
}

func DistritoToResponse(m *model.Distrito) DistritoResponse {
	return DistritoResponse{
		DistritoID:  m.ID.String(),
		Nombre:      m.Nombre,
		ProvinciaID: m.ProvinciaID.String(),
	}
}
