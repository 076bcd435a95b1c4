package service

import (
	"context"
	"errors"

	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeografiaService expone la jerarquía departamento → provincia → distrito
// para los selectores en cascada.
type GeografiaService interface {
	ListarDepartamentos(ctx context.Context) ([]dto.DepartamentoResponse, error)
	ListarProvincias(ctx context.Context, departamentoID uuid.UUID) ([]dto.ProvinciaResponse, error)
	ListarDistritos(ctx context.Context, provinciaID uuid.UUID) ([]dto.DistritoResponse, error)
}

type geografiaService struct {
	repo repository.GeografiaRepository
}

func NewGeografiaService(repo repository.GeografiaRepository) GeografiaService {
	return &geografiaService{repo: repo}
}

func (s *geografiaService) ListarDepartamentos(ctx context.Context) ([]dto.DepartamentoResponse, error) {
	items, err := s.repo.ListDepartamentos(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.DepartamentoResponse, 0, len(items))
	for i := range items {
		result = append(result, dto.DepartamentoToResponse(&items[i]))
	}
	return result, nil
}

func (s *geografiaService) ListarProvincias(ctx context.Context, departamentoID uuid.UUID) ([]dto.ProvinciaResponse, error) {
	items, err := s.repo.ListProvincias(ctx, departamentoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("departamento no encontrado")
		}
		return nil, err
	}
	result := make([]dto.ProvinciaResponse, 0, len(items))
	for i := range items {
		result = append(result, dto.ProvinciaToResponse(&items[i]))
	}
	return result, nil
}

func (s *geografiaService) ListarDistritos(ctx context.Context, provinciaID uuid.UUID) ([]dto.DistritoResponse, error) {
	items, err := s.repo.ListDistritos(ctx, provinciaID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.DistritoResponse, 0, len(items))
	for i := range items {
		result = append(result, dto.DistritoToResponse(&items[i]))
	}
	return result, nil
}
