package service

import (
	"context"
	"errors"

	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, search string) ([]dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	tipoDocID, err := uuid.Parse(req.TipoDocumentoID)
	if err != nil {
		return nil, errors.New("tipoDocumentoId inválido")
	}

	existing, err := s.repo.FindByNumeroDocumento(ctx, req.NumeroDocumento)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && existing != nil {
		return nil, errors.New("ya existe un cliente con ese número de documento")
	}

	c := &model.Cliente{
		PrimerNombre:      req.PrimerNombre,
		SegundoNombre:     req.SegundoNombre,
		ApellidoPaterno:   req.ApellidoPaterno,
		ApellidoMaterno:   req.ApellidoMaterno,
		TipoDocumentoID:   tipoDocID,
		NumeroDocumento:   req.NumeroDocumento,
		Correo:            req.Correo,
		Telefono:          req.Telefono,
		IngresosMensuales: req.IngresosMensuales,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	// Reload with tipoDocumento for the response.
	creado, err := s.repo.FindByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.ClienteToResponse(creado)
	return &resp, nil
}

func (s *clienteService) Listar(ctx context.Context, search string) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		result = append(result, dto.ClienteToResponse(&clientes[i]))
	}
	return result, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("cliente no encontrado")
		}
		return nil, err
	}
	resp := dto.ClienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("cliente no encontrado")
		}
		return nil, err
	}

	if req.NumeroDocumento != c.NumeroDocumento {
		existing, err := s.repo.FindByNumeroDocumento(ctx, req.NumeroDocumento)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil && existing != nil && existing.ID != id {
			return nil, errors.New("ya existe un cliente con ese número de documento")
		}
	}

	tipoDocID, err := uuid.Parse(req.TipoDocumentoID)
	if err != nil {
		return nil, errors.New("tipoDocumentoId inválido")
	}

	c.PrimerNombre = req.PrimerNombre
	c.SegundoNombre = req.SegundoNombre
	c.ApellidoPaterno = req.ApellidoPaterno
	c.ApellidoMaterno = req.ApellidoMaterno
	c.TipoDocumentoID = tipoDocID
	c.NumeroDocumento = req.NumeroDocumento
	c.Correo = req.Correo
	c.Telefono = req.Telefono
	c.IngresosMensuales = req.IngresosMensuales
	c.TipoDocumento = nil

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ClienteToResponse(actualizado)
	return &resp, nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("cliente no encontrado")
		}
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}
