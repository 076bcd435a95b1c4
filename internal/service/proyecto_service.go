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

type ProyectoService interface {
	Crear(ctx context.Context, req dto.ProyectoRequest) (*dto.ProyectoResponse, error)
	Listar(ctx context.Context) ([]dto.ProyectoResponse, error)
	// ListarActivos alimenta el selector de proyectos del formulario de
	// venta: solo proyectos no eliminados.
	ListarActivos(ctx context.Context) ([]dto.ProyectoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProyectoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ProyectoRequest) (*dto.ProyectoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type proyectoService struct {
	repo    repository.ProyectoRepository
	geoRepo repository.GeografiaRepository
}

func NewProyectoService(repo repository.ProyectoRepository, geoRepo repository.GeografiaRepository) ProyectoService {
	return &proyectoService{repo: repo, geoRepo: geoRepo}
}

func (s *proyectoService) toResponse(ctx context.Context, p *model.Proyecto) (*dto.ProyectoResponse, error) {
	total, err := s.repo.CountLotes(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.ProyectoToResponse(p, total)
	return &resp, nil
}

func (s *proyectoService) Crear(ctx context.Context, req dto.ProyectoRequest) (*dto.ProyectoResponse, error) {
	distritoID, err := uuid.Parse(req.DistritoID)
	if err != nil {
		return nil, errors.New("distritoId inválido")
	}
	if _, err := s.geoRepo.FindDistritoByID(ctx, distritoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("distrito no encontrado")
		}
		return nil, err
	}

	p := &model.Proyecto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		DistritoID:  distritoID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	creado, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, creado)
}

func (s *proyectoService) listar(ctx context.Context, soloActivos bool) ([]dto.ProyectoResponse, error) {
	var (
		proyectos []model.Proyecto
		err       error
	)
	if soloActivos {
		proyectos, err = s.repo.ListActivos(ctx)
	} else {
		proyectos, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProyectoResponse, 0, len(proyectos))
	for i := range proyectos {
		resp, err := s.toResponse(ctx, &proyectos[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

func (s *proyectoService) Listar(ctx context.Context) ([]dto.ProyectoResponse, error) {
	return s.listar(ctx, false)
}

func (s *proyectoService) ListarActivos(ctx context.Context) ([]dto.ProyectoResponse, error) {
	return s.listar(ctx, true)
}

func (s *proyectoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ProyectoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("proyecto no encontrado")
		}
		return nil, err
	}
	return s.toResponse(ctx, p)
}

func (s *proyectoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ProyectoRequest) (*dto.ProyectoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("proyecto no encontrado")
		}
		return nil, err
	}

	distritoID, err := uuid.Parse(req.DistritoID)
	if err != nil {
		return nil, errors.New("distritoId inválido")
	}
	if distritoID != p.DistritoID {
		if _, err := s.geoRepo.FindDistritoByID(ctx, distritoID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("distrito no encontrado")
			}
			return nil, err
		}
	}

	p.Nombre = req.Nombre
	p.Descripcion = req.Descripcion
	p.DistritoID = distritoID
	p.Distrito = nil // force reload of the geo chain after save

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, actualizado)
}

func (s *proyectoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("proyecto no encontrado")
		}
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}
