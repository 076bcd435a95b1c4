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

type LoteService interface {
	Crear(ctx context.Context, req dto.LoteRequest) (*dto.LoteResponse, error)
	Listar(ctx context.Context) ([]dto.LoteResponse, error)
	ListarActivos(ctx context.Context, search string) ([]dto.LoteResponse, error)
	ListarPorProyecto(ctx context.Context, proyectoID uuid.UUID) ([]dto.LoteResponse, error)
	ListarPorEstado(ctx context.Context, estadoLoteID uuid.UUID) ([]dto.LoteResponse, error)
	ListarPorEstadoNombre(ctx context.Context, nombre string) ([]dto.LoteResponse, error)
	// ListarDisponibles es la cascada del formulario de venta: lotes en
	// estado Disponible, de todos los proyectos cuando proyectoID es
	// uuid.Nil.
	ListarDisponibles(ctx context.Context, proyectoID uuid.UUID) ([]dto.LoteResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.LoteResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.LoteRequest) (*dto.LoteResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type loteService struct {
	repo         repository.LoteRepository
	proyectoRepo repository.ProyectoRepository
}

func NewLoteService(repo repository.LoteRepository, proyectoRepo repository.ProyectoRepository) LoteService {
	return &loteService{repo: repo, proyectoRepo: proyectoRepo}
}

func (s *loteService) aplicar(l *model.Lote, req dto.LoteRequest) error {
	estadoID, err := uuid.Parse(req.EstadoLoteID)
	if err != nil {
		return errors.New("estadoLoteId inválido")
	}
	proyectoID, err := uuid.Parse(req.ProyectoID)
	if err != nil {
		return errors.New("proyectoId inválido")
	}
	l.Nombre = req.Nombre
	l.Descripcion = req.Descripcion
	l.Precio = req.Precio
	l.Area = req.Area
	l.Direccion = req.Direccion
	l.EstadoLoteID = estadoID
	l.ProyectoID = proyectoID
	l.TipoLoteID = nil
	if req.TipoLoteID != nil {
		tipoID, err := uuid.Parse(*req.TipoLoteID)
		if err != nil {
			return errors.New("tipoLoteId inválido")
		}
		l.TipoLoteID = &tipoID
	}
	return nil
}

func (s *loteService) Crear(ctx context.Context, req dto.LoteRequest) (*dto.LoteResponse, error) {
	if !req.Precio.IsPositive() {
		return nil, errors.New("el precio debe ser mayor a cero")
	}
	if !req.Area.IsPositive() {
		return nil, errors.New("el área debe ser mayor a cero")
	}

	var l model.Lote
	if err := s.aplicar(&l, req); err != nil {
		return nil, err
	}
	if _, err := s.proyectoRepo.FindByID(ctx, l.ProyectoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("proyecto no encontrado")
		}
		return nil, err
	}

	if err := s.repo.Create(ctx, &l); err != nil {
		return nil, err
	}
	creado, err := s.repo.FindByID(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.LoteToResponse(creado)
	return &resp, nil
}

func mapLotes(lotes []model.Lote) []dto.LoteResponse {
	result := make([]dto.LoteResponse, 0, len(lotes))
	for i := range lotes {
		result = append(result, dto.LoteToResponse(&lotes[i]))
	}
	return result
}

func (s *loteService) Listar(ctx context.Context) ([]dto.LoteResponse, error) {
	lotes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapLotes(lotes), nil
}

func (s *loteService) ListarActivos(ctx context.Context, search string) ([]dto.LoteResponse, error) {
	lotes, err := s.repo.ListActivos(ctx, search)
	if err != nil {
		return nil, err
	}
	return mapLotes(lotes), nil
}

func (s *loteService) ListarPorProyecto(ctx context.Context, proyectoID uuid.UUID) ([]dto.LoteResponse, error) {
	lotes, err := s.repo.ListByProyecto(ctx, proyectoID)
	if err != nil {
		return nil, err
	}
	return mapLotes(lotes), nil
}

func (s *loteService) ListarPorEstado(ctx context.Context, estadoLoteID uuid.UUID) ([]dto.LoteResponse, error) {
	lotes, err := s.repo.ListByEstado(ctx, estadoLoteID)
	if err != nil {
		return nil, err
	}
	return mapLotes(lotes), nil
}

func (s *loteService) ListarPorEstadoNombre(ctx context.Context, nombre string) ([]dto.LoteResponse, error) {
	lotes, err := s.repo.ListByEstadoNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	return mapLotes(lotes), nil
}

func (s *loteService) ListarDisponibles(ctx context.Context, proyectoID uuid.UUID) ([]dto.LoteResponse, error) {
	lotes, err := s.repo.ListDisponibles(ctx, proyectoID)
	if err != nil {
		return nil, err
	}
	return mapLotes(lotes), nil
}

func (s *loteService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.LoteResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("lote no encontrado")
		}
		return nil, err
	}
	resp := dto.LoteToResponse(l)
	return &resp, nil
}

func (s *loteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.LoteRequest) (*dto.LoteResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("lote no encontrado")
		}
		return nil, err
	}

	if !req.Precio.IsPositive() {
		return nil, errors.New("el precio debe ser mayor a cero")
	}
	if err := s.aplicar(l, req); err != nil {
		return nil, err
	}
	l.EstadoLote = nil
	l.TipoLote = nil
	l.Proyecto = nil

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.LoteToResponse(actualizado)
	return &resp, nil
}

func (s *loteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("lote no encontrado")
		}
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}
