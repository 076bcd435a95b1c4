package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"inmobiliaria/internal/dto"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const catalogoCacheTTL = 4 * time.Hour

// catalogoPtr constrains the generic catalog service to models that embed
// CatalogoBase.
type catalogoPtr[M any] interface {
	*M
	Base() *model.CatalogoBase
}

// CatalogoService is the shared business contract for the six reference
// catalogs. One generic implementation covers them all; each instance gets
// its own cache key.
type CatalogoService[M any] interface {
	Crear(ctx context.Context, req dto.CatalogoRequest) (*M, error)
	Listar(ctx context.Context) ([]M, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*M, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.CatalogoRequest) (*M, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type catalogoService[M any, PM catalogoPtr[M]] struct {
	repo     repository.CatalogoRepository[M]
	rdb      *redis.Client
	cacheKey string
}

func NewCatalogoService[M any, PM catalogoPtr[M]](
	repo repository.CatalogoRepository[M],
	rdb *redis.Client,
	cacheKey string,
) CatalogoService[M] {
	return &catalogoService[M, PM]{repo: repo, rdb: rdb, cacheKey: "catalogo:" + cacheKey}
}

func (s *catalogoService[M, PM]) aplicar(m PM, req dto.CatalogoRequest) {
	base := m.Base()
	base.Nombre = req.Nombre
	base.Descripcion = req.Descripcion
	// Solo monedas exponen simbolo.
	if conSimbolo, ok := any(m).(interface{ SetSimbolo(string) }); ok {
		conSimbolo.SetSimbolo(req.Simbolo)
	}
}

func (s *catalogoService[M, PM]) Crear(ctx context.Context, req dto.CatalogoRequest) (*M, error) {
	existing, err := s.repo.FindByNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && existing != nil {
		return nil, errors.New("ya existe un registro con ese nombre")
	}

	m := PM(new(M))
	s.aplicar(m, req)
	if err := s.repo.Create(ctx, (*M)(m)); err != nil {
		return nil, err
	}
	s.invalidar(ctx)
	return (*M)(m), nil
}

func (s *catalogoService[M, PM]) Listar(ctx context.Context) ([]M, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, s.cacheKey).Bytes(); err == nil {
			var items []M
			if jsonErr := json.Unmarshal(cached, &items); jsonErr == nil {
				return items, nil
			}
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(items); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), s.cacheKey, b, catalogoCacheTTL).Err()
		}
	}
	return items, nil
}

func (s *catalogoService[M, PM]) ObtenerPorID(ctx context.Context, id uuid.UUID) (*M, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("registro no encontrado")
		}
		return nil, err
	}
	return m, nil
}

func (s *catalogoService[M, PM]) Actualizar(ctx context.Context, id uuid.UUID, req dto.CatalogoRequest) (*M, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("registro no encontrado")
		}
		return nil, err
	}

	pm := PM(m)
	if req.Nombre != pm.Base().Nombre {
		existing, err := s.repo.FindByNombre(ctx, req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil && existing != nil && PM(existing).Base().ID != id {
			return nil, errors.New("ya existe un registro con ese nombre")
		}
	}

	s.aplicar(pm, req)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.invalidar(ctx)
	return m, nil
}

func (s *catalogoService[M, PM]) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("registro no encontrado")
		}
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidar(ctx)
	return nil
}

func (s *catalogoService[M, PM]) invalidar(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, s.cacheKey).Err()
	}
}
