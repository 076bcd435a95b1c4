package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogoRepository is the shared data access contract for the reference
// catalogs (tipos de documento, tipos de lote, estados de lote, estados de
// venta, monedas, roles). They all share the same shape, so one generic
// implementation serves the six tables.
type CatalogoRepository[M any] interface {
	Create(ctx context.Context, m *M) error
	FindByID(ctx context.Context, id uuid.UUID) (*M, error)
	FindByNombre(ctx context.Context, nombre string) (*M, error)
	List(ctx context.Context) ([]M, error)
	Update(ctx context.Context, m *M) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type catalogoRepo[M any] struct{ db *gorm.DB }

func NewCatalogoRepository[M any](db *gorm.DB) CatalogoRepository[M] {
	return &catalogoRepo[M]{db: db}
}

func (r *catalogoRepo[M]) Create(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *catalogoRepo[M]) FindByID(ctx context.Context, id uuid.UUID) (*M, error) {
	var m M
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *catalogoRepo[M]) FindByNombre(ctx context.Context, nombre string) (*M, error) {
	var m M
	err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&m).Error
	return &m, err
}

func (r *catalogoRepo[M]) List(ctx context.Context) ([]M, error) {
	var items []M
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&items).Error
	return items, err
}

func (r *catalogoRepo[M]) Update(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *catalogoRepo[M]) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(new(M)).
		Where("id = ?", id).
		Update("fecha_eliminacion", time.Now()).Error
}

func (r *catalogoRepo[M]) DB() *gorm.DB { return r.db }
