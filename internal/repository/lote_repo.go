package repository

import (
	"context"
	"time"

	"inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoteRepository interface {
	Create(ctx context.Context, l *model.Lote) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lote, error)
	List(ctx context.Context) ([]model.Lote, error)
	ListActivos(ctx context.Context, search string) ([]model.Lote, error)
	ListByProyecto(ctx context.Context, proyectoID uuid.UUID) ([]model.Lote, error)
	ListByEstado(ctx context.Context, estadoLoteID uuid.UUID) ([]model.Lote, error)
	// ListByEstadoNombre filters by estado name, the shape the search
	// screen sends.
	ListByEstadoNombre(ctx context.Context, nombre string) ([]model.Lote, error)
	// ListDisponibles returns the active lots whose estado is Disponible.
	// It backs the lot selector of the sale form; uuid.Nil lists every
	// project's available lots.
	ListDisponibles(ctx context.Context, proyectoID uuid.UUID) ([]model.Lote, error)
	Update(ctx context.Context, l *model.Lote) error
	// UpdateEstadoTx moves a lot to another estado inside an open transaction.
	UpdateEstadoTx(tx *gorm.DB, id, estadoLoteID uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type loteRepo struct{ db *gorm.DB }

func NewLoteRepository(db *gorm.DB) LoteRepository { return &loteRepo{db: db} }

func (r *loteRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("EstadoLote").
		Preload("TipoLote").
		Preload("Proyecto.Distrito.Provincia.Departamento")
}

func (r *loteRepo) Create(ctx context.Context, l *model.Lote) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *loteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Lote, error) {
	var l model.Lote
	err := r.preloaded(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *loteRepo) List(ctx context.Context) ([]model.Lote, error) {
	var lotes []model.Lote
	err := r.preloaded(ctx).Order("nombre asc").Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) ListActivos(ctx context.Context, search string) ([]model.Lote, error) {
	var lotes []model.Lote
	q := r.preloaded(ctx).Where("lotes.fecha_eliminacion IS NULL")
	if search != "" {
		like := "%" + search + "%"
		q = q.Joins("LEFT JOIN proyectos ON proyectos.id = lotes.proyecto_id").
			Where("lotes.nombre ILIKE ? OR lotes.direccion ILIKE ? OR proyectos.nombre ILIKE ?", like, like, like)
	}
	err := q.Order("lotes.nombre asc").Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) ListByProyecto(ctx context.Context, proyectoID uuid.UUID) ([]model.Lote, error) {
	var lotes []model.Lote
	err := r.preloaded(ctx).
		Where("proyecto_id = ?", proyectoID).
		Order("nombre asc").Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) ListByEstado(ctx context.Context, estadoLoteID uuid.UUID) ([]model.Lote, error) {
	var lotes []model.Lote
	err := r.preloaded(ctx).
		Where("estado_lote_id = ? AND fecha_eliminacion IS NULL", estadoLoteID).
		Order("nombre asc").Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) ListByEstadoNombre(ctx context.Context, nombre string) ([]model.Lote, error) {
	var lotes []model.Lote
	err := r.preloaded(ctx).
		Joins("JOIN estados_lote ON estados_lote.id = lotes.estado_lote_id").
		Where("estados_lote.nombre = ? AND lotes.fecha_eliminacion IS NULL", nombre).
		Order("lotes.nombre asc").Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) ListDisponibles(ctx context.Context, proyectoID uuid.UUID) ([]model.Lote, error) {
	var lotes []model.Lote
	q := r.preloaded(ctx).
		Joins("JOIN estados_lote ON estados_lote.id = lotes.estado_lote_id").
		Where("lotes.fecha_eliminacion IS NULL AND estados_lote.nombre = ?", model.EstadoLoteDisponible)
	if proyectoID != uuid.Nil {
		q = q.Where("lotes.proyecto_id = ?", proyectoID)
	}
	err := q.Order("lotes.nombre asc").Find(&lotes).Error
	return lotes, err
}

func (r *loteRepo) Update(ctx context.Context, l *model.Lote) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *loteRepo) UpdateEstadoTx(tx *gorm.DB, id, estadoLoteID uuid.UUID) error {
	return tx.Model(&model.Lote{}).
		Where("id = ?", id).
		Update("estado_lote_id", estadoLoteID).Error
}

func (r *loteRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Lote{}).
		Where("id = ?", id).
		Update("fecha_eliminacion", time.Now()).Error
}

func (r *loteRepo) DB() *gorm.DB { return r.db }
