package repository

import (
	"context"
	"time"

	"inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProyectoRepository interface {
	Create(ctx context.Context, p *model.Proyecto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Proyecto, error)
	List(ctx context.Context) ([]model.Proyecto, error)
	ListActivos(ctx context.Context) ([]model.Proyecto, error)
	Update(ctx context.Context, p *model.Proyecto) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	CountLotes(ctx context.Context, proyectoID uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type proyectoRepo struct{ db *gorm.DB }

func NewProyectoRepository(db *gorm.DB) ProyectoRepository { return &proyectoRepo{db: db} }

func (r *proyectoRepo) preloadGeo(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Distrito.Provincia.Departamento")
}

func (r *proyectoRepo) Create(ctx context.Context, p *model.Proyecto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proyectoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Proyecto, error) {
	var p model.Proyecto
	err := r.preloadGeo(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *proyectoRepo) List(ctx context.Context) ([]model.Proyecto, error) {
	var proyectos []model.Proyecto
	err := r.preloadGeo(ctx).Order("nombre asc").Find(&proyectos).Error
	return proyectos, err
}

func (r *proyectoRepo) ListActivos(ctx context.Context) ([]model.Proyecto, error) {
	var proyectos []model.Proyecto
	err := r.preloadGeo(ctx).
		Where("fecha_eliminacion IS NULL").
		Order("nombre asc").Find(&proyectos).Error
	return proyectos, err
}

func (r *proyectoRepo) Update(ctx context.Context, p *model.Proyecto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proyectoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Proyecto{}).
		Where("id = ?", id).
		Update("fecha_eliminacion", time.Now()).Error
}

func (r *proyectoRepo) CountLotes(ctx context.Context, proyectoID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Lote{}).
		Where("proyecto_id = ? AND fecha_eliminacion IS NULL", proyectoID).
		Count(&total).Error
	return total, err
}

func (r *proyectoRepo) DB() *gorm.DB { return r.db }
