package repository

import (
	"context"

	"inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeografiaRepository serves the read-only ubigeo hierarchy used by the
// cascading location selectors.
type GeografiaRepository interface {
	ListDepartamentos(ctx context.Context) ([]model.Departamento, error)
	ListProvincias(ctx context.Context, departamentoID uuid.UUID) ([]model.Provincia, error)
	ListDistritos(ctx context.Context, provinciaID uuid.UUID) ([]model.Distrito, error)
	FindDistritoByID(ctx context.Context, id uuid.UUID) (*model.Distrito, error)
}

type geografiaRepo struct{ db *gorm.DB }

func NewGeografiaRepository(db *gorm.DB) GeografiaRepository {
	return &geografiaRepo{db: db}
}

func (r *geografiaRepo) ListDepartamentos(ctx context.Context) ([]model.Departamento, error) {
	var items []model.Departamento
	err := r.db.WithContext(ctx).Order("nombre asc").Find(&items).Error
	return items, err
}

func (r *geografiaRepo) ListProvincias(ctx context.Context, departamentoID uuid.UUID) ([]model.Provincia, error) {
	var items []model.Provincia
	err := r.db.WithContext(ctx).
		Where("departamento_id = ?", departamentoID).
		Order("nombre asc").Find(&items).Error
	return items, err
}

func (r *geografiaRepo) ListDistritos(ctx context.Context, provinciaID uuid.UUID) ([]model.Distrito, error) {
	var items []model.Distrito
	err := r.db.WithContext(ctx).
		Where("provincia_id = ?", provinciaID).
		Order("nombre asc").Find(&items).Error
	return items, err
}

func (r *geografiaRepo) FindDistritoByID(ctx context.Context, id uuid.UUID) (*model.Distrito, error) {
	var d model.Distrito
	err := r.db.WithContext(ctx).
		Preload("Provincia.Departamento").
		First(&d, "id = ?", id).Error
	return &d, err
}
