package repository

import (
	"context"
	"time"

	"inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	FindByNumeroDocumento(ctx context.Context, numero string) (*model.Cliente, error)
	List(ctx context.Context, search string) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("TipoDocumento").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) FindByNumeroDocumento(ctx context.Context, numero string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("TipoDocumento").
		Where("numero_documento = ?", numero).First(&c).Error
	return &c, err
}

// List matches search against names and document number, case-insensitive.
func (r *clienteRepo) List(ctx context.Context, search string) ([]model.Cliente, error) {
	var clientes []model.Cliente
	q := r.db.WithContext(ctx).Preload("TipoDocumento").Order("apellido_paterno asc")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"primer_nombre ILIKE ? OR apellido_paterno ILIKE ? OR apellido_materno ILIKE ? OR numero_documento ILIKE ?",
			like, like, like, like,
		)
	}
	err := q.Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("id = ?", id).
		Update("fecha_eliminacion", time.Now()).Error
}

func (r *clienteRepo) DB() *gorm.DB { return r.db }
