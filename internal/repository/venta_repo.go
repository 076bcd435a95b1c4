package repository

import (
	"context"
	"time"

	"inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	Create(ctx context.Context, v *model.Venta) error
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, search string) ([]model.Venta, error)
	ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Venta, error)
	// ExisteVentaVigentePorLote reports whether the lot already has a sale
	// that is not cancelled and not deleted.
	ExisteVentaVigentePorLote(ctx context.Context, loteID uuid.UUID) (bool, error)
	Update(ctx context.Context, v *model.Venta) error
	UpdateTx(tx *gorm.DB, v *model.Venta) error
	SoftDeleteTx(tx *gorm.DB, id uuid.UUID) error
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Lote").
		Preload("Proyecto").
		Preload("EstadoVenta").
		Preload("Moneda").
		Preload("Abonos", func(db *gorm.DB) *gorm.DB {
			return db.Order("fecha_abono desc")
		})
}

func (r *ventaRepo) Create(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.preloaded(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

// List matches search against client names, lot name and project name.
func (r *ventaRepo) List(ctx context.Context, search string) ([]model.Venta, error) {
	var ventas []model.Venta
	q := r.preloaded(ctx)
	if search != "" {
		like := "%" + search + "%"
		q = q.
			Joins("JOIN clientes ON clientes.id = ventas.cliente_id").
			Joins("JOIN lotes ON lotes.id = ventas.lote_id").
			Joins("JOIN proyectos ON proyectos.id = ventas.proyecto_id").
			Where(
				"clientes.primer_nombre ILIKE ? OR clientes.apellido_paterno ILIKE ? OR lotes.nombre ILIKE ? OR proyectos.nombre ILIKE ?",
				like, like, like, like,
			)
	}
	err := q.Order("ventas.fecha_creacion desc").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ListByCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.preloaded(ctx).
		Where("cliente_id = ?", clienteID).
		Order("fecha_creacion desc").Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) ExisteVentaVigentePorLote(ctx context.Context, loteID uuid.UUID) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Venta{}).
		Joins("JOIN estados_venta ON estados_venta.id = ventas.estado_venta_id").
		Where("ventas.lote_id = ? AND ventas.fecha_eliminacion IS NULL AND estados_venta.nombre <> ?",
			loteID, model.EstadoVentaCancelada).
		Count(&total).Error
	return total > 0, err
}

func (r *ventaRepo) Update(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *ventaRepo) UpdateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Save(v).Error
}

func (r *ventaRepo) SoftDeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Venta{}).
		Where("id = ?", id).
		Update("fecha_eliminacion", time.Now()).Error
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }
