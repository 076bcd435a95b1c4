package repository

import (
	"context"

	"inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbonoRepository persists the append-only payment ledger. There is no
// update or delete on purpose: a wrong payment is corrected with a
// compensating entry, never by rewriting history.
type AbonoRepository interface {
	Create(ctx context.Context, a *model.Abono) error
	CreateTx(tx *gorm.DB, a *model.Abono) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Abono, error)
	ListByVenta(ctx context.Context, ventaID uuid.UUID) ([]model.Abono, error)
	DB() *gorm.DB
}

type abonoRepo struct{ db *gorm.DB }

func NewAbonoRepository(db *gorm.DB) AbonoRepository { return &abonoRepo{db: db} }

func (r *abonoRepo) Create(ctx context.Context, a *model.Abono) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *abonoRepo) CreateTx(tx *gorm.DB, a *model.Abono) error {
	return tx.Create(a).Error
}

func (r *abonoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Abono, error) {
	var a model.Abono
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

// ListByVenta returns the newest payment first, matching the ledger view.
func (r *abonoRepo) ListByVenta(ctx context.Context, ventaID uuid.UUID) ([]model.Abono, error) {
	var abonos []model.Abono
	err := r.db.WithContext(ctx).
		Where("venta_id = ?", ventaID).
		Order("fecha_abono desc").Find(&abonos).Error
	return abonos, err
}

func (r *abonoRepo) DB() *gorm.DB { return r.db }
