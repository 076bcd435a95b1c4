package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Abono is one installment payment against a venta.
// The ledger is append-only: no update or delete path exists anywhere in the
// API, so a venta's payment history can always be reconstructed exactly.
type Abono struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	MontoAbonado decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	// FechaAbono is when the payment happened, not when it was recorded.
	FechaAbono    time.Time `gorm:"not null"`
	FechaCreacion time.Time `gorm:"autoCreateTime"`
}

func (Abono) TableName() string { return "abonos" }
