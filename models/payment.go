package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            string          `gorm:"primaryKey;size:64" json:"id"`
	OrderId       string          `gorm:"size:64;not null;index" json:"order_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null;default:'cash';index" json:"payment_method"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
