package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem invariant: total_price = unit_price * quantity whenever it is read
// for aggregation. Cancelled items never contribute to revenue or quantity sums.
type OrderItem struct {
	ID              string          `gorm:"primaryKey;size:64" json:"id"`
	OrderId         string          `gorm:"size:64;not null;index" json:"order_id"`
	MenuItemId      string          `gorm:"size:64;not null;index" json:"menu_item_id"`
	Quantity        int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_price"`
	Status          OrderItemStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	CreatedByUserId string          `gorm:"size:64;not null" json:"created_by_user_id"`
}
