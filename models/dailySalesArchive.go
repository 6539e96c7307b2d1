package models

import (
	"context"
	"time"

	"bitbucket.org/seferidata/pos_backend/config"
	"github.com/shopspring/decimal"
)

// DailySalesArchive is the per-day aggregate written by the daily archive
// workflow.
//
// Grain: (organization_id, business_date). The composite primary key makes the
// "at most one archive row per day" invariant a schema property: re-archiving a
// date reconciles the existing row via ON DUPLICATE KEY UPDATE, it can never
// insert a second one.
type DailySalesArchive struct {
	OrganizationId string    `gorm:"primaryKey;size:64" json:"organization_id"`
	BusinessDate   time.Time `gorm:"primaryKey;type:date" json:"business_date"`

	TotalOrders     int             `gorm:"not null;default:0" json:"total_orders"`
	TotalRevenue    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_revenue"`
	TotalCash       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_cash"`
	TotalCreditCard decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_credit_card"`
	TotalOnline     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_online"`
	TotalOther      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_other"`

	ArchivedAt time.Time `gorm:"autoUpdateTime" json:"archived_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// GetArchiveHistory returns the per-day aggregates of one organization between
// two business dates inclusive, oldest first.
func GetArchiveHistory(ctx context.Context, organizationId string, start, end time.Time) ([]DailySalesArchive, error) {
	var archives []DailySalesArchive
	db := config.GetDB()
	err := db.WithContext(ctx).
		Where("organization_id = ?", organizationId).
		Where("business_date >= ? AND business_date <= ?", start, end).
		Order("business_date ASC").
		Find(&archives).Error
	if err != nil {
		return nil, err
	}
	return archives, nil
}

// ArchivedOrder keeps the denormalized order history after the live row is
// deleted. Same primary key as the live order, so re-archival cannot duplicate.
type ArchivedOrder struct {
	ID             string      `gorm:"primaryKey;size:64" json:"id"`
	OrganizationId string      `gorm:"size:64;not null;index:idx_arch_orders_org_date,priority:1" json:"organization_id"`
	BusinessDate   time.Time   `gorm:"type:date;not null;index:idx_arch_orders_org_date,priority:2" json:"business_date"`
	TableId        string      `gorm:"size:64;not null" json:"table_id"`
	Status         OrderStatus `gorm:"size:20;not null" json:"status"`
	OpenedAt       time.Time   `gorm:"not null" json:"opened_at"`
	ClosedAt       *time.Time  `json:"closed_at"`
	OpenedByUserId string      `gorm:"size:64;not null" json:"opened_by_user_id"`
	ClosedByUserId *string     `gorm:"size:64" json:"closed_by_user_id"`
	ArchivedAt     time.Time   `gorm:"autoCreateTime" json:"archived_at"`
}

type ArchivedOrderItem struct {
	ID           string          `gorm:"primaryKey;size:64" json:"id"`
	OrderId      string          `gorm:"size:64;not null;index" json:"order_id"`
	BusinessDate time.Time       `gorm:"type:date;not null;index" json:"business_date"`
	MenuItemId   string          `gorm:"size:64;not null;index" json:"menu_item_id"`
	Quantity     int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_price"`
	Status       OrderItemStatus `gorm:"size:20;not null" json:"status"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	ArchivedAt   time.Time       `gorm:"autoCreateTime" json:"archived_at"`
}
