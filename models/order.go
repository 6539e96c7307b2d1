package models

import (
	"time"
)

// Order is a live (unarchived) order. Rows only exist for business dates that
// have not been archived yet; the day after its business date an order moves to
// ArchivedOrder via the daily archive workflow.
type Order struct {
	ID             string      `gorm:"primaryKey;size:64" json:"id"`
	OrganizationId string      `gorm:"size:64;not null;index:idx_orders_org_opened,priority:1" json:"organization_id"`
	TableId        string      `gorm:"size:64;not null;index" json:"table_id"`
	Status         OrderStatus `gorm:"size:20;not null;default:'open';index" json:"status"`
	OpenedAt       time.Time   `gorm:"not null;index:idx_orders_org_opened,priority:2" json:"opened_at"`
	ClosedAt       *time.Time  `json:"closed_at"`
	OpenedByUserId string      `gorm:"size:64;not null" json:"opened_by_user_id"`
	ClosedByUserId *string     `gorm:"size:64" json:"closed_by_user_id"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}
