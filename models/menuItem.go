package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuCategory struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	OrganizationId string    `gorm:"index;size:64;not null" json:"organization_id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	SortOrder      int       `gorm:"default:0" json:"sort_order"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type MenuItem struct {
	ID             string          `gorm:"primaryKey;size:64" json:"id"`
	OrganizationId string          `gorm:"index;size:64;not null" json:"organization_id"`
	CategoryId     *string         `gorm:"size:64;index" json:"category_id"`
	Name           string          `gorm:"size:255;not null" json:"name"`
	Price          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	IsActive       *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
