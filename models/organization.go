package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/seferidata/pos_backend/config"
	"bitbucket.org/seferidata/pos_backend/utils"
	"gorm.io/gorm"
)

type Organization struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Timezone  string    `gorm:"size:64;default:'Europe/Istanbul'" json:"timezone"`
	CityName  string    `gorm:"size:100" json:"city_name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetOrganizationById(ctx context.Context, id string) (*Organization, error) {
	var org Organization
	db := config.GetDB()
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: organization %s", utils.ErrorRecordNotFound, id)
		}
		return nil, err
	}
	return &org, nil
}

func GetAllOrganizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	db := config.GetDB()
	if err := db.WithContext(ctx).Order("id ASC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// DiningTable is a physical table in the restaurant. Orders reference it by id;
// unique_tables in the export counts distinct table ids per bucket.
type DiningTable struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	OrganizationId string    `gorm:"index;size:64;not null" json:"organization_id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Seats          int       `gorm:"default:0" json:"seats"`
	IsActive       *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
