package models

import (
	"log"

	"bitbucket.org/seferidata/pos_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Organization{}, &DiningTable{},
		&MenuCategory{}, &MenuItem{},
		&Order{}, &OrderItem{}, &Payment{},
		&WeatherObservation{},
		&DailySalesArchive{}, &ArchivedOrder{}, &ArchivedOrderItem{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
