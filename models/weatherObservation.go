package models

import "time"

// WeatherObservation is an append-only time series, one row per poller fetch
// (~30 min cadence). The export joins the earliest observation at or after a
// bucket's start time.
type WeatherObservation struct {
	ID          int       `gorm:"primary_key" json:"id"`
	ObservedAt  time.Time `gorm:"not null;index" json:"observed_at"`
	CityName    string    `gorm:"size:100" json:"city_name"`
	TempC       float64   `json:"temp_c"`
	FeelsLikeC  float64   `json:"feels_like_c"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	WeatherMain string    `gorm:"size:50" json:"weather_main"`
	WeatherDesc string    `gorm:"size:255" json:"weather_desc"`
	WeatherIcon string    `gorm:"size:20" json:"weather_icon"`
	IsRain      bool      `gorm:"not null;default:false" json:"is_rain"`
	IsSnow      bool      `gorm:"not null;default:false" json:"is_snow"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
