package weather

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"bitbucket.org/seferidata/pos_backend/config"
	"bitbucket.org/seferidata/pos_backend/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultLatitude  = 38.1967
	defaultLongitude = 26.8383
	defaultCityName  = "Seferihisar"

	latestWeatherCacheKey = "weather:latest"
	latestWeatherCacheTTL = 30 * time.Minute
)

// Service polls OpenWeatherMap on a fixed cadence and appends each result to
// the weather_observations table. Observations are never updated in place; the
// export reads the series back by time.
type Service struct {
	DB           *gorm.DB
	Logger       *logrus.Logger
	PollInterval time.Duration

	Latitude  float64
	Longitude float64
	CityName  string

	client *openWeatherClient
}

func NewService(db *gorm.DB, logger *logrus.Logger) (*Service, error) {
	client, err := newOpenWeatherClient()
	if err != nil {
		return nil, err
	}
	return &Service{
		DB:           db,
		Logger:       logger,
		PollInterval: 30 * time.Minute,
		Latitude:     defaultLatitude,
		Longitude:    defaultLongitude,
		CityName:     defaultCityName,
		client:       client,
	}, nil
}

// SetLocation points the poller at new coordinates. The next fetch uses them.
func (s *Service) SetLocation(lat, lon float64, city string) {
	s.Latitude = lat
	s.Longitude = lon
	s.CityName = city
}

// Run fetches immediately, then on every tick until ctx is cancelled. Fetch
// failures are logged and skipped; the series just gets a gap.
func (s *Service) Run(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		if err := s.FetchAndSave(ctx); err != nil && s.Logger != nil {
			config.LogError(s.Logger, "service.go", "Run", "fetch and save weather", s.CityName, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.PollInterval):
		}
	}
}

// FetchAndSave performs one poll cycle: fetch, map, append, refresh the cache.
func (s *Service) FetchAndSave(ctx context.Context) error {
	resp, err := s.client.current(ctx, s.Latitude, s.Longitude)
	if err != nil {
		return err
	}
	obs := s.mapObservation(resp, time.Now().UTC())
	if err := s.DB.WithContext(ctx).Create(&obs).Error; err != nil {
		return err
	}
	// Cache is best effort, reads fall back to the table.
	_ = config.SetRedisObject(latestWeatherCacheKey, obs, latestWeatherCacheTTL)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"field":        "WeatherService",
			"city":         obs.CityName,
			"temp_c":       obs.TempC,
			"weather_main": obs.WeatherMain,
		}).Info("weather observation recorded")
	}
	return nil
}

// mapObservation flattens the API payload into a table row. Only the first
// weather condition counts.
func (s *Service) mapObservation(resp currentWeatherResponse, observedAt time.Time) models.WeatherObservation {
	var cond conditionPayload
	if len(resp.Weather) > 0 {
		cond = resp.Weather[0]
	}
	main := strings.ToUpper(cond.Main)

	city := s.CityName
	if city == "" {
		city = resp.Name
	}

	return models.WeatherObservation{
		ObservedAt:  observedAt,
		CityName:    city,
		TempC:       round1(resp.Main.Temp),
		FeelsLikeC:  round1(resp.Main.FeelsLike),
		Humidity:    resp.Main.Humidity,
		WindSpeed:   round1(resp.Wind.Speed),
		WeatherMain: cond.Main,
		WeatherDesc: cond.Description,
		WeatherIcon: cond.Icon,
		IsRain:      main == "RAIN" || main == "DRIZZLE" || main == "THUNDERSTORM",
		IsSnow:      main == "SNOW",
	}
}

// GetLatest returns the most recent observation, preferring the redis cache.
// Returns nil when no observation exists yet.
func (s *Service) GetLatest(ctx context.Context) (*models.WeatherObservation, error) {
	var cached models.WeatherObservation
	if found, err := config.GetRedisObject(latestWeatherCacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	var obs models.WeatherObservation
	err := s.DB.WithContext(ctx).
		Order("observed_at DESC").
		First(&obs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &obs, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
