package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMapObservation(t *testing.T) {
	svc := &Service{CityName: "Seferihisar"}
	resp := currentWeatherResponse{
		Weather: []conditionPayload{{Main: "Rain", Description: "light rain", Icon: "10d"}},
		Name:    "Sığacık",
	}
	resp.Main.Temp = 21.34
	resp.Main.FeelsLike = 20.06
	resp.Main.Humidity = 68
	resp.Wind.Speed = 3.456

	observedAt := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	obs := svc.mapObservation(resp, observedAt)

	if !obs.ObservedAt.Equal(observedAt) {
		t.Fatalf("unexpected observed_at: %v", obs.ObservedAt)
	}
	// The configured name wins over the API's resolved name.
	if obs.CityName != "Seferihisar" {
		t.Fatalf("unexpected city: %s", obs.CityName)
	}
	if obs.TempC != 21.3 || obs.FeelsLikeC != 20.1 || obs.WindSpeed != 3.5 {
		t.Fatalf("expected 1-decimal rounding, got temp=%v feels=%v wind=%v", obs.TempC, obs.FeelsLikeC, obs.WindSpeed)
	}
	if obs.Humidity != 68 {
		t.Fatalf("unexpected humidity: %d", obs.Humidity)
	}
	if obs.WeatherMain != "Rain" || obs.WeatherDesc != "light rain" || obs.WeatherIcon != "10d" {
		t.Fatalf("unexpected condition: %s / %s / %s", obs.WeatherMain, obs.WeatherDesc, obs.WeatherIcon)
	}
	if !obs.IsRain || obs.IsSnow {
		t.Fatalf("expected rain flags, got is_rain=%v is_snow=%v", obs.IsRain, obs.IsSnow)
	}
}

func TestMapObservation_Flags(t *testing.T) {
	svc := &Service{}
	cases := []struct {
		main   string
		isRain bool
		isSnow bool
	}{
		{"Rain", true, false},
		{"Drizzle", true, false},
		{"Thunderstorm", true, false},
		{"Snow", false, true},
		{"Clear", false, false},
		{"Clouds", false, false},
	}
	for _, tc := range cases {
		obs := svc.mapObservation(currentWeatherResponse{
			Weather: []conditionPayload{{Main: tc.main}},
		}, time.Now())
		if obs.IsRain != tc.isRain || obs.IsSnow != tc.isSnow {
			t.Fatalf("%s: got is_rain=%v is_snow=%v, want %v/%v", tc.main, obs.IsRain, obs.IsSnow, tc.isRain, tc.isSnow)
		}
	}
}

func TestMapObservation_NoConditionFallsBackToAPIName(t *testing.T) {
	svc := &Service{}
	obs := svc.mapObservation(currentWeatherResponse{Name: "Izmir"}, time.Now())
	if obs.CityName != "Izmir" {
		t.Fatalf("expected API name fallback, got %s", obs.CityName)
	}
	if obs.WeatherMain != "" || obs.IsRain || obs.IsSnow {
		t.Fatal("expected empty condition when API returns none")
	}
}

func TestClientCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("appid") != "test-key" {
			t.Errorf("missing api key, got %q", q.Get("appid"))
		}
		if q.Get("units") != "metric" {
			t.Errorf("expected metric units, got %q", q.Get("units"))
		}
		if q.Get("lat") == "" || q.Get("lon") == "" {
			t.Error("missing coordinates")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weather":[{"id":500,"main":"Rain","description":"light rain","icon":"10d"}],"main":{"temp":21.3,"feels_like":20.1,"humidity":68},"wind":{"speed":3.4},"name":"Seferihisar"}`))
	}))
	defer srv.Close()

	c := &openWeatherClient{baseURL: srv.URL, apiKey: "test-key", http: srv.Client()}
	resp, err := c.current(context.Background(), 38.1967, 26.8383)
	if err != nil {
		t.Fatalf("current() error: %v", err)
	}
	if len(resp.Weather) != 1 || resp.Weather[0].Main != "Rain" {
		t.Fatalf("unexpected weather payload: %+v", resp.Weather)
	}
	if resp.Main.Temp != 21.3 || resp.Main.Humidity != 68 {
		t.Fatalf("unexpected main payload: %+v", resp.Main)
	}
}

func TestClientCurrent_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := &openWeatherClient{baseURL: srv.URL, apiKey: "bad", http: srv.Client()}
	if _, err := c.current(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}
