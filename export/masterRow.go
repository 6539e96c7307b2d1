package export

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// MasterHeader is the wire column order of the master (sales + weather) export.
// Consumers train on these files; never reorder.
var MasterHeader = []string{
	"date",
	"time_bucket_start",
	"time_bucket_end",
	"weekday",
	"is_weekend",
	"total_orders",
	"total_revenue",
	"avg_order_value",
	"total_items",
	"unique_tables",
	"avg_table_occupancy_min",
	"num_cash_payments",
	"num_card_payments",
	"num_cancelled_orders",
	"discount_total",
	"avg_people_per_table",
	"temp_c",
	"feels_like_c",
	"humidity",
	"wind_speed",
	"weather_main",
	"weather_desc",
	"is_rain",
	"is_snow",
	"is_storm",
	"is_holiday",
	"is_special_day",
}

// MasterRow is one aggregated sales+weather record per time bucket. Monetary
// fields stay exact decimals until record() renders them; nothing upstream may
// round.
type MasterRow struct {
	Date            string
	TimeBucketStart string
	TimeBucketEnd   string
	Weekday         int
	IsWeekend       int

	TotalOrders          int
	TotalRevenue         decimal.Decimal
	AvgOrderValue        decimal.Decimal
	TotalItems           int
	UniqueTables         int
	AvgTableOccupancyMin *float64
	NumCashPayments      int
	NumCardPayments      int
	NumCancelledOrders   int

	// Deferred fields, emitted as placeholders until the data exists upstream:
	// no discount column on orders, no headcount on tables, no holiday calendar.
	DiscountTotal     decimal.Decimal
	AvgPeoplePerTable *float64

	TempC       *float64
	FeelsLikeC  *float64
	Humidity    *int
	WindSpeed   *float64
	WeatherMain *string
	WeatherDesc *string
	IsRain      int
	IsSnow      int
	IsStorm     int

	IsHoliday    int
	IsSpecialDay int
}

// record renders the row in MasterHeader order. Currency is rounded to 2
// decimals and occupancy to 1 decimal here, at output time only.
func (r MasterRow) record() []string {
	return []string{
		r.Date,
		r.TimeBucketStart,
		r.TimeBucketEnd,
		strconv.Itoa(r.Weekday),
		strconv.Itoa(r.IsWeekend),
		strconv.Itoa(r.TotalOrders),
		r.TotalRevenue.StringFixed(2),
		r.AvgOrderValue.StringFixed(2),
		strconv.Itoa(r.TotalItems),
		strconv.Itoa(r.UniqueTables),
		formatMinutes(r.AvgTableOccupancyMin),
		strconv.Itoa(r.NumCashPayments),
		strconv.Itoa(r.NumCardPayments),
		strconv.Itoa(r.NumCancelledOrders),
		r.DiscountTotal.StringFixed(2),
		formatMinutes(r.AvgPeoplePerTable),
		formatFloat(r.TempC),
		formatFloat(r.FeelsLikeC),
		formatInt(r.Humidity),
		formatFloat(r.WindSpeed),
		formatString(r.WeatherMain),
		formatString(r.WeatherDesc),
		strconv.Itoa(r.IsRain),
		strconv.Itoa(r.IsSnow),
		strconv.Itoa(r.IsStorm),
		strconv.Itoa(r.IsHoliday),
		strconv.Itoa(r.IsSpecialDay),
	}
}

// formatMinutes renders a nullable duration/ratio with 1 decimal place.
// Absence must stay distinguishable from zero, so nil renders as empty.
func formatMinutes(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(math.Round(*v*10)/10, 'f', 1, 64)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
