package export

import (
	"context"
	"fmt"

	"bitbucket.org/seferidata/pos_backend/utils"
	"gorm.io/gorm"
)

// BuildMasterRows runs the master aggregation for one business date: one row
// per time bucket, always, regardless of activity. Buckets are processed
// serially; any read failure aborts the whole build so no partial output is
// ever emitted.
func BuildMasterRows(ctx context.Context, db *gorm.DB, opts Options) ([]MasterRow, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	day, err := opts.Day()
	if err != nil {
		return nil, err
	}
	buckets, err := GenerateTimeBuckets(opts.BucketMinutes)
	if err != nil {
		return nil, err
	}

	// Computed once per date, not per bucket.
	weekday := utils.ISOWeekday(day)
	isWeekendDay := boolToInt(utils.IsWeekend(day))
	dayEnd := day.AddDate(0, 0, 1)

	rows := make([]MasterRow, 0, len(buckets))
	for _, bucket := range buckets {
		orders, err := ordersOpenedBetween(ctx, db, opts.OrganizationId, bucket.StartTime(day), bucket.EndTime(day))
		if err != nil {
			return nil, fmt.Errorf("bucket %s-%s: reading orders: %w", bucket.Start, bucket.End, err)
		}

		orderIds := make([]string, len(orders))
		for i, o := range orders {
			orderIds[i] = o.ID
		}
		payments, err := paymentsForOrders(ctx, db, orderIds)
		if err != nil {
			return nil, fmt.Errorf("bucket %s-%s: reading payments: %w", bucket.Start, bucket.End, err)
		}
		items, err := itemsForOrders(ctx, db, orderIds)
		if err != nil {
			return nil, fmt.Errorf("bucket %s-%s: reading order items: %w", bucket.Start, bucket.End, err)
		}

		metrics := aggregateMaster(orders, payments, items)

		row := MasterRow{
			Date:            opts.Date,
			TimeBucketStart: bucket.Start,
			TimeBucketEnd:   bucket.End,
			Weekday:         weekday,
			IsWeekend:       isWeekendDay,

			TotalOrders:          metrics.TotalOrders,
			TotalRevenue:         metrics.TotalRevenue,
			AvgOrderValue:        metrics.AvgOrderValue,
			TotalItems:           metrics.TotalItems,
			UniqueTables:         metrics.UniqueTables,
			AvgTableOccupancyMin: metrics.AvgTableOccupancyMin,
			NumCashPayments:      metrics.NumCashPayments,
			NumCardPayments:      metrics.NumCardPayments,
			NumCancelledOrders:   metrics.NumCancelledOrders,
		}

		obs, err := weatherAtOrAfter(ctx, db, bucket.StartTime(day), dayEnd)
		if err != nil {
			return nil, fmt.Errorf("bucket %s-%s: reading weather: %w", bucket.Start, bucket.End, err)
		}
		if obs != nil {
			row.TempC = &obs.TempC
			row.FeelsLikeC = &obs.FeelsLikeC
			row.Humidity = &obs.Humidity
			row.WindSpeed = &obs.WindSpeed
			row.WeatherMain = &obs.WeatherMain
			row.WeatherDesc = &obs.WeatherDesc
			row.IsRain = boolToInt(obs.IsRain)
			row.IsSnow = boolToInt(obs.IsSnow)
			row.IsStorm = boolToInt(isStorm(obs.WeatherMain))
		}

		rows = append(rows, row)
	}
	return rows, nil
}
