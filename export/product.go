package export

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// BuildProductRows runs the per-product aggregation for one business date.
// Unlike the master build, buckets without activity contribute no rows.
func BuildProductRows(ctx context.Context, db *gorm.DB, opts Options) ([]ProductRow, error) {
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

	var rows []ProductRow
	for _, bucket := range buckets {
		orders, err := ordersOpenedBetween(ctx, db, opts.OrganizationId, bucket.StartTime(day), bucket.EndTime(day))
		if err != nil {
			return nil, fmt.Errorf("bucket %s-%s: reading orders: %w", bucket.Start, bucket.End, err)
		}
		if len(orders) == 0 {
			continue
		}
		orderIds := make([]string, len(orders))
		for i, o := range orders {
			orderIds[i] = o.ID
		}

		lines, err := productSalesForOrders(ctx, db, orderIds)
		if err != nil {
			return nil, fmt.Errorf("bucket %s-%s: reading product sales: %w", bucket.Start, bucket.End, err)
		}

		for _, agg := range aggregateProducts(lines) {
			rows = append(rows, ProductRow{
				Date:            opts.Date,
				TimeBucketStart: bucket.Start,
				TimeBucketEnd:   bucket.End,
				ProductId:       agg.MenuItemId,
				ProductName:     agg.ProductName,
				Category:        agg.Category,
				QtySold:         agg.Quantity,
				Revenue:         agg.TotalPrice,
			})
		}
	}
	return rows, nil
}
