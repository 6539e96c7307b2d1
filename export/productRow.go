package export

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// ProductHeader is the wire column order of the per-product export.
var ProductHeader = []string{
	"date",
	"time_bucket_start",
	"time_bucket_end",
	"product_id",
	"product_name",
	"category",
	"qty_sold",
	"revenue",
}

// ProductRow is one aggregated per-product sales record per time bucket.
// Buckets with no product activity emit no rows.
type ProductRow struct {
	Date            string
	TimeBucketStart string
	TimeBucketEnd   string
	ProductId       string
	ProductName     string
	Category        string
	QtySold         int
	Revenue         decimal.Decimal
}

func (r ProductRow) record() []string {
	return []string{
		r.Date,
		r.TimeBucketStart,
		r.TimeBucketEnd,
		r.ProductId,
		r.ProductName,
		r.Category,
		strconv.Itoa(r.QtySold),
		r.Revenue.StringFixed(2),
	}
}
