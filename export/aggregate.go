package export

import (
	"strings"

	"bitbucket.org/seferidata/pos_backend/models"
	"github.com/shopspring/decimal"
)

// masterMetrics are the sales figures of a single bucket before rounding.
type masterMetrics struct {
	TotalOrders          int
	TotalRevenue         decimal.Decimal
	AvgOrderValue        decimal.Decimal
	TotalItems           int
	UniqueTables         int
	AvgTableOccupancyMin *float64
	NumCashPayments      int
	NumCardPayments      int
	NumCancelledOrders   int
}

// aggregateMaster computes one bucket's sales metrics from the orders opened in
// the bucket plus their payments and items.
//
// Policy notes:
//   - payments are summed regardless of order status, so a cancelled order that
//     was nevertheless paid still contributes revenue;
//   - cancelled items are excluded from total_items;
//   - occupancy averages only orders with closed_at set, and is nil (not zero)
//     when no order in the bucket has closed.
func aggregateMaster(orders []models.Order, payments []models.Payment, items []models.OrderItem) masterMetrics {
	m := masterMetrics{
		TotalRevenue:  decimal.Zero,
		AvgOrderValue: decimal.Zero,
	}
	m.TotalOrders = len(orders)
	if m.TotalOrders == 0 {
		return m
	}

	for _, p := range payments {
		m.TotalRevenue = m.TotalRevenue.Add(p.Amount)
		switch p.PaymentMethod {
		case models.PaymentMethodCash:
			m.NumCashPayments++
		case models.PaymentMethodCreditCard:
			m.NumCardPayments++
		}
	}
	m.AvgOrderValue = m.TotalRevenue.Div(decimal.NewFromInt(int64(m.TotalOrders)))

	for _, item := range items {
		if item.Status == models.OrderItemStatusCancelled {
			continue
		}
		m.TotalItems += item.Quantity
	}

	tables := make(map[string]struct{}, len(orders))
	var occupancySum float64
	var occupancyCount int
	for _, o := range orders {
		tables[o.TableId] = struct{}{}
		if o.Status == models.OrderStatusCancelled {
			m.NumCancelledOrders++
		}
		if o.ClosedAt != nil {
			occupancySum += o.ClosedAt.Sub(o.OpenedAt).Minutes()
			occupancyCount++
		}
	}
	m.UniqueTables = len(tables)
	if occupancyCount > 0 {
		avg := occupancySum / float64(occupancyCount)
		m.AvgTableOccupancyMin = &avg
	}
	return m
}

// productSaleLine is one non-cancelled order item joined to its menu item and
// category, as read by productSalesForOrders.
type productSaleLine struct {
	MenuItemId  string
	ProductName string
	Category    string
	Quantity    int
	TotalPrice  decimal.Decimal
}

// aggregateProducts collapses sale lines by menu item, summing quantity and
// revenue. Output keeps first-seen order so repeated runs over the same input
// serialize identically.
func aggregateProducts(lines []productSaleLine) []productSaleLine {
	index := make(map[string]int, len(lines))
	var out []productSaleLine
	for _, line := range lines {
		if i, ok := index[line.MenuItemId]; ok {
			out[i].Quantity += line.Quantity
			out[i].TotalPrice = out[i].TotalPrice.Add(line.TotalPrice)
			continue
		}
		index[line.MenuItemId] = len(out)
		out = append(out, line)
	}
	return out
}

// isStorm derives the storm flag from weather_main at read time, independent of
// the stored is_rain/is_snow flags.
func isStorm(weatherMain string) bool {
	return strings.EqualFold(weatherMain, "thunderstorm")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
