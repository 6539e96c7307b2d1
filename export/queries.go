package export

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/seferidata/pos_backend/models"
	"gorm.io/gorm"
)

// ordersOpenedBetween returns the organization's orders opened in [start, end).
func ordersOpenedBetween(ctx context.Context, db *gorm.DB, organizationId string, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := db.WithContext(ctx).
		Where("organization_id = ? AND opened_at >= ? AND opened_at < ?", organizationId, start, end).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func paymentsForOrders(ctx context.Context, db *gorm.DB, orderIds []string) ([]models.Payment, error) {
	if len(orderIds) == 0 {
		return nil, nil
	}
	var payments []models.Payment
	if err := db.WithContext(ctx).Where("order_id IN ?", orderIds).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func itemsForOrders(ctx context.Context, db *gorm.DB, orderIds []string) ([]models.OrderItem, error) {
	if len(orderIds) == 0 {
		return nil, nil
	}
	var items []models.OrderItem
	if err := db.WithContext(ctx).Where("order_id IN ?", orderIds).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// productSalesForOrders reads non-cancelled order items joined to menu item and
// category. A missing category relation comes back as the "Unknown" sentinel,
// never NULL.
func productSalesForOrders(ctx context.Context, db *gorm.DB, orderIds []string) ([]productSaleLine, error) {
	if len(orderIds) == 0 {
		return nil, nil
	}
	var lines []productSaleLine
	err := db.WithContext(ctx).Raw(`
		SELECT
			oi.menu_item_id AS menu_item_id,
			mi.name AS product_name,
			COALESCE(mc.name, 'Unknown') AS category,
			oi.quantity AS quantity,
			oi.total_price AS total_price
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		LEFT JOIN menu_categories mc ON mc.id = mi.category_id
		WHERE oi.order_id IN ? AND oi.status <> 'cancelled'
		ORDER BY oi.created_at, oi.id
	`, orderIds).Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// weatherAtOrAfter returns the earliest observation with observed_at in
// [at, dayEnd), or nil when the date has none from that point on. The lookup is
// deliberately forward-only: a bucket never borrows an earlier observation.
func weatherAtOrAfter(ctx context.Context, db *gorm.DB, at, dayEnd time.Time) (*models.WeatherObservation, error) {
	var obs models.WeatherObservation
	err := db.WithContext(ctx).
		Where("observed_at >= ? AND observed_at < ?", at, dayEnd).
		Order("observed_at ASC").
		First(&obs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &obs, nil
}
