package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/seferidata/pos_backend/config"
	"bitbucket.org/seferidata/pos_backend/models"
	"bitbucket.org/seferidata/pos_backend/utils"
	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrNotArchivable is returned when the requested business date has not ended
// yet (today or a future date in the organization's timezone).
var ErrNotArchivable = errors.New("business date is not archivable yet")

func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}

// ArchiveDay moves one business date's transactional activity into archival
// form inside a single transaction:
//
//  1. upsert the DailySalesArchive aggregate from the date's live orders and
//     payments. The duplicate-key branch is additive: live rows are deleted in
//     step 3, so each contributes to the totals exactly once, and late-synced
//     rows archived in a later run add to the existing totals instead of
//     replacing them,
//  2. copy the live orders and order items into the archived tables (INSERT
//     IGNORE on identical primary keys),
//  3. delete the live payments, order items and orders of that date.
//
// All-or-nothing: a failure anywhere rolls the whole day back and leaves the
// live store untouched. Re-running for an already-archived date finds no live
// rows and changes nothing. Two processes racing on the same date are safe for
// the same reason; the keyed writes carry the invariant, not a lock.
func ArchiveDay(ctx context.Context, organizationId string, businessDate string) error {
	if organizationId == "" {
		return fmt.Errorf("%w: organization id is required", utils.ErrorInvalidInput)
	}
	day, err := utils.ParseBusinessDate(businessDate)
	if err != nil {
		return err
	}

	db := config.GetDB()
	org, err := models.GetOrganizationById(ctx, organizationId)
	if err != nil {
		return fmt.Errorf("loading organization %s: %w", organizationId, err)
	}

	today, err := utils.ConvertToDate(time.Now().UTC(), org.Timezone)
	if err != nil {
		return err
	}
	// Compare calendar dates only; day is parsed at midnight UTC.
	if !dayBefore(day, today) {
		return fmt.Errorf("%w: %s", ErrNotArchivable, businessDate)
	}

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Upsert the per-day aggregate from the live rows. Payments of
		// cancelled orders still count toward revenue. The update branch
		// must add, not replace: the rows already folded into the archive
		// were deleted by the run that archived them.
		if err := tx.Exec(`
			INSERT INTO daily_sales_archives
				(organization_id, business_date, total_orders, total_revenue,
				 total_cash, total_credit_card, total_online, total_other,
				 archived_at, created_at)
			SELECT
				o.organization_id,
				?,
				COUNT(DISTINCT o.id),
				COALESCE(SUM(p.amount), 0),
				COALESCE(SUM(CASE WHEN p.payment_method = 'cash' THEN p.amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN p.payment_method = 'credit_card' THEN p.amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN p.payment_method = 'online' THEN p.amount ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN p.payment_method = 'other' THEN p.amount ELSE 0 END), 0),
				NOW(),
				NOW()
			FROM orders o
			LEFT JOIN payments p ON p.order_id = o.id
			WHERE
				o.organization_id = ?
				AND o.opened_at >= ?
				AND o.opened_at < ?
			GROUP BY o.organization_id
			ON DUPLICATE KEY UPDATE
				total_orders = total_orders + VALUES(total_orders),
				total_revenue = total_revenue + VALUES(total_revenue),
				total_cash = total_cash + VALUES(total_cash),
				total_credit_card = total_credit_card + VALUES(total_credit_card),
				total_online = total_online + VALUES(total_online),
				total_other = total_other + VALUES(total_other),
				archived_at = NOW()
		`, day.Format(utils.DateLayout), organizationId, dayStart, dayEnd).Error; err != nil {
			return err
		}

		// Denormalized history. Identical primary keys make re-archival a no-op.
		if err := tx.Exec(`
			INSERT IGNORE INTO archived_orders
				(id, organization_id, business_date, table_id, status, opened_at,
				 closed_at, opened_by_user_id, closed_by_user_id, archived_at)
			SELECT
				o.id, o.organization_id, ?, o.table_id, o.status, o.opened_at,
				o.closed_at, o.opened_by_user_id, o.closed_by_user_id, NOW()
			FROM orders o
			WHERE
				o.organization_id = ?
				AND o.opened_at >= ?
				AND o.opened_at < ?
		`, day.Format(utils.DateLayout), organizationId, dayStart, dayEnd).Error; err != nil {
			return err
		}

		if err := tx.Exec(`
			INSERT IGNORE INTO archived_order_items
				(id, order_id, business_date, menu_item_id, quantity, unit_price,
				 total_price, status, created_at, archived_at)
			SELECT
				oi.id, oi.order_id, ?, oi.menu_item_id, oi.quantity, oi.unit_price,
				oi.total_price, oi.status, oi.created_at, NOW()
			FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE
				o.organization_id = ?
				AND o.opened_at >= ?
				AND o.opened_at < ?
		`, day.Format(utils.DateLayout), organizationId, dayStart, dayEnd).Error; err != nil {
			return err
		}

		// Clear the live store. Children first, orders last.
		if err := tx.Exec(`
			DELETE p FROM payments p
			JOIN orders o ON o.id = p.order_id
			WHERE o.organization_id = ? AND o.opened_at >= ? AND o.opened_at < ?
		`, organizationId, dayStart, dayEnd).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			DELETE oi FROM order_items oi
			JOIN orders o ON o.id = oi.order_id
			WHERE o.organization_id = ? AND o.opened_at >= ? AND o.opened_at < ?
		`, organizationId, dayStart, dayEnd).Error; err != nil {
			return err
		}
		return tx.Exec(`
			DELETE FROM orders
			WHERE organization_id = ? AND opened_at >= ? AND opened_at < ?
		`, organizationId, dayStart, dayEnd).Error
	})
}

// dayBefore compares calendar dates ignoring location.
func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
