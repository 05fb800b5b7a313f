package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"order-reports/internal/domain"
	"order-reports/internal/interfaces"
)

type reportRepository struct {
	db DB
}

func NewReportRepository(db DB) interfaces.ReportRepository {
	return &reportRepository{db: db}
}

// FindSentToStoreOrders lists orders of one store that ever reached
// SENT_TO_STORE, with their aggregated line totals, newest first. Orders
// without items drop out through the inner item join.
func (r *reportRepository) FindSentToStoreOrders(ctx context.Context, storeID uuid.UUID) ([]domain.OrderSentToStore, error) {
	query := fmt.Sprintf(`
		SELECT %[1]s, %[2]s, %[3]s AS total_price
		FROM %[4]s
		JOIN %[5]s ON %[6]s = %[1]s
		JOIN %[7]s ON %[8]s = %[9]s
		WHERE %[10]s = $1 AND %[11]s
		GROUP BY %[1]s, %[2]s
		ORDER BY %[2]s DESC`,
		orderID.ref(),        // 1
		orderCreatedAt.ref(), // 2
		lineTotalSum(),       // 3
		orderTable.from(),    // 4
		itemTable.from(),     // 5
		itemOrderID.ref(),    // 6
		productTable.from(),  // 7
		productID.ref(),      // 8
		itemProductID.ref(),  // 9
		orderStoreID.ref(),   // 10
		sentToStoreExists(),  // 11
	)

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sent-to-store orders: %w", err)
	}

	return collectRows(rows, "sent_to_store_orders", func(rows Rows) (domain.OrderSentToStore, error) {
		var rec domain.OrderSentToStore
		err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.TotalPrice)
		return rec, err
	})
}

// FindStoreStatistic counts distinct COMPLETED, CANCELED and REJECTED orders
// per store in a single grouped pass, keeping only stores whose summed order
// value lies strictly between the bounds. Stores sort by the combined count
// descending; equal counts fall back to store id ascending so reruns return
// rows in the same order.
func (r *reportRepository) FindStoreStatistic(ctx context.Context, lowerBound, upperBound decimal.Decimal) ([]domain.StoreStatistic, error) {
	completed := countDistinctByStatus(domain.StatusCompleted)
	canceled := countDistinctByStatus(domain.StatusCanceled)
	rejected := countDistinctByStatus(domain.StatusRejected)

	query := fmt.Sprintf(`
		SELECT %[1]s, %[2]s AS completed_count, %[3]s AS canceled_count, %[4]s AS rejected_count
		FROM %[5]s
		JOIN %[6]s ON %[7]s = %[8]s
		JOIN %[9]s ON %[10]s = %[11]s
		GROUP BY %[1]s
		HAVING %[12]s > $1 AND %[12]s < $2
		ORDER BY %[2]s + %[3]s + %[4]s DESC, %[1]s ASC`,
		orderStoreID.ref(),  // 1
		completed,           // 2
		canceled,            // 3
		rejected,            // 4
		orderTable.from(),   // 5
		itemTable.from(),    // 6
		itemOrderID.ref(),   // 7
		orderID.ref(),       // 8
		productTable.from(), // 9
		productID.ref(),     // 10
		itemProductID.ref(), // 11
		lineTotalSum(),      // 12
	)

	rows, err := r.db.Query(ctx, query, lowerBound, upperBound)
	if err != nil {
		return nil, fmt.Errorf("failed to query store statistic: %w", err)
	}

	return collectRows(rows, "store_statistic", func(rows Rows) (domain.StoreStatistic, error) {
		var rec domain.StoreStatistic
		err := rows.Scan(&rec.StoreID, &rec.CompletedCount, &rec.CanceledCount, &rec.RejectedCount)
		return rec, err
	})
}

// FindOrdersWithProductInCategories returns orders all of whose product
// categories belong to the given name list, via a boolean AND-aggregate over
// the per-row membership test. Grouping by the order primary key lets the
// select reach the other order columns directly (postgres functional
// dependency on the PK).
func (r *reportRepository) FindOrdersWithProductInCategories(ctx context.Context, categoryNames []string) ([]domain.OrderShortInfo, error) {
	query := fmt.Sprintf(`
		SELECT %[1]s, %[2]s, %[3]s
		FROM %[4]s
		JOIN %[5]s ON %[6]s = %[1]s
		JOIN %[7]s ON %[8]s = %[9]s
		JOIN %[10]s ON %[11]s = %[12]s
		GROUP BY %[1]s
		HAVING bool_and(%[13]s = ANY($1))`,
		orderID.ref(),           // 1
		orderStoreID.ref(),      // 2
		orderStatus.ref(),       // 3
		orderTable.from(),       // 4
		itemTable.from(),        // 5
		itemOrderID.ref(),       // 6
		productTable.from(),     // 7
		productID.ref(),         // 8
		itemProductID.ref(),     // 9
		categoryTable.from(),    // 10
		categoryID.ref(),        // 11
		productCategoryID.ref(), // 12
		categoryName.ref(),      // 13
	)

	rows, err := r.db.Query(ctx, query, categoryNames)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders in categories: %w", err)
	}

	return collectRows(rows, "orders_in_categories", func(rows Rows) (domain.OrderShortInfo, error) {
		var rec domain.OrderShortInfo
		err := rows.Scan(&rec.ID, &rec.StoreID, &rec.Status)
		return rec, err
	})
}

// FindOrdersWithProductInCategoryTree resolves the descendant set of the
// named category, collects distinct orders containing a product from that
// set, then re-joins the full item rows for exactly those orders to compute
// each order's total. The re-join keeps every line of a qualifying order in
// the sum, not only the lines that matched the subtree.
func (r *reportRepository) FindOrdersWithProductInCategoryTree(ctx context.Context, categoryName string) ([]domain.OrderWithTotalPrice, error) {
	query := fmt.Sprintf(`
		WITH RECURSIVE %[1]s,
		all_order AS (
			SELECT DISTINCT %[2]s AS id
			FROM %[3]s
			JOIN %[4]s ON %[5]s = %[2]s
			JOIN %[6]s ON %[7]s = %[8]s
			JOIN all_category ON all_category.id = %[9]s
		)
		SELECT %[2]s, %[10]s, %[11]s, %[12]s AS total_price
		FROM %[3]s
		JOIN all_order ON all_order.id = %[2]s
		JOIN %[4]s ON %[5]s = %[2]s
		JOIN %[6]s ON %[7]s = %[8]s
		GROUP BY %[2]s`,
		categoryClosureCTE(1),   // 1
		orderID.ref(),           // 2
		orderTable.from(),       // 3
		itemTable.from(),        // 4
		itemOrderID.ref(),       // 5
		productTable.from(),     // 6
		productID.ref(),         // 7
		itemProductID.ref(),     // 8
		productCategoryID.ref(), // 9
		orderStoreID.ref(),      // 10
		orderStatus.ref(),       // 11
		lineTotalSum(),          // 12
	)

	rows, err := r.db.Query(ctx, query, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders in category tree: %w", err)
	}

	return collectRows(rows, "orders_in_category_tree", func(rows Rows) (domain.OrderWithTotalPrice, error) {
		var rec domain.OrderWithTotalPrice
		err := rows.Scan(&rec.ShortInfo.ID, &rec.ShortInfo.StoreID, &rec.ShortInfo.Status, &rec.TotalPrice)
		return rec, err
	})
}

// FindOrderDayStatistic aggregates revenue per calendar day, then computes
// the windowed share and day-over-day delta over the complete per-day set
// before the date filter applies. The windows live in their own CTE level so
// the percentage denominator and the LEAD partition cover every day with
// orders, not only the requested range; the newest day's diff is NULL.
func (r *reportRepository) FindOrderDayStatistic(ctx context.Context, startDate, endDate time.Time) ([]domain.OrderDayStatistic, error) {
	day := fmt.Sprintf("CAST(%s AS date)", orderCreatedAt.ref())

	query := fmt.Sprintf(`
		WITH day_order AS (
			SELECT %[1]s AS day, %[2]s AS total_amount
			FROM %[3]s
			JOIN %[4]s ON %[5]s = %[6]s
			JOIN %[7]s ON %[8]s = %[9]s
			GROUP BY %[1]s
		),
		day_statistic AS (
			SELECT day,
			       total_amount,
			       total_amount / SUM(total_amount) OVER () * 100 AS percentage,
			       total_amount - LEAD(total_amount) OVER (ORDER BY day DESC) AS diff
			FROM day_order
		)
		SELECT day, total_amount, percentage, diff
		FROM day_statistic
		WHERE day BETWEEN $1 AND $2
		ORDER BY day DESC`,
		day,                 // 1
		lineTotalSum(),      // 2
		orderTable.from(),   // 3
		itemTable.from(),    // 4
		itemOrderID.ref(),   // 5
		orderID.ref(),       // 6
		productTable.from(), // 7
		productID.ref(),     // 8
		itemProductID.ref(), // 9
	)

	rows, err := r.db.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query order day statistic: %w", err)
	}

	return collectRows(rows, "order_day_statistic", func(rows Rows) (domain.OrderDayStatistic, error) {
		var rec domain.OrderDayStatistic
		err := rows.Scan(&rec.Day, &rec.TotalAmount, &rec.Percentage, &rec.Diff)
		return rec, err
	})
}

// ResolveCategoryDescendants runs the closure CTE on its own and returns the
// deduplicated descendant identifier set. An unknown name yields an empty
// set, not an error.
func (r *reportRepository) ResolveCategoryDescendants(ctx context.Context, categoryName string) ([]uuid.UUID, error) {
	query := fmt.Sprintf(`
		WITH RECURSIVE %s
		SELECT DISTINCT id FROM all_category`,
		categoryClosureCTE(1),
	)

	rows, err := r.db.Query(ctx, query, categoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category descendants: %w", err)
	}

	return collectRows(rows, "category_descendants", func(rows Rows) (uuid.UUID, error) {
		var id uuid.UUID
		err := rows.Scan(&id)
		return id, err
	})
}
