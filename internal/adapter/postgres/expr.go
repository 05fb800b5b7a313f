package postgres

import (
	"fmt"

	"order-reports/internal/domain"
)

// Reusable SQL fragments shared by the report planners.

// countDistinctByStatus renders a conditional distinct count of orders whose
// current status equals the given one:
//
//	COUNT(DISTINCT CASE WHEN o.status = 'X' THEN o.id END)
//
// The CASE yields NULL for non-matching rows, so each status can be counted
// in the same grouped pass instead of a separate scan per status. The status
// is rendered as a literal rather than a bind parameter: values come from
// the closed domain.Status enum, never from caller input.
func countDistinctByStatus(status domain.Status) string {
	return fmt.Sprintf("COUNT(DISTINCT CASE WHEN %s = '%s' THEN %s END)",
		orderStatus.ref(), status, orderID.ref())
}

// lineTotalSum renders the aggregated order value over joined item and
// product rows: SUM(p.price * oi.quantity).
func lineTotalSum() string {
	return fmt.Sprintf("SUM(%s * %s)", productPrice.ref(), itemQuantity.ref())
}

// sentToStoreExists renders a semi-join test for "order ever had status
// SENT_TO_STORE". An order may re-enter a status and carry several history
// rows with the same value; EXISTS keeps such orders from multiplying the
// joined item rows the way an inner join on the history table would.
func sentToStoreExists() string {
	return fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE %s = %s AND %s = '%s')",
		historyTable.from(), historyOrderID.ref(), orderID.ref(), historyStatus.ref(), domain.StatusSentToStore)
}

// categoryClosureCTE renders the recursive CTE computing the descendant set
// of every category named by the bind parameter at position nameArg:
//
//	all_category AS (base: children of categories with the given name,
//	                 step: children of anything already in the set)
//
// The traversal terminates because the parent relation is an acyclic forest.
// The produced set may contain duplicates when nested categories share the
// name; consumers either SELECT DISTINCT from it or deduplicate the order
// identifiers they derive from it.
func categoryClosureCTE(nameArg int) string {
	parent := categoryTable.as("parent")

	return fmt.Sprintf(`all_category AS (
		SELECT %[1]s AS id
		FROM %[2]s
		JOIN %[3]s ON %[4]s = %[5]s
		WHERE %[6]s = $%[7]d
	UNION ALL
		SELECT %[1]s AS id
		FROM %[2]s
		JOIN all_category ON all_category.id = %[5]s
	)`,
		categoryID.ref(),         // 1
		categoryTable.from(),     // 2
		parent.from(),            // 3
		parent.col("id").ref(),   // 4
		categoryParentID.ref(),   // 5
		parent.col("name").ref(), // 6
		nameArg,                  // 7
	)
}
