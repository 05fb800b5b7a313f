package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"

	"order-reports/internal/domain"
)

func TestSchemaDescriptors(t *testing.T) {
	require.Equal(t, `"order" o`, orderTable.from())
	require.Equal(t, "o.created_at", orderCreatedAt.ref())

	parent := categoryTable.as("parent")
	require.Equal(t, "category parent", parent.from())
	require.Equal(t, "parent.name", parent.col("name").ref())
	// rebinding must not touch the original descriptor
	require.Equal(t, "c.name", categoryName.ref())
}

func TestCountDistinctByStatus(t *testing.T) {
	got := countDistinctByStatus(domain.StatusCompleted)
	require.Equal(t, "COUNT(DISTINCT CASE WHEN o.status = 'COMPLETED' THEN o.id END)", got)
}

func TestLineTotalSum(t *testing.T) {
	require.Equal(t, "SUM(p.price * oi.quantity)", lineTotalSum())
}

func TestSentToStoreExists(t *testing.T) {
	got := sentToStoreExists()
	require.Contains(t, got, "EXISTS (SELECT 1 FROM order_status_history h")
	require.Contains(t, got, "h.order_id = o.id")
	require.Contains(t, got, "h.status = 'SENT_TO_STORE'")
}

func TestCategoryClosureCTE(t *testing.T) {
	got := categoryClosureCTE(3)

	require.Contains(t, got, "all_category AS (")
	require.Contains(t, got, "UNION ALL")
	// base step: children of categories with the requested name
	require.Contains(t, got, "JOIN category parent ON parent.id = c.parent_id")
	require.Contains(t, got, "WHERE parent.name = $3")
	// recursive step: children of anything already collected
	require.Contains(t, got, "JOIN all_category ON all_category.id = c.parent_id")
}
