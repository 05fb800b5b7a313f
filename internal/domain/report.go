package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Projections returned by the report queries. Each one is a flattened record
// assembled from several joined tables, not an entity.

// OrderSentToStore is one order that ever reached SENT_TO_STORE, with the sum
// of its line totals.
type OrderSentToStore struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	TotalPrice decimal.Decimal
}

// StoreStatistic counts distinct orders per terminal status for one store.
type StoreStatistic struct {
	StoreID        uuid.UUID
	CompletedCount int64
	CanceledCount  int64
	RejectedCount  int64
}

// OrderShortInfo identifies an order together with its store and current status.
type OrderShortInfo struct {
	ID      uuid.UUID
	StoreID uuid.UUID
	Status  Status
}

// OrderWithTotalPrice pairs an order's short info with its aggregated total.
type OrderWithTotalPrice struct {
	ShortInfo  OrderShortInfo
	TotalPrice decimal.Decimal
}

// OrderDayStatistic is one calendar day's revenue with its share of the whole
// dataset and the delta against the chronologically following day. Diff is
// absent for the most recent day in the dataset.
type OrderDayStatistic struct {
	Day         time.Time
	TotalAmount decimal.Decimal
	Percentage  decimal.Decimal
	Diff        decimal.NullDecimal
}
