package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"order-reports/internal/domain"
)

// Интерфейсы Репозиториев (Adapter/Postgres)
type ReportRepository interface {
	// FindSentToStoreOrders returns orders of the given store that ever
	// reached SENT_TO_STORE, newest first, with their line-total sums.
	FindSentToStoreOrders(ctx context.Context, storeID uuid.UUID) ([]domain.OrderSentToStore, error)

	// FindStoreStatistic returns per-store distinct order counts for the
	// COMPLETED, CANCELED and REJECTED statuses, restricted to stores whose
	// summed order value lies strictly between the bounds.
	FindStoreStatistic(ctx context.Context, lowerBound, upperBound decimal.Decimal) ([]domain.StoreStatistic, error)

	// FindOrdersWithProductInCategories returns orders whose product
	// categories all belong to the given name list.
	FindOrdersWithProductInCategories(ctx context.Context, categoryNames []string) ([]domain.OrderShortInfo, error)

	// FindOrdersWithProductInCategoryTree returns orders containing at least
	// one product whose category descends from a category with the given
	// name, each with its aggregated total price.
	FindOrdersWithProductInCategoryTree(ctx context.Context, categoryName string) ([]domain.OrderWithTotalPrice, error)

	// FindOrderDayStatistic returns per-day revenue inside the date range
	// with the share of the whole dataset and the day-over-day delta,
	// newest day first.
	FindOrderDayStatistic(ctx context.Context, startDate, endDate time.Time) ([]domain.OrderDayStatistic, error)

	// ResolveCategoryDescendants returns identifiers of every category whose
	// ancestor chain passes through a category with the given name.
	ResolveCategoryDescendants(ctx context.Context, categoryName string) ([]uuid.UUID, error)
}
