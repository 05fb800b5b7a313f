package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"order-reports/internal/domain"
)

// Интерфейсы Сервисов (Business Logic)
type ReportService interface {
	SentToStoreOrders(ctx context.Context, storeID uuid.UUID) ([]domain.OrderSentToStore, error)
	StoreStatistic(ctx context.Context, lowerBound, upperBound decimal.Decimal) ([]domain.StoreStatistic, error)
	OrdersWithProductInCategories(ctx context.Context, categoryNames []string) ([]domain.OrderShortInfo, error)
	OrdersWithProductInCategoryTree(ctx context.Context, categoryName string) ([]domain.OrderWithTotalPrice, error)
	OrderDayStatistic(ctx context.Context, startDate, endDate time.Time) ([]domain.OrderDayStatistic, error)
	CategoryDescendants(ctx context.Context, categoryName string) ([]uuid.UUID, error)
}
