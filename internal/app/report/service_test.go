package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"order-reports/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(action, message, requestID string, details map[string]any)             {}
func (noopLogger) Debug(action, message, requestID string, details map[string]any)            {}
func (noopLogger) Error(action, message, requestID string, details map[string]any, err error) {}

// stubRepository lets each test plug in just the method it needs; untouched
// methods fail loudly.
type stubRepository struct {
	t *testing.T

	findSentToStore    func(ctx context.Context, storeID uuid.UUID) ([]domain.OrderSentToStore, error)
	findStoreStatistic func(ctx context.Context, lower, upper decimal.Decimal) ([]domain.StoreStatistic, error)
	findInCategories   func(ctx context.Context, names []string) ([]domain.OrderShortInfo, error)
	findInCategoryTree func(ctx context.Context, name string) ([]domain.OrderWithTotalPrice, error)
	findDayStatistic   func(ctx context.Context, start, end time.Time) ([]domain.OrderDayStatistic, error)
	resolveDescendants func(ctx context.Context, name string) ([]uuid.UUID, error)
}

func (s *stubRepository) FindSentToStoreOrders(ctx context.Context, storeID uuid.UUID) ([]domain.OrderSentToStore, error) {
	if s.findSentToStore == nil {
		s.t.Fatal("unexpected FindSentToStoreOrders call")
	}
	return s.findSentToStore(ctx, storeID)
}

func (s *stubRepository) FindStoreStatistic(ctx context.Context, lower, upper decimal.Decimal) ([]domain.StoreStatistic, error) {
	if s.findStoreStatistic == nil {
		s.t.Fatal("unexpected FindStoreStatistic call")
	}
	return s.findStoreStatistic(ctx, lower, upper)
}

func (s *stubRepository) FindOrdersWithProductInCategories(ctx context.Context, names []string) ([]domain.OrderShortInfo, error) {
	if s.findInCategories == nil {
		s.t.Fatal("unexpected FindOrdersWithProductInCategories call")
	}
	return s.findInCategories(ctx, names)
}

func (s *stubRepository) FindOrdersWithProductInCategoryTree(ctx context.Context, name string) ([]domain.OrderWithTotalPrice, error) {
	if s.findInCategoryTree == nil {
		s.t.Fatal("unexpected FindOrdersWithProductInCategoryTree call")
	}
	return s.findInCategoryTree(ctx, name)
}

func (s *stubRepository) FindOrderDayStatistic(ctx context.Context, start, end time.Time) ([]domain.OrderDayStatistic, error) {
	if s.findDayStatistic == nil {
		s.t.Fatal("unexpected FindOrderDayStatistic call")
	}
	return s.findDayStatistic(ctx, start, end)
}

func (s *stubRepository) ResolveCategoryDescendants(ctx context.Context, name string) ([]uuid.UUID, error) {
	if s.resolveDescendants == nil {
		s.t.Fatal("unexpected ResolveCategoryDescendants call")
	}
	return s.resolveDescendants(ctx, name)
}

func TestSentToStoreOrdersPassesThrough(t *testing.T) {
	storeID := uuid.New()
	expected := []domain.OrderSentToStore{{ID: uuid.New(), TotalPrice: decimal.NewFromInt(10)}}

	svc := NewService(&stubRepository{
		t: t,
		findSentToStore: func(_ context.Context, gotStore uuid.UUID) ([]domain.OrderSentToStore, error) {
			require.Equal(t, storeID, gotStore)
			return expected, nil
		},
	}, noopLogger{})

	result, err := svc.SentToStoreOrders(context.Background(), storeID)
	require.NoError(t, err)
	require.Equal(t, expected, result)
}

func TestEmptyCategoryListSkipsQuery(t *testing.T) {
	// stub without findInCategories: any repository call fails the test
	svc := NewService(&stubRepository{t: t}, noopLogger{})

	result, err := svc.OrdersWithProductInCategories(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestInvertedDateRangeSkipsQuery(t *testing.T) {
	svc := NewService(&stubRepository{t: t}, noopLogger{})

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	result, err := svc.OrderDayStatistic(context.Background(), start, end)
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestEqualDatesStillQuery(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	called := false

	svc := NewService(&stubRepository{
		t: t,
		findDayStatistic: func(_ context.Context, start, end time.Time) ([]domain.OrderDayStatistic, error) {
			called = true
			require.Equal(t, start, end)
			return nil, nil
		},
	}, noopLogger{})

	_, err := svc.OrderDayStatistic(context.Background(), day, day)
	require.NoError(t, err)
	require.True(t, called)
}

func TestRepositoryErrorBecomesQueryExecutionError(t *testing.T) {
	cause := errors.New("db unreachable")

	svc := NewService(&stubRepository{
		t: t,
		findStoreStatistic: func(context.Context, decimal.Decimal, decimal.Decimal) ([]domain.StoreStatistic, error) {
			return nil, cause
		},
	}, noopLogger{})

	_, err := svc.StoreStatistic(context.Background(), decimal.NewFromInt(100), decimal.NewFromInt(200))

	var execErr *domain.QueryExecutionError
	require.ErrorAs(t, err, &execErr)
	require.Equal(t, "store_statistic", execErr.Report)
	require.Equal(t, "100", execErr.Params["lower_bound"])
	require.ErrorIs(t, err, cause)
}

func TestMappingErrorPassesThroughUnwrapped(t *testing.T) {
	mappingErr := &domain.ResultMappingError{Report: "orders_in_category_tree", Err: errors.New("bad column")}

	svc := NewService(&stubRepository{
		t: t,
		findInCategoryTree: func(context.Context, string) ([]domain.OrderWithTotalPrice, error) {
			return nil, mappingErr
		},
	}, noopLogger{})

	_, err := svc.OrdersWithProductInCategoryTree(context.Background(), "Electronics")

	var target *domain.ResultMappingError
	require.ErrorAs(t, err, &target)
	require.Same(t, mappingErr, target)

	var execErr *domain.QueryExecutionError
	require.False(t, errors.As(err, &execErr))
}

func TestCategoryDescendantsPassesThrough(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	svc := NewService(&stubRepository{
		t: t,
		resolveDescendants: func(_ context.Context, name string) ([]uuid.UUID, error) {
			require.Equal(t, "Electronics", name)
			return ids, nil
		},
	}, noopLogger{})

	result, err := svc.CategoryDescendants(context.Background(), "Electronics")
	require.NoError(t, err)
	require.Equal(t, ids, result)
}
