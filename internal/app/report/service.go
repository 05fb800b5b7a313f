package report

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"order-reports/internal/adapter/logger"
	"order-reports/internal/domain"
	"order-reports/internal/interfaces"
)

// Service runs the analytical reports. It validates nothing beyond the
// degenerate-input short circuits below: unknown identifiers and empty
// ranges come back from the database as empty results.
type Service struct {
	repo   interfaces.ReportRepository
	logger logger.Logger
}

func NewService(repo interfaces.ReportRepository, logger logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) SentToStoreOrders(ctx context.Context, storeID uuid.UUID) ([]domain.OrderSentToStore, error) {
	params := map[string]any{"store_id": storeID.String()}

	result, err := s.repo.FindSentToStoreOrders(ctx, storeID)
	if err != nil {
		return nil, s.reportError("sent_to_store_orders", params, err)
	}

	s.logReport("sent_to_store_orders", params, len(result))
	return result, nil
}

func (s *Service) StoreStatistic(ctx context.Context, lowerBound, upperBound decimal.Decimal) ([]domain.StoreStatistic, error) {
	params := map[string]any{
		"lower_bound": lowerBound.String(),
		"upper_bound": upperBound.String(),
	}

	// A degenerate range is not rejected here: the HAVING clause simply
	// matches nothing and the report comes back empty.
	result, err := s.repo.FindStoreStatistic(ctx, lowerBound, upperBound)
	if err != nil {
		return nil, s.reportError("store_statistic", params, err)
	}

	s.logReport("store_statistic", params, len(result))
	return result, nil
}

func (s *Service) OrdersWithProductInCategories(ctx context.Context, categoryNames []string) ([]domain.OrderShortInfo, error) {
	params := map[string]any{"category_names": categoryNames}

	// An empty name list matches nothing; skip the round trip.
	if len(categoryNames) == 0 {
		s.logReport("orders_in_categories", params, 0)
		return nil, nil
	}

	result, err := s.repo.FindOrdersWithProductInCategories(ctx, categoryNames)
	if err != nil {
		return nil, s.reportError("orders_in_categories", params, err)
	}

	s.logReport("orders_in_categories", params, len(result))
	return result, nil
}

func (s *Service) OrdersWithProductInCategoryTree(ctx context.Context, categoryName string) ([]domain.OrderWithTotalPrice, error) {
	params := map[string]any{"category_name": categoryName}

	result, err := s.repo.FindOrdersWithProductInCategoryTree(ctx, categoryName)
	if err != nil {
		return nil, s.reportError("orders_in_category_tree", params, err)
	}

	s.logReport("orders_in_category_tree", params, len(result))
	return result, nil
}

func (s *Service) OrderDayStatistic(ctx context.Context, startDate, endDate time.Time) ([]domain.OrderDayStatistic, error) {
	params := map[string]any{
		"start_date": startDate.Format("2006-01-02"),
		"end_date":   endDate.Format("2006-01-02"),
	}

	// An inverted range cannot match any day; skip the round trip.
	if startDate.After(endDate) {
		s.logReport("order_day_statistic", params, 0)
		return nil, nil
	}

	result, err := s.repo.FindOrderDayStatistic(ctx, startDate, endDate)
	if err != nil {
		return nil, s.reportError("order_day_statistic", params, err)
	}

	s.logReport("order_day_statistic", params, len(result))
	return result, nil
}

func (s *Service) CategoryDescendants(ctx context.Context, categoryName string) ([]uuid.UUID, error) {
	params := map[string]any{"category_name": categoryName}

	result, err := s.repo.ResolveCategoryDescendants(ctx, categoryName)
	if err != nil {
		return nil, s.reportError("category_descendants", params, err)
	}

	s.logReport("category_descendants", params, len(result))
	return result, nil
}

// reportError classifies a repository failure. Mapping errors already name
// the report and pass through unchanged; everything else becomes a
// QueryExecutionError carrying the report name and parameters.
func (s *Service) reportError(report string, params map[string]any, err error) error {
	s.logger.Error("report_failed", "Report execution failed", "", map[string]any{
		"report": report,
		"params": params,
	}, err)

	var mappingErr *domain.ResultMappingError
	if errors.As(err, &mappingErr) {
		return err
	}

	return &domain.QueryExecutionError{Report: report, Params: params, Err: err}
}

func (s *Service) logReport(report string, params map[string]any, rowCount int) {
	s.logger.Debug("report_completed", "Report completed", "", map[string]any{
		"report": report,
		"params": params,
		"rows":   rowCount,
	})
}
