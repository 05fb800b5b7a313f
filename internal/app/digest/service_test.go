package digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"order-reports/internal/domain"
	"order-reports/internal/interfaces"
)

type noopLogger struct{}

func (noopLogger) Info(action, message, requestID string, details map[string]any)             {}
func (noopLogger) Debug(action, message, requestID string, details map[string]any)            {}
func (noopLogger) Error(action, message, requestID string, details map[string]any, err error) {}

type stubReports struct {
	dayStatistic func(ctx context.Context, start, end time.Time) ([]domain.OrderDayStatistic, error)
}

func (s *stubReports) SentToStoreOrders(context.Context, uuid.UUID) ([]domain.OrderSentToStore, error) {
	return nil, nil
}

func (s *stubReports) StoreStatistic(context.Context, decimal.Decimal, decimal.Decimal) ([]domain.StoreStatistic, error) {
	return nil, nil
}

func (s *stubReports) OrdersWithProductInCategories(context.Context, []string) ([]domain.OrderShortInfo, error) {
	return nil, nil
}

func (s *stubReports) OrdersWithProductInCategoryTree(context.Context, string) ([]domain.OrderWithTotalPrice, error) {
	return nil, nil
}

func (s *stubReports) OrderDayStatistic(ctx context.Context, start, end time.Time) ([]domain.OrderDayStatistic, error) {
	return s.dayStatistic(ctx, start, end)
}

func (s *stubReports) CategoryDescendants(context.Context, string) ([]uuid.UUID, error) {
	return nil, nil
}

type recordingPublisher struct {
	published []interfaces.DailyDigestMessage
	err       error
}

func (p *recordingPublisher) PublishDailyDigest(_ context.Context, msg interfaces.DailyDigestMessage) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

func TestPublishOnce(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := []domain.OrderDayStatistic{
		{
			Day:         day,
			TotalAmount: decimal.NewFromInt(300),
			Percentage:  decimal.NewFromInt(75),
		},
		{
			Day:         day.AddDate(0, 0, -1),
			TotalAmount: decimal.NewFromInt(100),
			Percentage:  decimal.NewFromInt(25),
			Diff:        decimal.NullDecimal{Valid: true, Decimal: decimal.NewFromInt(-200)},
		},
	}

	var gotStart, gotEnd time.Time
	reports := &stubReports{
		dayStatistic: func(_ context.Context, start, end time.Time) ([]domain.OrderDayStatistic, error) {
			gotStart, gotEnd = start, end
			return rows, nil
		},
	}
	publisher := &recordingPublisher{}

	svc := NewService(reports, publisher, noopLogger{}, time.Hour, 7)

	err := svc.PublishOnce(context.Background())
	require.NoError(t, err)

	// trailing window of 7 days, inclusive of today
	require.Equal(t, 6, int(gotEnd.Sub(gotStart).Hours()/24))

	require.Len(t, publisher.published, 1)
	msg := publisher.published[0]
	require.Equal(t, gotStart.Format("2006-01-02"), msg.StartDate)
	require.Equal(t, gotEnd.Format("2006-01-02"), msg.EndDate)
	require.Len(t, msg.Days, 2)

	require.Equal(t, "2024-01-02", msg.Days[0].Day)
	require.Nil(t, msg.Days[0].Diff)
	require.NotNil(t, msg.Days[1].Diff)
	require.True(t, msg.Days[1].Diff.Equal(decimal.NewFromInt(-200)))
}

func TestPublishOnceReportError(t *testing.T) {
	cause := errors.New("db down")
	reports := &stubReports{
		dayStatistic: func(context.Context, time.Time, time.Time) ([]domain.OrderDayStatistic, error) {
			return nil, cause
		},
	}

	svc := NewService(reports, &recordingPublisher{}, noopLogger{}, time.Hour, 7)

	err := svc.PublishOnce(context.Background())
	require.ErrorIs(t, err, cause)
}

func TestPublishOncePublisherError(t *testing.T) {
	cause := errors.New("broker gone")
	reports := &stubReports{
		dayStatistic: func(context.Context, time.Time, time.Time) ([]domain.OrderDayStatistic, error) {
			return nil, nil
		},
	}

	svc := NewService(reports, &recordingPublisher{err: cause}, noopLogger{}, time.Hour, 7)

	err := svc.PublishOnce(context.Background())
	require.ErrorIs(t, err, cause)
}

func TestRunStopsOnCancel(t *testing.T) {
	reports := &stubReports{
		dayStatistic: func(context.Context, time.Time, time.Time) ([]domain.OrderDayStatistic, error) {
			return nil, nil
		},
	}

	svc := NewService(reports, &recordingPublisher{}, noopLogger{}, time.Hour, 7)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}
