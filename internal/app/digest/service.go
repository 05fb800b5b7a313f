package digest

import (
	"context"
	"fmt"
	"time"

	"order-reports/internal/adapter/logger"
	"order-reports/internal/interfaces"
)

// Service periodically runs the daily order statistic for a trailing window
// and publishes the rows as a digest message.
type Service struct {
	reports    interfaces.ReportService
	publisher  interfaces.MessagePublisher
	logger     logger.Logger
	interval   time.Duration
	windowDays int
}

func NewService(
	reports interfaces.ReportService,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
	interval time.Duration,
	windowDays int,
) *Service {
	return &Service{
		reports:    reports,
		publisher:  publisher,
		logger:     logger,
		interval:   interval,
		windowDays: windowDays,
	}
}

// Run publishes one digest immediately, then one per interval until the
// context is cancelled. Publish failures are logged and the loop keeps
// going; the next tick retries with fresh data.
func (s *Service) Run(ctx context.Context) error {
	if err := s.PublishOnce(ctx); err != nil {
		s.logger.Error("digest_failed", "Failed to publish digest", "", nil, err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.PublishOnce(ctx); err != nil {
				s.logger.Error("digest_failed", "Failed to publish digest", "", nil, err)
			}
		}
	}
}

// PublishOnce builds and publishes a digest covering the trailing window
// ending today.
func (s *Service) PublishOnce(ctx context.Context) error {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -(s.windowDays - 1))

	days, err := s.reports.OrderDayStatistic(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to build digest statistic: %w", err)
	}

	msg := interfaces.DailyDigestMessage{
		GeneratedAt: time.Now().UTC(),
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Days:        make([]interfaces.DayStatisticEntry, 0, len(days)),
	}

	for _, day := range days {
		entry := interfaces.DayStatisticEntry{
			Day:         day.Day.Format("2006-01-02"),
			TotalAmount: day.TotalAmount,
			Percentage:  day.Percentage,
		}
		if day.Diff.Valid {
			diff := day.Diff.Decimal
			entry.Diff = &diff
		}
		msg.Days = append(msg.Days, entry)
	}

	if err := s.publisher.PublishDailyDigest(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish digest: %w", err)
	}

	s.logger.Info("digest_published", "Daily digest published", "", map[string]any{
		"start_date": msg.StartDate,
		"end_date":   msg.EndDate,
		"days":       len(msg.Days),
	})

	return nil
}
