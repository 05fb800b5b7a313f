package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Сообщения RabbitMQ
type DayStatisticEntry struct {
	Day         string           `json:"day"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Percentage  decimal.Decimal  `json:"percentage"`
	Diff        *decimal.Decimal `json:"diff,omitempty"`
}

type DailyDigestMessage struct {
	GeneratedAt time.Time           `json:"generated_at"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Days        []DayStatisticEntry `json:"days"`
}

// Интерфейсы Messaging (Adapter/RabbitMQ)
type MessagePublisher interface {
	PublishDailyDigest(ctx context.Context, msg DailyDigestMessage) error
}

type MessageConsumer interface {
	ConsumeDigests(ctx context.Context, handler DigestHandler) error
}

type DigestHandler func(ctx context.Context, body []byte) error
