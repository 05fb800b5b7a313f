package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"order-reports/internal/adapter/logger"
	"order-reports/internal/interfaces"
)

type DigestHandler struct {
	logger logger.Logger
}

func NewDigestHandler(logger logger.Logger) *DigestHandler {
	return &DigestHandler{
		logger: logger,
	}
}

func (h *DigestHandler) HandleDigest(ctx context.Context, body []byte) error {
	var msg interfaces.DailyDigestMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse digest", "", nil, err)
		return err
	}

	h.logger.Debug("digest_received", fmt.Sprintf("Received digest for %s..%s", msg.StartDate, msg.EndDate),
		"", map[string]any{
			"start_date": msg.StartDate,
			"end_date":   msg.EndDate,
			"days":       len(msg.Days),
		})

	// Print to console
	for _, day := range msg.Days {
		diff := "n/a"
		if day.Diff != nil {
			diff = day.Diff.String()
		}
		fmt.Printf("Digest %s: total %s, share %s%%, day-over-day %s\n",
			day.Day, day.TotalAmount.String(), day.Percentage.StringFixed(2), diff)
	}

	return nil
}
