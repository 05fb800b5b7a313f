package domain

import "fmt"

// Status is the lifecycle state of an order. Values are stored as text in the
// database, so the constants must match the persisted representation exactly.
type Status string

const (
	StatusNew             Status = "NEW"
	StatusSentToStore     Status = "SENT_TO_STORE"
	StatusReceivedInStore Status = "RECEIVED_IN_STORE"
	StatusInProcessing    Status = "IN_PROCESSING"
	StatusProcessed       Status = "PROCESSED"
	StatusCanceled        Status = "CANCELED"
	StatusRejected        Status = "REJECTED"
	StatusCompleted       Status = "COMPLETED"
)

// AllStatuses lists every valid status value.
var AllStatuses = []Status{
	StatusNew,
	StatusSentToStore,
	StatusReceivedInStore,
	StatusInProcessing,
	StatusProcessed,
	StatusCanceled,
	StatusRejected,
	StatusCompleted,
}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return s, nil
}
