package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents a customer order placed against a store. The report layer
// treats it as read-only: orders are created and mutated elsewhere.
type Order struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	CustomerID     uuid.UUID
	Status         Status
	HistoryRecords []OrderStatusHistory
	Items          []OrderItem
	FinishedAt     *time.Time
	CreatedAt      time.Time
}

// NewOrder creates an order in its initial state. CreatedAt is assigned here,
// once, in UTC, and is never mutated afterwards.
func NewOrder(storeID, customerID uuid.UUID) *Order {
	return &Order{
		ID:         uuid.New(),
		StoreID:    storeID,
		CustomerID: customerID,
		Status:     StatusNew,
		CreatedAt:  time.Now().UTC(),
	}
}

// OrderStatusHistory is one status transition an order passed through. An
// order may carry several records with the same status if it re-entered it.
type OrderStatusHistory struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	Status    Status
	ChangedAt time.Time
}

// OrderItem is a single order line: a product reference and a quantity.
// The line total is product price times quantity.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int64
}

// Product is a sellable item with a non-negative price, attached to exactly
// one category.
type Product struct {
	ID         uuid.UUID
	Price      decimal.Decimal
	CategoryID uuid.UUID
}

// Category is a node in the category forest. Root categories have no parent.
// The parent relation is acyclic.
type Category struct {
	ID       uuid.UUID
	Name     string
	ParentID *uuid.UUID
	Children []Category
}

// Store is referenced by orders through its identifier only.
type Store struct {
	ID uuid.UUID
}
