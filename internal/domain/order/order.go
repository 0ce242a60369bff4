package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/phetoho/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status represents the status of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// IsValid checks if the status is a known order status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status.
// Orders move pending -> processing -> shipped -> delivered; cancellation is
// allowed from any non-terminal state.
func (s Status) CanTransitionTo(target Status) bool {
	if s.IsTerminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	switch s {
	case StatusPending:
		return target == StatusProcessing
	case StatusProcessing:
		return target == StatusShipped
	case StatusShipped:
		return target == StatusDelivered
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Item is a single order line: an opaque product reference and a quantity.
// Items reference products only loosely; there is no enforced foreign key.
type Item struct {
	ProductID uint `json:"id"`
	Quantity  int  `json:"quantity"`
}

// ItemList is the ordered sequence of line items, stored as a JSON text blob
// in the orders table (matching the wire format `[{"id": 1, "quantity": 2}]`).
type ItemList []Item

// Value implements driver.Valuer, serializing the item list to JSON text
func (l ItemList) Value() (driver.Value, error) {
	if l == nil {
		l = ItemList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner, deserializing the JSON text blob
func (l *ItemList) Scan(value interface{}) error {
	if value == nil {
		*l = ItemList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
	if len(data) == 0 {
		*l = ItemList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// CustomerInfo identifies the purchaser. ID is optional; name and email are
// required.
type CustomerInfo struct {
	ID    string `json:"customer_id"`
	Name  string `json:"customer_name"`
	Email string `json:"customer_email"`
}

// Order is the aggregate for a customer purchase. Total is caller-supplied
// and deliberately not recomputed from items (client-trusted pricing).
type Order struct {
	ID            string          `gorm:"type:varchar(20);primaryKey"`
	CustomerID    string          `gorm:"type:varchar(64)"`
	CustomerName  string          `gorm:"type:varchar(200);not null"`
	CustomerEmail string          `gorm:"type:varchar(200);not null"`
	Items         ItemList        `gorm:"type:text;not null"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status        Status          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order with the given generated id
func NewOrder(id string, customer CustomerInfo, items ItemList, total decimal.Decimal) (*Order, error) {
	if id == "" {
		return nil, shared.NewValidationError("Order id cannot be empty")
	}
	if customer.Name == "" {
		return nil, shared.NewValidationError("Customer name is required")
	}
	if customer.Email == "" {
		return nil, shared.NewValidationError("Customer email is required")
	}
	if total.IsNegative() {
		return nil, shared.NewValidationError("Total cannot be negative")
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, shared.NewValidationError("Item quantity must be positive")
		}
	}
	if items == nil {
		items = ItemList{}
	}

	customerID := customer.ID
	if customerID == "" {
		customerID = "guest"
	}

	now := time.Now()
	return &Order{
		ID:            id,
		CustomerID:    customerID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		Items:         items,
		Total:         total,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ChangeStatus transitions the order to the target status, enforcing the
// state machine
func (o *Order) ChangeStatus(target Status) error {
	if !target.IsValid() {
		return shared.NewValidationError(fmt.Sprintf("Unknown order status %q", target))
	}
	if target == o.Status {
		return nil
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot transition order from %s to %s", o.Status, target))
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return nil
}

// SetTotal replaces the caller-supplied total
func (o *Order) SetTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return shared.NewValidationError("Total cannot be negative")
	}
	o.Total = total
	o.UpdatedAt = time.Now()
	return nil
}

// SetItems replaces the line items
func (o *Order) SetItems(items ItemList) error {
	for _, item := range items {
		if item.Quantity <= 0 {
			return shared.NewValidationError("Item quantity must be positive")
		}
	}
	if items == nil {
		items = ItemList{}
	}
	o.Items = items
	o.UpdatedAt = time.Now()
	return nil
}
