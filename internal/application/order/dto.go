package order

import (
	"time"

	"github.com/phetoho/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is a single line item on an incoming order
type OrderItemRequest struct {
	ProductID uint `json:"id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest is the request to place a new order
type CreateOrderRequest struct {
	CustomerID    string             `json:"customer_id"`
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	Items         []OrderItemRequest `json:"items"`
	Total         decimal.Decimal    `json:"total"`
}

// UpdateOrderRequest is a partial update of an existing order. Only the
// fields present (non-nil) are applied; everything else is ignored.
type UpdateOrderRequest struct {
	Status *string             `json:"status"`
	Total  *decimal.Decimal    `json:"total"`
	Items  *[]OrderItemRequest `json:"items"`
}

// CreateOrderResponse confirms a placed order
type CreateOrderResponse struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItemResponse is a line item on an order response
type OrderItemResponse struct {
	ProductID uint `json:"id"`
	Quantity  int  `json:"quantity"`
}

// OrderSummaryResponse is the list view of an order
type OrderSummaryResponse struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	ItemCount     int             `json:"item_count"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderResponse is the detail view of an order
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// StatisticsResponse holds order-level aggregates
type StatisticsResponse struct {
	TotalOrders       int64           `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	OrdersToday       int64           `json:"orders_today"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

func toItemList(items []OrderItemRequest) order.ItemList {
	list := make(order.ItemList, 0, len(items))
	for _, item := range items {
		list = append(list, order.Item{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return list
}

// ToOrderSummaryResponse converts an order to its list view
func ToOrderSummaryResponse(o *order.Order) *OrderSummaryResponse {
	return &OrderSummaryResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		ItemCount:     len(o.Items),
		Total:         o.Total,
		Status:        o.Status.String(),
		CreatedAt:     o.CreatedAt,
	}
}

// ToOrderResponse converts an order to its detail view
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return &OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		Total:         o.Total,
		Status:        o.Status.String(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
