package order

import (
	"context"
	"fmt"

	"github.com/phetoho/backend/internal/domain/order"
	"github.com/phetoho/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// maxIDAttempts bounds retries when a freshly generated order id collides
const maxIDAttempts = 5

// OrderService handles order placement and lifecycle
type OrderService struct {
	orderRepo order.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo order.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// CreateOrder places a new pending order under a freshly generated id
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	id, err := s.generateID(ctx)
	if err != nil {
		return nil, err
	}

	customer := order.CustomerInfo{
		ID:    req.CustomerID,
		Name:  req.CustomerName,
		Email: req.CustomerEmail,
	}
	o, err := order.NewOrder(id, customer, toItemList(req.Items), req.Total)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, shared.NewPersistenceError("create order", err)
	}

	return &CreateOrderResponse{
		OrderID:   o.ID,
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt,
	}, nil
}

func (s *OrderService) generateID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := order.NewID()
		if err != nil {
			return "", shared.NewPersistenceError("generate order id", err)
		}
		exists, err := s.orderRepo.ExistsByID(ctx, id)
		if err != nil {
			return "", shared.NewPersistenceError("check order id", err)
		}
		if !exists {
			return id, nil
		}
	}
	return "", shared.NewPersistenceError("generate order id",
		fmt.Errorf("exhausted %d attempts without a free id", maxIDAttempts))
}

// ListOrders returns up to limit order summaries, newest first
func (s *OrderService) ListOrders(ctx context.Context, limit int) ([]OrderSummaryResponse, error) {
	if limit <= 0 {
		return nil, shared.NewValidationError("Limit must be positive")
	}

	orders, err := s.orderRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, shared.NewPersistenceError("list orders", err)
	}

	summaries := make([]OrderSummaryResponse, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, *ToOrderSummaryResponse(&orders[i]))
	}
	return summaries, nil
}

// GetOrder returns the full order record
func (s *OrderService) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.WrapPersistence("load order", err)
	}
	return ToOrderResponse(o), nil
}

// UpdateOrder applies a partial update. Only status, total and items can
// change; status changes are validated against the order state machine.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, req *UpdateOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.WrapPersistence("load order", err)
	}

	if req.Status != nil {
		if err := o.ChangeStatus(order.Status(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Total != nil {
		if err := o.SetTotal(*req.Total); err != nil {
			return nil, err
		}
	}
	if req.Items != nil {
		if err := o.SetItems(toItemList(*req.Items)); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, shared.NewPersistenceError("update order", err)
	}
	return ToOrderResponse(o), nil
}

// Statistics returns order-level aggregates. Revenue and the average value
// exclude cancelled orders; the order counts do not.
func (s *OrderService) Statistics(ctx context.Context) (*StatisticsResponse, error) {
	stats, err := s.orderRepo.Aggregate(ctx)
	if err != nil {
		return nil, shared.NewPersistenceError("order statistics", err)
	}

	avg := decimal.Zero
	if stats.NonCancelled > 0 {
		avg = stats.Revenue.Div(decimal.NewFromInt(stats.NonCancelled)).Round(2)
	}

	return &StatisticsResponse{
		TotalOrders:       stats.TotalOrders,
		TotalRevenue:      stats.Revenue,
		OrdersToday:       stats.OrdersToday,
		AverageOrderValue: avg,
	}, nil
}
