package persistence

import (
	"fmt"

	"github.com/phetoho/backend/internal/domain/catalog"
	"github.com/phetoho/backend/internal/domain/chat"
	"github.com/phetoho/backend/internal/domain/identity"
	"github.com/phetoho/backend/internal/domain/order"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Migrate runs auto-migration for all persisted models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Product{},
		&order.Order{},
		&chat.LogEntry{},
		&identity.User{},
	)
}

// Seed inserts sample data for development environments. Existing rows are
// left untouched, so seeding is safe to run repeatedly.
func Seed(db *gorm.DB) error {
	if err := seedProducts(db); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := seedOrders(db); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	if err := seedChatLogs(db); err != nil {
		return fmt.Errorf("seed chat logs: %w", err)
	}
	return nil
}

func seedProducts(db *gorm.DB) error {
	products := []catalog.Product{
		{
			Name:        "Premium Wireless Headphones",
			SKU:         "PWH-001",
			Category:    "Electronics",
			Description: "High-quality wireless headphones with noise cancellation",
			Price:       decimal.NewFromFloat(299.99),
			Stock:       45,
			MinStock:    10,
			ImageURL:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      4.8,
			Active:      true,
		},
		{
			Name:        "Smart Fitness Watch",
			SKU:         "SFW-002",
			Category:    "Electronics",
			Description: "Track your fitness goals with this advanced smartwatch",
			Price:       decimal.NewFromFloat(199.99),
			Stock:       8,
			MinStock:    15,
			ImageURL:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      4.6,
			Active:      true,
		},
		{
			Name:        "Ergonomic Office Chair",
			SKU:         "EOC-003",
			Category:    "Furniture",
			Description: "Comfortable office chair with lumbar support",
			Price:       decimal.NewFromFloat(449.99),
			Stock:       0,
			MinStock:    5,
			ImageURL:    "https://images.pexels.com/photos/1957477/pexels-photo-1957477.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      4.9,
			Active:      true,
		},
		{
			Name:        "Organic Coffee Beans",
			SKU:         "OCB-004",
			Category:    "Food",
			Description: "Premium organic coffee beans from sustainable farms",
			Price:       decimal.NewFromFloat(24.99),
			Stock:       120,
			MinStock:    25,
			ImageURL:    "https://images.pexels.com/photos/1695052/pexels-photo-1695052.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      4.7,
			Active:      true,
		},
		{
			Name:        "Minimalist Desk Lamp",
			SKU:         "MDL-005",
			Category:    "Home",
			Description: "Modern LED desk lamp with adjustable brightness",
			Price:       decimal.NewFromFloat(79.99),
			Stock:       32,
			MinStock:    8,
			ImageURL:    "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      4.5,
			Active:      true,
		},
		{
			Name:        "Yoga Mat Premium",
			SKU:         "YMP-006",
			Category:    "Sports",
			Description: "Non-slip yoga mat with extra cushioning",
			Price:       decimal.NewFromFloat(89.99),
			Stock:       18,
			MinStock:    10,
			ImageURL:    "https://images.pexels.com/photos/4327024/pexels-photo-4327024.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:      4.8,
			Active:      true,
		},
	}

	for i := range products {
		if err := db.Where("sku = ?", products[i].SKU).
			FirstOrCreate(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedOrders(db *gorm.DB) error {
	orders := []order.Order{
		{
			ID:            "ORD-001",
			CustomerID:    "customer1",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			Items:         order.ItemList{{ProductID: 1, Quantity: 2}},
			Total:         decimal.NewFromFloat(599.98),
			Status:        order.StatusProcessing,
		},
		{
			ID:            "ORD-002",
			CustomerID:    "customer2",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			Items:         order.ItemList{{ProductID: 2, Quantity: 1}},
			Total:         decimal.NewFromFloat(199.99),
			Status:        order.StatusShipped,
		},
		{
			ID:            "ORD-003",
			CustomerID:    "customer3",
			CustomerName:  "Bob Johnson",
			CustomerEmail: "bob@example.com",
			Items:         order.ItemList{{ProductID: 3, Quantity: 1}},
			Total:         decimal.NewFromFloat(449.99),
			Status:        order.StatusDelivered,
		},
		{
			ID:            "ORD-004",
			CustomerID:    "customer4",
			CustomerName:  "Alice Brown",
			CustomerEmail: "alice@example.com",
			Items:         order.ItemList{{ProductID: 5, Quantity: 1}},
			Total:         decimal.NewFromFloat(79.99),
			Status:        order.StatusPending,
		},
	}

	for i := range orders {
		if err := db.Where("id = ?", orders[i].ID).
			FirstOrCreate(&orders[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedChatLogs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&chat.LogEntry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	entries := []chat.LogEntry{
		{
			UserID:   "customer1",
			Message:  "Hello, I need help with my order",
			Response: "Hi! I'd be happy to help you with your order. Could you please provide your order number?",
		},
		{
			UserID:   "customer2",
			Message:  "Can you track my package?",
			Response: "Of course! Your package is currently in transit and should arrive within 2-3 business days.",
		},
		{
			UserID:   "customer3",
			Message:  "What is your return policy?",
			Response: "We offer a 30-day return policy for all items. You can return any item within 30 days of purchase for a full refund.",
		},
	}
	return db.Create(&entries).Error
}
