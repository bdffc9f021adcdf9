package models

import "time"

type Order struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	Notes       *string     `json:"notes,omitempty"`
	Items       []OrderItem `json:"items,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	CoffeeID   int     `json:"coffee_id"`
	CoffeeName string  `json:"coffee_name,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

var OrderStatuses = []string{"pending", "processing", "completed", "cancelled"}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
