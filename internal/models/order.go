package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID            int         `json:"id" gorm:"primaryKey"`
	UserID        int         `json:"userId" gorm:"not null;index"`
	RestaurantID  int         `json:"restaurantId" gorm:"not null;index"`
	Status        OrderStatus `json:"status" gorm:"not null"`
	TotalAmount   float64     `json:"totalAmount" gorm:"not null"`
	PaymentMethod string      `json:"paymentMethod"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem carries the menu item price as it was at order-creation time.
// Later menu price changes never touch persisted orders.
type OrderItem struct {
	ID         int     `json:"id" gorm:"primaryKey"`
	OrderID    int     `json:"orderId" gorm:"not null;index"`
	MenuItemID int     `json:"menuItemId" gorm:"not null"`
	Quantity   int     `json:"quantity" gorm:"not null"`
	Price      float64 `json:"price" gorm:"not null"`
}

type OrderDTO struct {
	ID             int            `json:"id"`
	UserID         int            `json:"userId"`
	Username       string         `json:"username"`
	RestaurantID   int            `json:"restaurantId"`
	RestaurantName string         `json:"restaurantName"`
	TotalAmount    float64        `json:"totalAmount"`
	Status         OrderStatus    `json:"status"`
	PaymentMethod  string         `json:"paymentMethod,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	OrderItems     []OrderItemDTO `json:"orderItems"`
}

type OrderItemDTO struct {
	ID           int     `json:"id"`
	MenuItemID   int     `json:"menuItemId"`
	MenuItemName string  `json:"menuItemName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type CreateOrderRequest struct {
	RestaurantID  int                `json:"restaurantId" validate:"required,min=1"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	MenuItemID int `json:"menuItemId" validate:"required,min=1"`
	Quantity   int `json:"quantity"`
}
