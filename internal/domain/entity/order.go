package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a customer order on one of the three service lines
type Order struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID       *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	PanchayatID      *uuid.UUID       `gorm:"type:uuid;index" json:"panchayat_id,omitempty"`
	ServiceType      enum.ServiceType `gorm:"size:30;not null;index" json:"service_type"`
	Status           enum.OrderStatus `gorm:"size:30;not null;default:'pending';index" json:"status"`
	TotalAmount      *float64         `json:"total_amount,omitempty"`
	DeliveryEarnings *float64         `json:"delivery_earnings,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Panchayat *Panchayat  `gorm:"foreignKey:PanchayatID" json:"panchayat,omitempty"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// RevenueAmount returns the order total, treating a missing total as zero
func (o *Order) RevenueAmount() float64 {
	if o.TotalAmount == nil {
		return 0
	}
	return *o.TotalAmount
}

// DeliveryAmount returns the per-order delivery earnings, zero when unset
func (o *Order) DeliveryAmount() float64 {
	if o.DeliveryEarnings == nil {
		return 0
	}
	return *o.DeliveryEarnings
}

// OrderItem represents a line item in an order
type OrderItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	FoodItemID *uuid.UUID     `gorm:"type:uuid;index" json:"food_item_id,omitempty"`
	Quantity   int            `gorm:"not null" json:"quantity"`
	UnitPrice  float64        `gorm:"not null" json:"unit_price"`
	TotalPrice float64        `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// FoodItem is nil when the catalog row was deleted after the order
	// was placed. Reporting treats that as a valid legacy state.
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
