package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
	"gorm.io/gorm"
)

// FoodItem represents a catalog dish together with its margin policy.
// Price is the cook's base price; the platform markup on top of it is
// described by PlatformMarginType and PlatformMarginValue.
type FoodItem struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CookID              *uuid.UUID       `gorm:"type:uuid;index" json:"cook_id,omitempty"`
	Name                string           `gorm:"size:255;not null" json:"name"`
	ServiceType         enum.ServiceType `gorm:"size:30;not null;index" json:"service_type"`
	Price               *float64         `json:"price,omitempty"`
	PlatformMarginType  enum.MarginType  `gorm:"size:20;default:'percent'" json:"platform_margin_type"`
	PlatformMarginValue float64          `gorm:"default:0" json:"platform_margin_value"`
	Available           bool             `gorm:"default:true" json:"available"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	DeletedAt           gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Cook *Cook `gorm:"foreignKey:CookID" json:"cook,omitempty"`
}

// BeforeCreate generates a UUID before creating a new food item
func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodItem model
func (FoodItem) TableName() string {
	return "food_items"
}

// BasePrice returns the cook price, falling back to the given unit price
// when the stored price is unset.
func (f *FoodItem) BasePrice(fallback float64) float64 {
	if f.Price == nil {
		return fallback
	}
	return *f.Price
}

// Cook represents a kitchen or home cook selling through the platform
type Cook struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Phone       string         `gorm:"size:30" json:"phone"`
	PanchayatID *uuid.UUID     `gorm:"type:uuid;index" json:"panchayat_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cook
func (c *Cook) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cook model
func (Cook) TableName() string {
	return "cooks"
}
