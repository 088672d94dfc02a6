package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleRent is an indoor-event logistics cost charged against delivery
// payouts. At most one rent row exists per order.
type VehicleRent struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	VehicleName string         `gorm:"size:100" json:"vehicle_name"`
	RentAmount  float64        `gorm:"not null;default:0" json:"rent_amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vehicle rent
func (v *VehicleRent) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VehicleRent model
func (VehicleRent) TableName() string {
	return "vehicle_rents"
}
