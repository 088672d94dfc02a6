package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ReferralCommission is the amount owed to a referrer for a referred
// customer's order. It reduces net profit only once marked paid.
type ReferralCommission struct {
	ID               uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ReferrerID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"referrer_id"`
	OrderID          *uuid.UUID          `gorm:"type:uuid;index" json:"order_id,omitempty"`
	CommissionAmount float64             `gorm:"not null;default:0" json:"commission_amount"`
	Status           enum.ReferralStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        gorm.DeletedAt      `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new referral commission
func (r *ReferralCommission) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReferralCommission model
func (ReferralCommission) TableName() string {
	return "referral_commissions"
}
