package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Panchayat is the regional service area an order is delivered within
type Panchayat struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null;unique" json:"name"`
	District  string         `gorm:"size:100" json:"district"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new panchayat
func (p *Panchayat) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Panchayat model
func (Panchayat) TableName() string {
	return "panchayats"
}
