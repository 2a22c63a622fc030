package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
	OpeningTime string    `gorm:"type:varchar(8);not null" json:"opening_time"` // HH:MM:SS
	ClosingTime string    `gorm:"type:varchar(8);not null" json:"closing_time"` // HH:MM:SS
	MaxCapacity int       `gorm:"not null" json:"max_capacity"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
