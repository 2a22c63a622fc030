package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TableStatus string

const (
	TableAvailable  TableStatus = "AVAILABLE"
	TableOccupied   TableStatus = "OCCUPIED"
	TableReserved   TableStatus = "RESERVED"
	TableOutOfOrder TableStatus = "OUT_OF_ORDER"
	TableCleaning   TableStatus = "CLEANING"
)

type Table struct {
	ID           string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	TableNumber  string      `gorm:"type:varchar(50);not null" json:"table_number"`
	Capacity     int         `gorm:"not null" json:"capacity"`
	Location     string      `gorm:"type:text;not null" json:"location"`
	IsActive     bool        `gorm:"not null;default:true" json:"is_active"`
	Status       TableStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	RestaurantID string      `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	Restaurant   Restaurant  `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
