package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WaitingListStatus string

const (
	WaitingListWaiting   WaitingListStatus = "WAITING"
	WaitingListNotified  WaitingListStatus = "NOTIFIED"
	WaitingListSeated    WaitingListStatus = "SEATED"
	WaitingListCancelled WaitingListStatus = "CANCELLED"
)

type WaitingList struct {
	ID                string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	CustomerName      string            `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone     string            `gorm:"type:varchar(20);not null" json:"customer_phone"`
	PartySize         int               `gorm:"not null" json:"party_size"`
	RequestTime       time.Time         `gorm:"not null" json:"request_time"`
	EstimatedWaitTime *int              `json:"estimated_wait_time,omitempty"` // minutes
	Status            WaitingListStatus `gorm:"type:varchar(20);not null;default:'WAITING'" json:"status"`
	Notes             *string           `gorm:"type:text" json:"notes,omitempty"`
	RestaurantID      string            `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	Restaurant        Restaurant        `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt         time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"not null" json:"updated_at"`
}

func (w *WaitingList) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.RequestTime.IsZero() {
		w.RequestTime = time.Now()
	}
	return nil
}
