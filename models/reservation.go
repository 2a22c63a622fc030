package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationNoShow    ReservationStatus = "NO_SHOW"
)

type Reservation struct {
	ID              string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	ReservationTime time.Time         `gorm:"not null" json:"reservation_time"`
	PartySize       int               `gorm:"not null" json:"party_size"`
	CustomerName    string            `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone   string            `gorm:"type:varchar(20);not null" json:"customer_phone"`
	CustomerEmail   *string           `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	SpecialRequests *string           `gorm:"type:text" json:"special_requests,omitempty"`
	Status          ReservationStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	RestaurantID    string            `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	Restaurant      Restaurant        `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	PartyID         *string           `gorm:"type:varchar(36);index" json:"party_id,omitempty"`
	Party           *Party            `gorm:"foreignKey:PartyID;references:ID" json:"-"`
	CreatedAt       time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null" json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
