package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartyStatus string

const (
	PartyWaiting   PartyStatus = "WAITING"
	PartySeated    PartyStatus = "SEATED"
	PartyFinished  PartyStatus = "FINISHED"
	PartyCancelled PartyStatus = "CANCELLED"
)

type Party struct {
	ID          string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Size        int         `gorm:"not null" json:"size"`
	Phone       *string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email       *string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Status      PartyStatus `gorm:"type:varchar(20);not null;default:'WAITING'" json:"status"`
	ArrivalTime time.Time   `gorm:"not null" json:"arrival_time"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

func (p *Party) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.ArrivalTime.IsZero() {
		p.ArrivalTime = time.Now()
	}
	return nil
}
