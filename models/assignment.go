package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentActive    AssignmentStatus = "ACTIVE"
	AssignmentCompleted AssignmentStatus = "COMPLETED"
	AssignmentCancelled AssignmentStatus = "CANCELLED"
)

// TableAssignment mengikat satu meja, satu party, dan satu server.
// Selama ACTIVE, meja yang dirujuk berstatus OCCUPIED dan party SEATED.
type TableAssignment struct {
	ID          string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	AssignedAt  time.Time        `gorm:"not null" json:"assigned_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	Status      AssignmentStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	TableID     string           `gorm:"type:varchar(36);not null;index" json:"table_id"`
	Table       Table            `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	PartyID     string           `gorm:"type:varchar(36);not null;index" json:"party_id"`
	Party       Party            `gorm:"foreignKey:PartyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ServerID    string           `gorm:"type:varchar(36);not null;index" json:"server_id"`
	Server      Server           `gorm:"foreignKey:ServerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Notes       *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updated_at"`
}

func (a *TableAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now()
	}
	return nil
}

// ReservationAssignment mengikat satu reservasi, satu meja, dan satu server.
// Selama ACTIVE, meja yang dirujuk berstatus RESERVED.
type ReservationAssignment struct {
	ID            string           `gorm:"type:varchar(36);primaryKey" json:"id"`
	AssignedAt    time.Time        `gorm:"not null" json:"assigned_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	Status        AssignmentStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	ReservationID string           `gorm:"type:varchar(36);not null;index" json:"reservation_id"`
	Reservation   Reservation      `gorm:"foreignKey:ReservationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	TableID       string           `gorm:"type:varchar(36);not null;index" json:"table_id"`
	Table         Table            `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ServerID      string           `gorm:"type:varchar(36);not null;index" json:"server_id"`
	Server        Server           `gorm:"foreignKey:ServerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Notes         *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"not null" json:"updated_at"`
}

func (a *ReservationAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now()
	}
	return nil
}
