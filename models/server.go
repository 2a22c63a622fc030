package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Server adalah pelayan restoran (staff), bukan mesin.
type Server struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	FirstName    string     `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(255);not null" json:"last_name"`
	EmployeeID   string     `gorm:"type:varchar(50);not null;unique" json:"employee_id"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	ShiftStart   *time.Time `json:"shift_start,omitempty"`
	ShiftEnd     *time.Time `json:"shift_end,omitempty"`
	RestaurantID string     `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}

func (s *Server) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
