package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Section struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Description  *string    `gorm:"type:text" json:"description,omitempty"`
	Capacity     int        `gorm:"not null" json:"capacity"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	RestaurantID string     `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// TableSection menghubungkan meja dengan section (many-to-many).
type TableSection struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	TableID   string    `gorm:"type:varchar(36);not null;index" json:"table_id"`
	Table     Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	SectionID string    `gorm:"type:varchar(36);not null;index" json:"section_id"`
	Section   Section   `gorm:"foreignKey:SectionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ts *TableSection) BeforeCreate(tx *gorm.DB) error {
	if ts.ID == "" {
		ts.ID = uuid.NewString()
	}
	return nil
}
