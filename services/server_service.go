package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/utils"
)

type ServerService struct {
	db *gorm.DB
}

func NewServerService(db *gorm.DB) *ServerService {
	return &ServerService{db: db}
}

type ServerCreate struct {
	FirstName    string     `json:"first_name" binding:"required"`
	LastName     string     `json:"last_name" binding:"required"`
	EmployeeID   string     `json:"employee_id" binding:"required"`
	IsActive     *bool      `json:"is_active"`
	ShiftStart   *time.Time `json:"shift_start"`
	ShiftEnd     *time.Time `json:"shift_end"`
	RestaurantID string     `json:"restaurant_id" binding:"required"`
}

type ServerPatch struct {
	FirstName  *string                   `json:"first_name"`
	LastName   *string                   `json:"last_name"`
	EmployeeID *string                   `json:"employee_id"`
	IsActive   *bool                     `json:"is_active"`
	ShiftStart utils.Optional[time.Time] `json:"shift_start"`
	ShiftEnd   utils.Optional[time.Time] `json:"shift_end"`
}

type ServerFilter struct {
	RestaurantID string
	IsActive     *bool
}

func (s *ServerService) CreateServer(input ServerCreate) (*models.Server, error) {
	server := models.Server{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmployeeID:   input.EmployeeID,
		IsActive:     true,
		ShiftStart:   input.ShiftStart,
		ShiftEnd:     input.ShiftEnd,
		RestaurantID: input.RestaurantID,
	}
	if input.IsActive != nil {
		server.IsActive = *input.IsActive
	}

	if err := s.db.Create(&server).Error; err != nil {
		return nil, err
	}
	return &server, nil
}

func (s *ServerService) GetServer(id string) (*models.Server, error) {
	return findServer(s.db, id)
}

func (s *ServerService) GetServers(filter ServerFilter) ([]models.Server, error) {
	query := s.db.Model(&models.Server{})
	if filter.RestaurantID != "" {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var servers []models.Server
	if err := query.Find(&servers).Error; err != nil {
		return nil, err
	}
	return servers, nil
}

func (s *ServerService) UpdateServer(id string, patch ServerPatch) (*models.Server, error) {
	server, err := s.GetServer(id)
	if err != nil || server == nil {
		return nil, err
	}

	if patch.FirstName != nil {
		server.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		server.LastName = *patch.LastName
	}
	if patch.EmployeeID != nil {
		server.EmployeeID = *patch.EmployeeID
	}
	if patch.IsActive != nil {
		server.IsActive = *patch.IsActive
	}
	if patch.ShiftStart.Set {
		server.ShiftStart = patch.ShiftStart.Value
	}
	if patch.ShiftEnd.Set {
		server.ShiftEnd = patch.ShiftEnd.Value
	}

	if err := s.db.Save(server).Error; err != nil {
		return nil, err
	}
	return server, nil
}

func (s *ServerService) DeleteServer(id string) (bool, error) {
	server, err := s.GetServer(id)
	if err != nil || server == nil {
		return false, err
	}
	if err := s.db.Delete(server).Error; err != nil {
		return false, err
	}
	return true, nil
}
