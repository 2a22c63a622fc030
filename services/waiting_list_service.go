package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/utils"
)

// WaitingListService mengelola antrian tunggu FIFO per restoran.
type WaitingListService struct {
	db *gorm.DB
}

func NewWaitingListService(db *gorm.DB) *WaitingListService {
	return &WaitingListService{db: db}
}

type WaitingListCreate struct {
	CustomerName      string  `json:"customer_name" binding:"required"`
	CustomerPhone     string  `json:"customer_phone" binding:"required"`
	PartySize         int     `json:"party_size" binding:"required,min=1"`
	EstimatedWaitTime *int    `json:"estimated_wait_time"`
	Notes             *string `json:"notes"`
	RestaurantID      string  `json:"restaurant_id" binding:"required"`
}

type WaitingListPatch struct {
	CustomerName      *string                   `json:"customer_name"`
	CustomerPhone     *string                   `json:"customer_phone"`
	PartySize         *int                      `json:"party_size"`
	EstimatedWaitTime utils.Optional[int]       `json:"estimated_wait_time"`
	Status            *models.WaitingListStatus `json:"status"`
	Notes             utils.Optional[string]    `json:"notes"`
}

func (s *WaitingListService) AddToWaitingList(input WaitingListCreate) (*models.WaitingList, error) {
	entry := models.WaitingList{
		CustomerName:      input.CustomerName,
		CustomerPhone:     input.CustomerPhone,
		PartySize:         input.PartySize,
		EstimatedWaitTime: input.EstimatedWaitTime,
		Notes:             input.Notes,
		Status:            models.WaitingListWaiting,
		RestaurantID:      input.RestaurantID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *WaitingListService) GetWaitingListEntry(id string) (*models.WaitingList, error) {
	var entry models.WaitingList
	if err := s.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// GetWaitingList mengembalikan antrian terurut FIFO berdasarkan request_time.
func (s *WaitingListService) GetWaitingList(restaurantID, status string) ([]models.WaitingList, error) {
	query := s.db.Model(&models.WaitingList{})
	if restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var entries []models.WaitingList
	if err := query.Order("request_time asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// GetNextWaitingParty mengambil entry WAITING paling lama untuk restoran.
func (s *WaitingListService) GetNextWaitingParty(restaurantID string) (*models.WaitingList, error) {
	var entry models.WaitingList
	err := s.db.Where("restaurant_id = ? AND status = ?", restaurantID, models.WaitingListWaiting).
		Order("request_time asc").First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *WaitingListService) UpdateWaitingListEntry(id string, patch WaitingListPatch) (*models.WaitingList, error) {
	entry, err := s.GetWaitingListEntry(id)
	if err != nil || entry == nil {
		return nil, err
	}

	if patch.CustomerName != nil {
		entry.CustomerName = *patch.CustomerName
	}
	if patch.CustomerPhone != nil {
		entry.CustomerPhone = *patch.CustomerPhone
	}
	if patch.PartySize != nil {
		entry.PartySize = *patch.PartySize
	}
	if patch.EstimatedWaitTime.Set {
		entry.EstimatedWaitTime = patch.EstimatedWaitTime.Value
	}
	if patch.Status != nil {
		entry.Status = *patch.Status
	}
	if patch.Notes.Set {
		entry.Notes = patch.Notes.Value
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// MarkAsSeated menandai entry sebagai SEATED setelah party mendapat meja.
func (s *WaitingListService) MarkAsSeated(id string) (*models.WaitingList, error) {
	entry, err := s.GetWaitingListEntry(id)
	if err != nil || entry == nil {
		return nil, err
	}

	entry.Status = models.WaitingListSeated
	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *WaitingListService) RemoveFromWaitingList(id string) (bool, error) {
	entry, err := s.GetWaitingListEntry(id)
	if err != nil || entry == nil {
		return false, err
	}
	if err := s.db.Delete(entry).Error; err != nil {
		return false, err
	}
	return true, nil
}
