package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/utils"
)

type PartyService struct {
	db *gorm.DB
}

func NewPartyService(db *gorm.DB) *PartyService {
	return &PartyService{db: db}
}

type PartyCreate struct {
	Name        string             `json:"name" binding:"required"`
	Size        int                `json:"size" binding:"required,min=1"`
	Phone       *string            `json:"phone"`
	Email       *string            `json:"email"`
	Status      models.PartyStatus `json:"status"`
	ArrivalTime *time.Time         `json:"arrival_time"`
}

type PartyPatch struct {
	Name        *string                `json:"name"`
	Size        *int                   `json:"size"`
	Phone       utils.Optional[string] `json:"phone"`
	Email       utils.Optional[string] `json:"email"`
	Status      *models.PartyStatus    `json:"status"`
	ArrivalTime *time.Time             `json:"arrival_time"`
}

func (s *PartyService) CreateParty(input PartyCreate) (*models.Party, error) {
	party := models.Party{
		Name:   input.Name,
		Size:   input.Size,
		Phone:  input.Phone,
		Email:  input.Email,
		Status: models.PartyWaiting,
	}
	if input.Status != "" {
		party.Status = input.Status
	}
	if input.ArrivalTime != nil {
		party.ArrivalTime = *input.ArrivalTime
	}

	if err := s.db.Create(&party).Error; err != nil {
		return nil, err
	}
	return &party, nil
}

func (s *PartyService) GetParty(id string) (*models.Party, error) {
	return findParty(s.db, id)
}

func (s *PartyService) GetParties(status string) ([]models.Party, error) {
	query := s.db.Model(&models.Party{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var parties []models.Party
	if err := query.Find(&parties).Error; err != nil {
		return nil, err
	}
	return parties, nil
}

func (s *PartyService) UpdateParty(id string, patch PartyPatch) (*models.Party, error) {
	party, err := s.GetParty(id)
	if err != nil || party == nil {
		return nil, err
	}

	if patch.Name != nil {
		party.Name = *patch.Name
	}
	if patch.Size != nil {
		party.Size = *patch.Size
	}
	if patch.Phone.Set {
		party.Phone = patch.Phone.Value
	}
	if patch.Email.Set {
		party.Email = patch.Email.Value
	}
	if patch.Status != nil {
		party.Status = *patch.Status
	}
	if patch.ArrivalTime != nil {
		party.ArrivalTime = *patch.ArrivalTime
	}

	if err := s.db.Save(party).Error; err != nil {
		return nil, err
	}
	return party, nil
}

func (s *PartyService) DeleteParty(id string) (bool, error) {
	party, err := s.GetParty(id)
	if err != nil || party == nil {
		return false, err
	}
	if err := s.db.Delete(party).Error; err != nil {
		return false, err
	}
	return true, nil
}
