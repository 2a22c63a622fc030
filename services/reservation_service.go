package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/utils"
)

type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

type ReservationCreate struct {
	ReservationTime time.Time `json:"reservation_time" binding:"required"`
	PartySize       int       `json:"party_size" binding:"required,min=1"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	CustomerEmail   *string   `json:"customer_email"`
	SpecialRequests *string   `json:"special_requests"`
	RestaurantID    string    `json:"restaurant_id" binding:"required"`
}

type ReservationPatch struct {
	ReservationTime *time.Time                `json:"reservation_time"`
	PartySize       *int                      `json:"party_size"`
	CustomerName    *string                   `json:"customer_name"`
	CustomerPhone   *string                   `json:"customer_phone"`
	CustomerEmail   utils.Optional[string]    `json:"customer_email"`
	SpecialRequests utils.Optional[string]    `json:"special_requests"`
	Status          *models.ReservationStatus `json:"status"`
	PartyID         utils.Optional[string]    `json:"party_id"`
}

type ReservationFilter struct {
	RestaurantID string
	Status       string
	Date         string // YYYY-MM-DD, cocokkan tanggal reservation_time
}

func (s *ReservationService) CreateReservation(input ReservationCreate) (*models.Reservation, error) {
	reservation := models.Reservation{
		ReservationTime: input.ReservationTime,
		PartySize:       input.PartySize,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		SpecialRequests: input.SpecialRequests,
		Status:          models.ReservationPending,
		RestaurantID:    input.RestaurantID,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationService) GetReservation(id string) (*models.Reservation, error) {
	return findReservation(s.db, id)
}

func (s *ReservationService) GetReservations(filter ReservationFilter) ([]models.Reservation, error) {
	query := s.db.Model(&models.Reservation{})
	if filter.RestaurantID != "" {
		query = query.Where("restaurant_id = ?", filter.RestaurantID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		query = query.Where("DATE(reservation_time) = ?", filter.Date)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *ReservationService) UpdateReservation(id string, patch ReservationPatch) (*models.Reservation, error) {
	reservation, err := s.GetReservation(id)
	if err != nil || reservation == nil {
		return nil, err
	}

	if patch.ReservationTime != nil {
		reservation.ReservationTime = *patch.ReservationTime
	}
	if patch.PartySize != nil {
		reservation.PartySize = *patch.PartySize
	}
	if patch.CustomerName != nil {
		reservation.CustomerName = *patch.CustomerName
	}
	if patch.CustomerPhone != nil {
		reservation.CustomerPhone = *patch.CustomerPhone
	}
	if patch.CustomerEmail.Set {
		reservation.CustomerEmail = patch.CustomerEmail.Value
	}
	if patch.SpecialRequests.Set {
		reservation.SpecialRequests = patch.SpecialRequests.Value
	}
	if patch.Status != nil {
		reservation.Status = *patch.Status
	}
	if patch.PartyID.Set {
		reservation.PartyID = patch.PartyID.Value
	}

	if err := s.db.Save(reservation).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}

// CancelReservation men-set status CANCELLED tanpa menghapus barisnya.
func (s *ReservationService) CancelReservation(id string) (*models.Reservation, error) {
	reservation, err := s.GetReservation(id)
	if err != nil || reservation == nil {
		return nil, err
	}

	reservation.Status = models.ReservationCancelled
	if err := s.db.Save(reservation).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *ReservationService) DeleteReservation(id string) (bool, error) {
	reservation, err := s.GetReservation(id)
	if err != nil || reservation == nil {
		return false, err
	}
	if err := s.db.Delete(reservation).Error; err != nil {
		return false, err
	}
	return true, nil
}
