package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/seatwise/seating-app/hub"
	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/utils"
)

// ReservationMonitor memeriksa reservasi PENDING yang sudah lewat jadwal
// lebih dari grace period dan menandainya NO_SHOW.
type ReservationMonitor struct {
	db       *gorm.DB
	Interval time.Duration
	Grace    time.Duration
	stop     chan struct{}
}

func NewReservationMonitor(db *gorm.DB, grace time.Duration) *ReservationMonitor {
	return &ReservationMonitor{
		db:       db,
		Interval: 1 * time.Minute,
		Grace:    grace,
		stop:     make(chan struct{}),
	}
}

func (m *ReservationMonitor) Start() {
	go func() {
		ticker := time.NewTicker(m.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.CheckOverdueReservations()
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *ReservationMonitor) Stop() {
	close(m.stop)
}

// CheckOverdueReservations menandai reservasi PENDING yang sudah lewat
// reservation_time + grace sebagai NO_SHOW.
func (m *ReservationMonitor) CheckOverdueReservations() {
	cutoff := time.Now().Add(-m.Grace)

	var overdue []models.Reservation
	err := m.db.Where("status = ? AND reservation_time < ?", models.ReservationPending, cutoff).
		Find(&overdue).Error
	if err != nil {
		utils.ErrorLogger.Printf("Error checking overdue reservations: %v", err)
		return
	}

	for i := range overdue {
		reservation := &overdue[i]
		reservation.Status = models.ReservationNoShow
		if err := m.db.Save(reservation).Error; err != nil {
			utils.ErrorLogger.Printf("Error marking reservation %s as no-show: %v", reservation.ID, err)
			continue
		}

		utils.InfoLogger.Printf("Reservation %s marked as NO_SHOW (scheduled %s)",
			reservation.ID, reservation.ReservationTime.Format(time.RFC3339))
		hub.BroadcastReservationUpdate(hub.EventReservationNoShow, *reservation)
	}
}
