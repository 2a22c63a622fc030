package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/utils"
)

// AssignmentService menjalankan assignment workflow: pembuatan, update,
// penyelesaian, dan penghapusan table/reservation assignment beserta efek
// statusnya pada Table, Party, dan Reservation. Semua efek satu operasi
// diterapkan dalam satu transaksi.
type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

type TableAssignmentCreate struct {
	TableID  string  `json:"table_id" binding:"required"`
	PartyID  string  `json:"party_id" binding:"required"`
	ServerID string  `json:"server_id" binding:"required"`
	Notes    *string `json:"notes"`
}

type ReservationAssignmentCreate struct {
	ReservationID string  `json:"reservation_id" binding:"required"`
	TableID       string  `json:"table_id" binding:"required"`
	ServerID      string  `json:"server_id" binding:"required"`
	Notes         *string `json:"notes"`
}

// AssignmentPatch adalah partial update: field yang tidak dikirim tidak
// disentuh, null eksplisit mengosongkan field opsional.
type AssignmentPatch struct {
	Status      *models.AssignmentStatus  `json:"status"`
	CompletedAt utils.Optional[time.Time] `json:"completed_at"`
	Notes       utils.Optional[string]    `json:"notes"`
}

type TableAssignmentFilter struct {
	TableID  string
	PartyID  string
	ServerID string
	Status   string
}

type ReservationAssignmentFilter struct {
	ReservationID string
	TableID       string
	ServerID      string
	Status        string
}

// ---------------------------------------------------------------
// Table assignments
// ---------------------------------------------------------------

// CreateTableAssignment memeriksa precondition (meja AVAILABLE, party
// WAITING, server aktif — berurutan) lalu membuat assignment ACTIVE,
// meja -> OCCUPIED, party -> SEATED.
func (s *AssignmentService) CreateTableAssignment(input TableAssignmentCreate) (*models.TableAssignment, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	table, err := findTable(tx, input.TableID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := checkTableAssignable(table); err != nil {
		tx.Rollback()
		return nil, err
	}

	party, err := findParty(tx, input.PartyID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := checkPartyAssignable(party); err != nil {
		tx.Rollback()
		return nil, err
	}

	server, err := findServer(tx, input.ServerID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := checkServerAssignable(server); err != nil {
		tx.Rollback()
		return nil, err
	}

	assignment := models.TableAssignment{
		TableID:    input.TableID,
		PartyID:    input.PartyID,
		ServerID:   input.ServerID,
		Status:     models.AssignmentActive,
		AssignedAt: time.Now(),
		Notes:      input.Notes,
	}
	if err := tx.Create(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := applyEffects(tx, seatPartyEffects(), table, party, nil); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table assignment %s created: table=%s party=%s server=%s",
		assignment.ID, assignment.TableID, assignment.PartyID, assignment.ServerID)
	return &assignment, nil
}

// GetTableAssignment mengembalikan (nil, nil) jika assignment tidak ada.
func (s *AssignmentService) GetTableAssignment(id string) (*models.TableAssignment, error) {
	var assignment models.TableAssignment
	if err := s.db.First(&assignment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// GetTableAssignments menerapkan filter opsional secara konjungtif (AND).
func (s *AssignmentService) GetTableAssignments(filter TableAssignmentFilter) ([]models.TableAssignment, error) {
	query := s.db.Model(&models.TableAssignment{})
	if filter.TableID != "" {
		query = query.Where("table_id = ?", filter.TableID)
	}
	if filter.PartyID != "" {
		query = query.Where("party_id = ?", filter.PartyID)
	}
	if filter.ServerID != "" {
		query = query.Where("server_id = ?", filter.ServerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var assignments []models.TableAssignment
	if err := query.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// UpdateTableAssignment menerapkan patch parsial. Patch status COMPLETED
// memindahkan meja ke CLEANING tetapi TIDAK menyentuh status party — hanya
// CompleteTableAssignment yang menutup lifecycle party.
func (s *AssignmentService) UpdateTableAssignment(id string, patch AssignmentPatch) (*models.TableAssignment, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var assignment models.TableAssignment
	if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if patch.Status != nil {
		assignment.Status = *patch.Status
	}
	if patch.CompletedAt.Set {
		assignment.CompletedAt = patch.CompletedAt.Value
	}
	if patch.Notes.Set {
		assignment.Notes = patch.Notes.Value
	}

	if err := tx.Save(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if patch.Status != nil && *patch.Status == models.AssignmentCompleted {
		table, err := findTable(tx, assignment.TableID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := applyEffects(tx, patchCompletedEffects(), table, nil, nil); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CompleteTableAssignment menutup assignment: status COMPLETED,
// completed_at diisi, meja -> CLEANING, party -> FINISHED.
func (s *AssignmentService) CompleteTableAssignment(id string) (*models.TableAssignment, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var assignment models.TableAssignment
	if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := time.Now()
	assignment.Status = models.AssignmentCompleted
	assignment.CompletedAt = &now
	if err := tx.Save(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	table, err := findTable(tx, assignment.TableID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	party, err := findParty(tx, assignment.PartyID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := applyEffects(tx, completeTableAssignmentEffects(), table, party, nil); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table assignment %s completed", assignment.ID)
	return &assignment, nil
}

// DeleteTableAssignment menghapus assignment tanpa precondition dan selalu
// mengembalikan meja ke AVAILABLE, apapun status assignment sebelumnya.
// Status party dibiarkan apa adanya.
func (s *AssignmentService) DeleteTableAssignment(id string) (bool, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	var assignment models.TableAssignment
	if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	table, err := findTable(tx, assignment.TableID)
	if err != nil {
		tx.Rollback()
		return false, err
	}
	if err := applyEffects(tx, releaseTableEffects(), table, nil, nil); err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Delete(&assignment).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		return false, err
	}

	utils.InfoLogger.Printf("Table assignment %s deleted, table %s released", assignment.ID, assignment.TableID)
	return true, nil
}

// ---------------------------------------------------------------
// Reservation assignments
// ---------------------------------------------------------------

// CreateReservationAssignment memeriksa meja AVAILABLE, reservasi CONFIRMED,
// server aktif, lalu membuat assignment ACTIVE dan meja -> RESERVED.
func (s *AssignmentService) CreateReservationAssignment(input ReservationAssignmentCreate) (*models.ReservationAssignment, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	table, err := findTable(tx, input.TableID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := checkTableAssignable(table); err != nil {
		tx.Rollback()
		return nil, err
	}

	reservation, err := findReservation(tx, input.ReservationID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := checkReservationAssignable(reservation); err != nil {
		tx.Rollback()
		return nil, err
	}

	server, err := findServer(tx, input.ServerID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := checkServerAssignable(server); err != nil {
		tx.Rollback()
		return nil, err
	}

	assignment := models.ReservationAssignment{
		ReservationID: input.ReservationID,
		TableID:       input.TableID,
		ServerID:      input.ServerID,
		Status:        models.AssignmentActive,
		AssignedAt:    time.Now(),
		Notes:         input.Notes,
	}
	if err := tx.Create(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := applyEffects(tx, holdTableEffects(), table, nil, reservation); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation assignment %s created: reservation=%s table=%s server=%s",
		assignment.ID, assignment.ReservationID, assignment.TableID, assignment.ServerID)
	return &assignment, nil
}

// GetReservationAssignment mengembalikan (nil, nil) jika assignment tidak ada.
func (s *AssignmentService) GetReservationAssignment(id string) (*models.ReservationAssignment, error) {
	var assignment models.ReservationAssignment
	if err := s.db.First(&assignment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (s *AssignmentService) GetReservationAssignments(filter ReservationAssignmentFilter) ([]models.ReservationAssignment, error) {
	query := s.db.Model(&models.ReservationAssignment{})
	if filter.ReservationID != "" {
		query = query.Where("reservation_id = ?", filter.ReservationID)
	}
	if filter.TableID != "" {
		query = query.Where("table_id = ?", filter.TableID)
	}
	if filter.ServerID != "" {
		query = query.Where("server_id = ?", filter.ServerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var assignments []models.ReservationAssignment
	if err := query.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// UpdateReservationAssignment menerapkan patch parsial; status COMPLETED
// hanya memindah meja ke CLEANING (reservasi tidak disentuh di jalur ini).
func (s *AssignmentService) UpdateReservationAssignment(id string, patch AssignmentPatch) (*models.ReservationAssignment, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var assignment models.ReservationAssignment
	if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if patch.Status != nil {
		assignment.Status = *patch.Status
	}
	if patch.CompletedAt.Set {
		assignment.CompletedAt = patch.CompletedAt.Value
	}
	if patch.Notes.Set {
		assignment.Notes = patch.Notes.Value
	}

	if err := tx.Save(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if patch.Status != nil && *patch.Status == models.AssignmentCompleted {
		table, err := findTable(tx, assignment.TableID)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := applyEffects(tx, patchCompletedEffects(), table, nil, nil); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// CompleteReservationAssignment menutup assignment: status COMPLETED,
// completed_at diisi, meja -> CLEANING, reservasi -> COMPLETED.
func (s *AssignmentService) CompleteReservationAssignment(id string) (*models.ReservationAssignment, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var assignment models.ReservationAssignment
	if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := time.Now()
	assignment.Status = models.AssignmentCompleted
	assignment.CompletedAt = &now
	if err := tx.Save(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	table, err := findTable(tx, assignment.TableID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	reservation, err := findReservation(tx, assignment.ReservationID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := applyEffects(tx, completeReservationAssignmentEffects(), table, nil, reservation); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation assignment %s completed", assignment.ID)
	return &assignment, nil
}

// DeleteReservationAssignment menghapus assignment dan selalu mengembalikan
// meja ke AVAILABLE.
func (s *AssignmentService) DeleteReservationAssignment(id string) (bool, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	var assignment models.ReservationAssignment
	if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	table, err := findTable(tx, assignment.TableID)
	if err != nil {
		tx.Rollback()
		return false, err
	}
	if err := applyEffects(tx, releaseTableEffects(), table, nil, nil); err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Delete(&assignment).Error; err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		return false, err
	}

	utils.InfoLogger.Printf("Reservation assignment %s deleted, table %s released", assignment.ID, assignment.TableID)
	return true, nil
}

// ---------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------

// applyEffects menulis write-set status dari transitions ke entity yang
// dirujuk. Entity nil dilewati (assignment menunjuk baris yang sudah hilang).
func applyEffects(tx *gorm.DB, effects SeatingEffects, table *models.Table, party *models.Party, reservation *models.Reservation) error {
	if effects.TableStatus != nil && table != nil {
		table.Status = *effects.TableStatus
		if err := tx.Save(table).Error; err != nil {
			return err
		}
	}
	if effects.PartyStatus != nil && party != nil {
		party.Status = *effects.PartyStatus
		if err := tx.Save(party).Error; err != nil {
			return err
		}
	}
	if effects.ReservationStatus != nil && reservation != nil {
		reservation.Status = *effects.ReservationStatus
		if err := tx.Save(reservation).Error; err != nil {
			return err
		}
	}
	return nil
}

func findTable(tx *gorm.DB, id string) (*models.Table, error) {
	var table models.Table
	if err := tx.First(&table, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &table, nil
}

func findParty(tx *gorm.DB, id string) (*models.Party, error) {
	var party models.Party
	if err := tx.First(&party, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &party, nil
}

func findServer(tx *gorm.DB, id string) (*models.Server, error) {
	var server models.Server
	if err := tx.First(&server, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &server, nil
}

func findReservation(tx *gorm.DB, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := tx.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reservation, nil
}
