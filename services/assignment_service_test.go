package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/utils"
)

var testDBCounter int64

// setupSeatingTestDB membuat SQLite in-memory terpisah per test supaya
// state antar test tidak bocor.
func setupSeatingTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()

	name := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:seating_test_%d?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Restaurant{},
		&models.Section{},
		&models.Table{},
		&models.TableSection{},
		&models.Party{},
		&models.Reservation{},
		&models.Server{},
		&models.WaitingList{},
		&models.TableAssignment{},
		&models.ReservationAssignment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB) models.Restaurant {
	restaurant := models.Restaurant{
		Name:        "Warung Tes",
		Address:     "Jl. Tes No. 1",
		Phone:       "0812000000",
		OpeningTime: "10:00:00",
		ClosingTime: "22:00:00",
		MaxCapacity: 50,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return restaurant
}

func seedTable(t *testing.T, db *gorm.DB, restaurantID string, status models.TableStatus) models.Table {
	table := models.Table{
		TableNumber:  "T1",
		Capacity:     4,
		Location:     "indoor",
		IsActive:     true,
		Status:       status,
		RestaurantID: restaurantID,
	}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func seedParty(t *testing.T, db *gorm.DB, status models.PartyStatus) models.Party {
	party := models.Party{
		Name:   "Keluarga Budi",
		Size:   4,
		Status: status,
	}
	if err := db.Create(&party).Error; err != nil {
		t.Fatalf("seed party: %v", err)
	}
	return party
}

func seedServer(t *testing.T, db *gorm.DB, restaurantID string, active bool) models.Server {
	server := models.Server{
		FirstName:    "Siti",
		LastName:     "Aminah",
		EmployeeID:   fmt.Sprintf("EMP-%d", atomic.AddInt64(&testDBCounter, 1)),
		IsActive:     active,
		RestaurantID: restaurantID,
	}
	if err := db.Create(&server).Error; err != nil {
		t.Fatalf("seed server: %v", err)
	}
	// GORM mengisi ulang field zero-value yang punya tag default saat Create,
	// jadi IsActive=false harus di-set lewat Update terpisah.
	if !active {
		if err := db.Model(&server).Update("is_active", false).Error; err != nil {
			t.Fatalf("seed server (set inactive): %v", err)
		}
		server.IsActive = false
	}
	return server
}

func seedReservation(t *testing.T, db *gorm.DB, restaurantID string, status models.ReservationStatus) models.Reservation {
	reservation := models.Reservation{
		ReservationTime: time.Now().Add(2 * time.Hour),
		PartySize:       4,
		CustomerName:    "Dewi",
		CustomerPhone:   "0813000000",
		Status:          status,
		RestaurantID:    restaurantID,
	}
	if err := db.Create(&reservation).Error; err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	return reservation
}

func TestCreateTableAssignmentSeatsParty(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	party := seedParty(t, db, models.PartyWaiting)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	assignment, err := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table.ID,
		PartyID:  party.ID,
		ServerID: server.ID,
	})
	assert.NoError(t, err)
	assert.NotNil(t, assignment)
	assert.Equal(t, models.AssignmentActive, assignment.Status)
	assert.False(t, assignment.AssignedAt.IsZero())
	assert.Nil(t, assignment.CompletedAt)

	var gotTable models.Table
	db.First(&gotTable, "id = ?", table.ID)
	assert.Equal(t, models.TableOccupied, gotTable.Status)

	var gotParty models.Party
	db.First(&gotParty, "id = ?", party.ID)
	assert.Equal(t, models.PartySeated, gotParty.Status)
}

func TestCreateTableAssignmentTableNotAvailable(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableOccupied)
	party := seedParty(t, db, models.PartyWaiting)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	assignment, err := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table.ID,
		PartyID:  party.ID,
		ServerID: server.ID,
	})
	assert.Nil(t, assignment)
	assert.True(t, IsInvalidState(err))
	assert.EqualError(t, err, "Table is not available for assignment")

	// Tidak boleh ada write yang bocor
	var count int64
	db.Model(&models.TableAssignment{}).Count(&count)
	assert.Equal(t, int64(0), count)

	var gotParty models.Party
	db.First(&gotParty, "id = ?", party.ID)
	assert.Equal(t, models.PartyWaiting, gotParty.Status)
}

func TestCreateTableAssignmentTwiceFails(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	party1 := seedParty(t, db, models.PartyWaiting)
	party2 := seedParty(t, db, models.PartyWaiting)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	_, err := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table.ID,
		PartyID:  party1.ID,
		ServerID: server.ID,
	})
	assert.NoError(t, err)

	// Meja sudah OCCUPIED, assignment kedua harus ditolak
	_, err = svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table.ID,
		PartyID:  party2.ID,
		ServerID: server.ID,
	})
	assert.True(t, IsInvalidState(err))

	var count int64
	db.Model(&models.TableAssignment{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateTableAssignmentInactiveServer(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	party := seedParty(t, db, models.PartyWaiting)
	server := seedServer(t, db, restaurant.ID, false)

	svc := NewAssignmentService(db)
	_, err := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table.ID,
		PartyID:  party.ID,
		ServerID: server.ID,
	})
	assert.True(t, IsInvalidState(err))
	assert.EqualError(t, err, "Server is not available for assignment")

	var gotTable models.Table
	db.First(&gotTable, "id = ?", table.ID)
	assert.Equal(t, models.TableAvailable, gotTable.Status)
}

func TestCompleteTableAssignment(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	party := seedParty(t, db, models.PartyWaiting)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	created, err := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table.ID,
		PartyID:  party.ID,
		ServerID: server.ID,
	})
	assert.NoError(t, err)

	completed, err := svc.CompleteTableAssignment(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	// Meja masuk CLEANING dulu, bukan langsung AVAILABLE
	var gotTable models.Table
	db.First(&gotTable, "id = ?", table.ID)
	assert.Equal(t, models.TableCleaning, gotTable.Status)

	var gotParty models.Party
	db.First(&gotParty, "id = ?", party.ID)
	assert.Equal(t, models.PartyFinished, gotParty.Status)
}

func TestUpdateTableAssignmentCompletedLeavesPartySeated(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	party := seedParty(t, db, models.PartyWaiting)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	created, err := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table.ID,
		PartyID:  party.ID,
		ServerID: server.ID,
	})
	assert.NoError(t, err)

	status := models.AssignmentCompleted
	updated, err := svc.UpdateTableAssignment(created.ID, AssignmentPatch{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentCompleted, updated.Status)

	var gotTable models.Table
	db.First(&gotTable, "id = ?", table.ID)
	assert.Equal(t, models.TableCleaning, gotTable.Status)

	// Jalur patch tidak menutup lifecycle party
	var gotParty models.Party
	db.First(&gotParty, "id = ?", party.ID)
	assert.Equal(t, models.PartySeated, gotParty.Status)
}

func TestDeleteTableAssignmentAlwaysReleasesTable(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	party := seedParty(t, db, models.PartyWaiting)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	created, err := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table.ID,
		PartyID:  party.ID,
		ServerID: server.ID,
	})
	assert.NoError(t, err)

	deleted, err := svc.DeleteTableAssignment(created.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// Delete melepas meja tanpa precondition, party dibiarkan SEATED
	var gotTable models.Table
	db.First(&gotTable, "id = ?", table.ID)
	assert.Equal(t, models.TableAvailable, gotTable.Status)

	var gotParty models.Party
	db.First(&gotParty, "id = ?", party.ID)
	assert.Equal(t, models.PartySeated, gotParty.Status)

	var count int64
	db.Model(&models.TableAssignment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteCompletedTableAssignmentReleasesCleaningTable(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	party := seedParty(t, db, models.PartyWaiting)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	created, _ := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table.ID,
		PartyID:  party.ID,
		ServerID: server.ID,
	})
	_, err := svc.CompleteTableAssignment(created.ID)
	assert.NoError(t, err)

	deleted, err := svc.DeleteTableAssignment(created.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// Meja CLEANING pun ikut dilepas ke AVAILABLE
	var gotTable models.Table
	db.First(&gotTable, "id = ?", table.ID)
	assert.Equal(t, models.TableAvailable, gotTable.Status)
}

func TestGetTableAssignmentNotFound(t *testing.T) {
	db := setupSeatingTestDB(t)
	svc := NewAssignmentService(db)

	assignment, err := svc.GetTableAssignment("tidak-ada")
	assert.NoError(t, err)
	assert.Nil(t, assignment)

	deleted, err := svc.DeleteTableAssignment("tidak-ada")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetTableAssignmentsFilterActive(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)

	table1 := seedTable(t, db, restaurant.ID, models.TableAvailable)
	party1 := seedParty(t, db, models.PartyWaiting)
	first, _ := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table1.ID,
		PartyID:  party1.ID,
		ServerID: server.ID,
	})

	table2 := seedTable(t, db, restaurant.ID, models.TableAvailable)
	party2 := seedParty(t, db, models.PartyWaiting)
	second, _ := svc.CreateTableAssignment(TableAssignmentCreate{
		TableID:  table2.ID,
		PartyID:  party2.ID,
		ServerID: server.ID,
	})

	_, err := svc.CompleteTableAssignment(first.ID)
	assert.NoError(t, err)

	active, err := svc.GetTableAssignments(TableAssignmentFilter{Status: string(models.AssignmentActive)})
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	all, err := svc.GetTableAssignments(TableAssignmentFilter{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateReservationAssignmentHoldsTable(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	reservation := seedReservation(t, db, restaurant.ID, models.ReservationConfirmed)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	assignment, err := svc.CreateReservationAssignment(ReservationAssignmentCreate{
		ReservationID: reservation.ID,
		TableID:       table.ID,
		ServerID:      server.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentActive, assignment.Status)

	var gotTable models.Table
	db.First(&gotTable, "id = ?", table.ID)
	assert.Equal(t, models.TableReserved, gotTable.Status)

	var gotReservation models.Reservation
	db.First(&gotReservation, "id = ?", reservation.ID)
	assert.Equal(t, models.ReservationConfirmed, gotReservation.Status)
}

func TestCreateReservationAssignmentPendingFails(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	reservation := seedReservation(t, db, restaurant.ID, models.ReservationPending)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	_, err := svc.CreateReservationAssignment(ReservationAssignmentCreate{
		ReservationID: reservation.ID,
		TableID:       table.ID,
		ServerID:      server.ID,
	})
	assert.True(t, IsInvalidState(err))
	assert.EqualError(t, err, "Reservation is not available for assignment")

	var gotTable models.Table
	db.First(&gotTable, "id = ?", table.ID)
	assert.Equal(t, models.TableAvailable, gotTable.Status)
}

func TestCompleteReservationAssignment(t *testing.T) {
	db := setupSeatingTestDB(t)
	restaurant := seedRestaurant(t, db)
	table := seedTable(t, db, restaurant.ID, models.TableAvailable)
	reservation := seedReservation(t, db, restaurant.ID, models.ReservationConfirmed)
	server := seedServer(t, db, restaurant.ID, true)

	svc := NewAssignmentService(db)
	created, err := svc.CreateReservationAssignment(ReservationAssignmentCreate{
		ReservationID: reservation.ID,
		TableID:       table.ID,
		ServerID:      server.ID,
	})
	assert.NoError(t, err)

	completed, err := svc.CompleteReservationAssignment(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	var gotTable models.Table
	db.First(&gotTable, "id = ?", table.ID)
	assert.Equal(t, models.TableCleaning, gotTable.Status)

	var gotReservation models.Reservation
	db.First(&gotReservation, "id = ?", reservation.ID)
	assert.Equal(t, models.ReservationCompleted, gotReservation.Status)
}
