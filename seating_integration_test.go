package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/router"
	"github.com/seatwise/seating-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupIntegrationDB -> migrasi semua model di SQLite in-memory
func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
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

func doJSON(t *testing.T, r *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataID(t *testing.T, w *httptest.ResponseRecorder) string {
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %s", w.Body.String())
	}
	return data["id"].(string)
}

// TestSeatingEndToEnd menguji flow utama lantai:
// 1. Create restaurant, table, party, server
// 2. Assign table ke party => meja OCCUPIED, party SEATED
// 3. Complete assignment => meja CLEANING, party FINISHED
// 4. Mark clean => meja AVAILABLE lagi
func TestSeatingEndToEnd(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	// 1. Seed lewat API
	w := doJSON(t, r, "POST", "/restaurants", map[string]interface{}{
		"name":         "Warung Integrasi",
		"address":      "Jl. Integrasi No. 1",
		"phone":        "0812000000",
		"opening_time": "10:00:00",
		"closing_time": "22:00:00",
		"max_capacity": 50,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	restaurantID := dataID(t, w)

	w = doJSON(t, r, "POST", fmt.Sprintf("/restaurants/%s/tables", restaurantID), map[string]interface{}{
		"table_number": "A1",
		"capacity":     4,
		"location":     "indoor",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	tableID := dataID(t, w)

	w = doJSON(t, r, "POST", "/parties", map[string]interface{}{
		"name": "Keluarga Budi",
		"size": 4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	partyID := dataID(t, w)

	w = doJSON(t, r, "POST", "/servers", map[string]interface{}{
		"first_name":    "Siti",
		"last_name":     "Aminah",
		"employee_id":   "EMP-INT-1",
		"restaurant_id": restaurantID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	serverID := dataID(t, w)

	// 2. Assign table ke party
	w = doJSON(t, r, "POST", "/assignments/table-assignments", map[string]interface{}{
		"table_id":  tableID,
		"party_id":  partyID,
		"server_id": serverID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assignmentID := dataID(t, w)

	var table models.Table
	db.First(&table, "id = ?", tableID)
	assert.Equal(t, models.TableOccupied, table.Status)

	var party models.Party
	db.First(&party, "id = ?", partyID)
	assert.Equal(t, models.PartySeated, party.Status)

	// Meja yang sama tidak bisa di-assign dua kali
	w = doJSON(t, r, "POST", "/assignments/table-assignments", map[string]interface{}{
		"table_id":  tableID,
		"party_id":  partyID,
		"server_id": serverID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 3. Complete assignment
	w = doJSON(t, r, "PUT", "/assignments/table-assignments/"+assignmentID+"/complete", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	db.First(&table, "id = ?", tableID)
	assert.Equal(t, models.TableCleaning, table.Status)
	db.First(&party, "id = ?", partyID)
	assert.Equal(t, models.PartyFinished, party.Status)

	// 4. Mark clean
	w = doJSON(t, r, "PUT", "/tables/"+tableID+"/clean", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	db.First(&table, "id = ?", tableID)
	assert.Equal(t, models.TableAvailable, table.Status)

	// Dashboard ikut mencerminkan state akhir
	w = doJSON(t, r, "GET", "/dashboard/stats?restaurant_id="+restaurantID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	tableStats := stats["data"].(map[string]interface{})["table_stats"].(map[string]interface{})
	assert.Equal(t, float64(1), tableStats["available"])
	assert.Equal(t, float64(0), tableStats["occupied"])
}
