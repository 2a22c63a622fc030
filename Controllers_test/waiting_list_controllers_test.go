package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/controllers"
	"github.com/seatwise/seating-app/models"
)

func setupWaitingListRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	waitingCtrl := controllers.NewWaitingListController(db)
	router.POST("/waiting-list", waitingCtrl.AddToWaitingList)
	router.GET("/waiting-list", waitingCtrl.GetWaitingList)
	router.GET("/waiting-list/next", waitingCtrl.GetNextWaitingParty)
	router.GET("/waiting-list/:entry_id", waitingCtrl.GetWaitingListEntryByID)
	router.PUT("/waiting-list/:entry_id/seat", waitingCtrl.MarkAsSeated)
	router.DELETE("/waiting-list/:entry_id", waitingCtrl.RemoveFromWaitingList)
	return router
}

func TestWaitingListFlow(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedTestRestaurant(t, db)
	router := setupWaitingListRouter(db)

	// Tambah dua entry
	payload := map[string]interface{}{
		"customer_name":  "Agus",
		"customer_phone": "0811000001",
		"party_size":     2,
		"restaurant_id":  restaurant.ID,
	}
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/waiting-list", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	firstID := created["data"].(map[string]interface{})["id"].(string)

	// Geser request_time supaya urutan FIFO deterministik
	db.Model(&models.WaitingList{}).Where("id = ?", firstID).
		Update("request_time", time.Now().Add(-10*time.Minute))

	payload["customer_name"] = "Rina"
	payload["customer_phone"] = "0811000002"
	body, _ = json.Marshal(payload)
	req, _ = http.NewRequest("POST", "/waiting-list", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Next harus entry paling lama
	req, _ = http.NewRequest("GET", "/waiting-list/next?restaurant_id="+restaurant.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var next map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &next))
	assert.Equal(t, "Agus", next["data"].(map[string]interface{})["customer_name"])

	// Seat entry pertama, next berpindah ke Rina
	req, _ = http.NewRequest("PUT", "/waiting-list/"+firstID+"/seat", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/waiting-list/next?restaurant_id="+restaurant.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &next))
	assert.Equal(t, "Rina", next["data"].(map[string]interface{})["customer_name"])
}

func TestWaitingListNextEmpty(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedTestRestaurant(t, db)
	router := setupWaitingListRouter(db)

	req, _ := http.NewRequest("GET", "/waiting-list/next?restaurant_id="+restaurant.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveWaitingListEntry(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedTestRestaurant(t, db)
	entry := models.WaitingList{
		CustomerName:  "Agus",
		CustomerPhone: "0811000001",
		PartySize:     2,
		Status:        models.WaitingListWaiting,
		RestaurantID:  restaurant.ID,
	}
	db.Create(&entry)

	router := setupWaitingListRouter(db)
	req, _ := http.NewRequest("DELETE", "/waiting-list/"+entry.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req, _ = http.NewRequest("GET", "/waiting-list/"+entry.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
