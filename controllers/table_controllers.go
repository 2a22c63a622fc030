package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/hub"
	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/services"
	"github.com/seatwise/seating-app/utils"
)

type TableController struct {
	DB  *gorm.DB
	svc *services.RestaurantService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db, svc: services.NewRestaurantService(db)}
}

// CreateTable -> POST /restaurants/:restaurant_id/tables
func (tc *TableController) CreateTable(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")
	restaurant, err := tc.svc.GetRestaurant(restaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if restaurant == nil {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}

	var input services.TableCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.svc.CreateTable(restaurantID, input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastMessage(hub.Message{
		Event: hub.EventTableCreate,
		Data: gin.H{
			"table": table,
			"stats": tc.getFloorStats(restaurantID),
		},
	})

	utils.InfoLogger.Printf("New table created: %s (status=%s)", table.TableNumber, table.Status)
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

// GetTables -> GET /restaurants/:restaurant_id/tables dengan filter
// section_id/status opsional.
func (tc *TableController) GetTables(c *gin.Context) {
	filter := services.TableFilter{
		RestaurantID: c.Param("restaurant_id"),
		SectionID:    c.Query("section_id"),
		Status:       c.Query("status"),
	}

	tables, err := tc.svc.GetTables(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> GET /tables/:table_id
func (tc *TableController) GetTableByID(c *gin.Context) {
	table, err := tc.svc.GetTable(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> PATCH /tables/:table_id (partial update administratif;
// perubahan status karena assignment dikerjakan engine, bukan endpoint ini)
func (tc *TableController) UpdateTable(c *gin.Context) {
	var patch services.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.svc.UpdateTable(c.Param("table_id"), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableNotFound)
		return
	}

	hub.BroadcastTableUpdate(*table)
	utils.InfoLogger.Printf("Table %s updated (status=%s)", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> DELETE /tables/:table_id
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")
	deleted, err := tc.svc.DeleteTable(tableID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrTableNotFound)
		return
	}

	hub.BroadcastMessage(hub.Message{
		Event: hub.EventTableDelete,
		Data:  gin.H{"table_id": tableID},
	})
	c.Status(http.StatusNoContent)
}

// MarkTableClean -> PUT /tables/:table_id/clean
// Housekeeping: meja CLEANING kembali AVAILABLE.
func (tc *TableController) MarkTableClean(c *gin.Context) {
	table, err := tc.svc.MarkTableClean(c.Param("table_id"))
	if err != nil {
		if services.IsInvalidState(err) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if table == nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableNotFound)
		return
	}

	hub.BroadcastTableUpdate(*table)
	utils.RespondJSON(c, http.StatusOK, "Table marked as clean", table)
}

// getFloorStats menghitung jumlah meja per status untuk broadcast dashboard.
func (tc *TableController) getFloorStats(restaurantID string) map[string]int64 {
	stats := make(map[string]int64)
	statuses := []models.TableStatus{
		models.TableAvailable,
		models.TableOccupied,
		models.TableReserved,
		models.TableCleaning,
		models.TableOutOfOrder,
	}

	var total int64
	for _, status := range statuses {
		var count int64
		tc.DB.Model(&models.Table{}).
			Where("restaurant_id = ? AND status = ?", restaurantID, status).
			Count(&count)
		stats[string(status)] = count
		total += count
	}
	stats["total"] = total
	return stats
}
