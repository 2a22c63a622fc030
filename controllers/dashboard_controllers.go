package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/hub"
	"github.com/seatwise/seating-app/models"
	"github.com/seatwise/seating-app/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboardStats mengambil statistik untuk dashboard lantai
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalTables int64 `json:"total_tables"`
		TableStats  struct {
			Available  int64 `json:"available"`
			Occupied   int64 `json:"occupied"`
			Reserved   int64 `json:"reserved"`
			Cleaning   int64 `json:"cleaning"`
			OutOfOrder int64 `json:"out_of_order"`
		} `json:"table_stats"`
		PartyStats struct {
			Waiting int64 `json:"waiting"`
			Seated  int64 `json:"seated"`
		} `json:"party_stats"`
		ActiveAssignments int64 `json:"active_assignments"`
		ReservationStats  struct {
			Today     int64 `json:"today"`
			Pending   int64 `json:"pending"`
			Confirmed int64 `json:"confirmed"`
			NoShow    int64 `json:"no_show"`
		} `json:"reservation_stats"`
		WaitingListCount int64 `json:"waiting_list_count"`
	}

	scope := func(q *gorm.DB) *gorm.DB {
		if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
			return q.Where("restaurant_id = ?", restaurantID)
		}
		return q
	}

	scope(dc.DB.Model(&models.Table{})).Count(&stats.TotalTables)
	scope(dc.DB.Model(&models.Table{})).Where("status = ?", models.TableAvailable).Count(&stats.TableStats.Available)
	scope(dc.DB.Model(&models.Table{})).Where("status = ?", models.TableOccupied).Count(&stats.TableStats.Occupied)
	scope(dc.DB.Model(&models.Table{})).Where("status = ?", models.TableReserved).Count(&stats.TableStats.Reserved)
	scope(dc.DB.Model(&models.Table{})).Where("status = ?", models.TableCleaning).Count(&stats.TableStats.Cleaning)
	scope(dc.DB.Model(&models.Table{})).Where("status = ?", models.TableOutOfOrder).Count(&stats.TableStats.OutOfOrder)

	dc.DB.Model(&models.Party{}).Where("status = ?", models.PartyWaiting).Count(&stats.PartyStats.Waiting)
	dc.DB.Model(&models.Party{}).Where("status = ?", models.PartySeated).Count(&stats.PartyStats.Seated)

	dc.DB.Model(&models.TableAssignment{}).Where("status = ?", models.AssignmentActive).Count(&stats.ActiveAssignments)

	scope(dc.DB.Model(&models.Reservation{})).Where("DATE(reservation_time) = ?", today).Count(&stats.ReservationStats.Today)
	scope(dc.DB.Model(&models.Reservation{})).Where("status = ?", models.ReservationPending).Count(&stats.ReservationStats.Pending)
	scope(dc.DB.Model(&models.Reservation{})).Where("status = ?", models.ReservationConfirmed).Count(&stats.ReservationStats.Confirmed)
	scope(dc.DB.Model(&models.Reservation{})).Where("status = ?", models.ReservationNoShow).Count(&stats.ReservationStats.NoShow)

	scope(dc.DB.Model(&models.WaitingList{})).Where("status = ?", models.WaitingListWaiting).Count(&stats.WaitingListCount)

	hub.BroadcastMessage(hub.Message{
		Event: hub.EventDashboardUpdate,
		Data:  stats,
	})

	utils.RespondJSON(c, http.StatusOK, "Dashboard statistics", stats)
}
