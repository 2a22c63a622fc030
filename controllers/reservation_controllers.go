package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/hub"
	"github.com/seatwise/seating-app/services"
	"github.com/seatwise/seating-app/utils"
)

type ReservationController struct {
	svc *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{svc: services.NewReservationService(db)}
}

// CreateReservation -> POST /reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var input services.ReservationCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.svc.CreateReservation(input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation created: %s for %s", reservation.ID, reservation.CustomerName)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetAllReservations -> GET /reservations dengan filter
// restaurant_id/status/date opsional.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	filter := services.ReservationFilter{
		RestaurantID: c.Query("restaurant_id"),
		Status:       c.Query("status"),
		Date:         c.Query("date"),
	}

	reservations, err := rc.svc.GetReservations(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID -> GET /reservations/:reservation_id
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservation, err := rc.svc.GetReservation(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if reservation == nil {
		utils.RespondError(c, http.StatusNotFound, ErrReservationNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservation -> PATCH /reservations/:reservation_id
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var patch services.ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.svc.UpdateReservation(c.Param("reservation_id"), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if reservation == nil {
		utils.RespondError(c, http.StatusNotFound, ErrReservationNotFound)
		return
	}

	hub.BroadcastReservationUpdate(hub.EventReservationUpdate, *reservation)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// CancelReservation -> PUT /reservations/:reservation_id/cancel
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	reservation, err := rc.svc.CancelReservation(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if reservation == nil {
		utils.RespondError(c, http.StatusNotFound, ErrReservationNotFound)
		return
	}

	hub.BroadcastReservationUpdate(hub.EventReservationUpdate, *reservation)
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", reservation)
}

// DeleteReservation -> DELETE /reservations/:reservation_id
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	deleted, err := rc.svc.DeleteReservation(c.Param("reservation_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrReservationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
