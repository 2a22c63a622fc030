package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/hub"
	"github.com/seatwise/seating-app/services"
	"github.com/seatwise/seating-app/utils"
)

type AssignmentController struct {
	svc *services.AssignmentService
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{svc: services.NewAssignmentService(db)}
}

// respondAssignmentError memetakan error engine: InvalidState -> 400,
// selainnya -> 500.
func respondAssignmentError(c *gin.Context, err error) {
	if services.IsInvalidState(err) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	utils.RespondError(c, http.StatusInternalServerError, err)
}

// ---------------- Table assignments ----------------

// CreateTableAssignment -> POST /assignments/table-assignments
func (ac *AssignmentController) CreateTableAssignment(c *gin.Context) {
	var input services.TableAssignmentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	assignment, err := ac.svc.CreateTableAssignment(input)
	if err != nil {
		respondAssignmentError(c, err)
		return
	}

	hub.BroadcastTableAssignment(hub.EventAssignmentCreate, *assignment)
	utils.RespondJSON(c, http.StatusCreated, "Table assignment created", assignment)
}

// GetAllTableAssignments -> GET /assignments/table-assignments dengan filter
// opsional table_id/party_id/server_id/status (digabung AND).
func (ac *AssignmentController) GetAllTableAssignments(c *gin.Context) {
	filter := services.TableAssignmentFilter{
		TableID:  c.Query("table_id"),
		PartyID:  c.Query("party_id"),
		ServerID: c.Query("server_id"),
		Status:   c.Query("status"),
	}

	assignments, err := ac.svc.GetTableAssignments(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of table assignments", assignments)
}

// GetTableAssignmentByID -> GET /assignments/table-assignments/:assignment_id
func (ac *AssignmentController) GetTableAssignmentByID(c *gin.Context) {
	assignment, err := ac.svc.GetTableAssignment(c.Param("assignment_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if assignment == nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableAssignmentNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table assignment detail", assignment)
}

// UpdateTableAssignment -> PATCH /assignments/table-assignments/:assignment_id
func (ac *AssignmentController) UpdateTableAssignment(c *gin.Context) {
	var patch services.AssignmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	assignment, err := ac.svc.UpdateTableAssignment(c.Param("assignment_id"), patch)
	if err != nil {
		respondAssignmentError(c, err)
		return
	}
	if assignment == nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableAssignmentNotFound)
		return
	}

	hub.BroadcastTableAssignment(hub.EventAssignmentUpdate, *assignment)
	utils.RespondJSON(c, http.StatusOK, "Table assignment updated", assignment)
}

// CompleteTableAssignment -> PUT /assignments/table-assignments/:assignment_id/complete
func (ac *AssignmentController) CompleteTableAssignment(c *gin.Context) {
	assignment, err := ac.svc.CompleteTableAssignment(c.Param("assignment_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if assignment == nil {
		utils.RespondError(c, http.StatusNotFound, ErrTableAssignmentNotFound)
		return
	}

	hub.BroadcastTableAssignment(hub.EventAssignmentComplete, *assignment)
	utils.RespondJSON(c, http.StatusOK, "Table assignment completed", assignment)
}

// DeleteTableAssignment -> DELETE /assignments/table-assignments/:assignment_id
func (ac *AssignmentController) DeleteTableAssignment(c *gin.Context) {
	deleted, err := ac.svc.DeleteTableAssignment(c.Param("assignment_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrTableAssignmentNotFound)
		return
	}

	hub.BroadcastMessage(hub.Message{
		Event: hub.EventAssignmentDelete,
		Data:  gin.H{"assignment_id": c.Param("assignment_id")},
	})
	c.Status(http.StatusNoContent)
}

// ---------------- Reservation assignments ----------------

// CreateReservationAssignment -> POST /assignments/reservation-assignments
func (ac *AssignmentController) CreateReservationAssignment(c *gin.Context) {
	var input services.ReservationAssignmentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	assignment, err := ac.svc.CreateReservationAssignment(input)
	if err != nil {
		respondAssignmentError(c, err)
		return
	}

	hub.BroadcastReservationAssignment(hub.EventAssignmentCreate, *assignment)
	utils.RespondJSON(c, http.StatusCreated, "Reservation assignment created", assignment)
}

// GetAllReservationAssignments -> GET /assignments/reservation-assignments
func (ac *AssignmentController) GetAllReservationAssignments(c *gin.Context) {
	filter := services.ReservationAssignmentFilter{
		ReservationID: c.Query("reservation_id"),
		TableID:       c.Query("table_id"),
		ServerID:      c.Query("server_id"),
		Status:        c.Query("status"),
	}

	assignments, err := ac.svc.GetReservationAssignments(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservation assignments", assignments)
}

// GetReservationAssignmentByID -> GET /assignments/reservation-assignments/:assignment_id
func (ac *AssignmentController) GetReservationAssignmentByID(c *gin.Context) {
	assignment, err := ac.svc.GetReservationAssignment(c.Param("assignment_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if assignment == nil {
		utils.RespondError(c, http.StatusNotFound, ErrReservationAssignmentNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation assignment detail", assignment)
}

// UpdateReservationAssignment -> PATCH /assignments/reservation-assignments/:assignment_id
func (ac *AssignmentController) UpdateReservationAssignment(c *gin.Context) {
	var patch services.AssignmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	assignment, err := ac.svc.UpdateReservationAssignment(c.Param("assignment_id"), patch)
	if err != nil {
		respondAssignmentError(c, err)
		return
	}
	if assignment == nil {
		utils.RespondError(c, http.StatusNotFound, ErrReservationAssignmentNotFound)
		return
	}

	hub.BroadcastReservationAssignment(hub.EventAssignmentUpdate, *assignment)
	utils.RespondJSON(c, http.StatusOK, "Reservation assignment updated", assignment)
}

// CompleteReservationAssignment -> PUT /assignments/reservation-assignments/:assignment_id/complete
func (ac *AssignmentController) CompleteReservationAssignment(c *gin.Context) {
	assignment, err := ac.svc.CompleteReservationAssignment(c.Param("assignment_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if assignment == nil {
		utils.RespondError(c, http.StatusNotFound, ErrReservationAssignmentNotFound)
		return
	}

	hub.BroadcastReservationAssignment(hub.EventAssignmentComplete, *assignment)
	utils.RespondJSON(c, http.StatusOK, "Reservation assignment completed", assignment)
}

// DeleteReservationAssignment -> DELETE /assignments/reservation-assignments/:assignment_id
func (ac *AssignmentController) DeleteReservationAssignment(c *gin.Context) {
	deleted, err := ac.svc.DeleteReservationAssignment(c.Param("assignment_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrReservationAssignmentNotFound)
		return
	}

	hub.BroadcastMessage(hub.Message{
		Event: hub.EventAssignmentDelete,
		Data:  gin.H{"assignment_id": c.Param("assignment_id")},
	})
	c.Status(http.StatusNoContent)
}
