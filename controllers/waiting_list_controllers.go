package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/hub"
	"github.com/seatwise/seating-app/services"
	"github.com/seatwise/seating-app/utils"
)

type WaitingListController struct {
	svc *services.WaitingListService
}

func NewWaitingListController(db *gorm.DB) *WaitingListController {
	return &WaitingListController{svc: services.NewWaitingListService(db)}
}

// AddToWaitingList -> POST /waiting-list
func (wc *WaitingListController) AddToWaitingList(c *gin.Context) {
	var input services.WaitingListCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := wc.svc.AddToWaitingList(input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastWaitingListUpdate(*entry)
	utils.InfoLogger.Printf("Waiting list entry created: %s (party of %d)", entry.CustomerName, entry.PartySize)
	utils.RespondJSON(c, http.StatusCreated, "Added to waiting list", entry)
}

// GetWaitingList -> GET /waiting-list (FIFO) dengan filter
// restaurant_id/status opsional.
func (wc *WaitingListController) GetWaitingList(c *gin.Context) {
	entries, err := wc.svc.GetWaitingList(c.Query("restaurant_id"), c.Query("status"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Waiting list", entries)
}

// GetWaitingListEntryByID -> GET /waiting-list/:entry_id
func (wc *WaitingListController) GetWaitingListEntryByID(c *gin.Context) {
	entry, err := wc.svc.GetWaitingListEntry(c.Param("entry_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if entry == nil {
		utils.RespondError(c, http.StatusNotFound, ErrWaitingListEntryNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Waiting list entry detail", entry)
}

// GetNextWaitingParty -> GET /waiting-list/next?restaurant_id=...
func (wc *WaitingListController) GetNextWaitingParty(c *gin.Context) {
	entry, err := wc.svc.GetNextWaitingParty(c.Query("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if entry == nil {
		utils.RespondError(c, http.StatusNotFound, ErrWaitingListEntryNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Next waiting party", entry)
}

// UpdateWaitingListEntry -> PATCH /waiting-list/:entry_id
func (wc *WaitingListController) UpdateWaitingListEntry(c *gin.Context) {
	var patch services.WaitingListPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := wc.svc.UpdateWaitingListEntry(c.Param("entry_id"), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if entry == nil {
		utils.RespondError(c, http.StatusNotFound, ErrWaitingListEntryNotFound)
		return
	}

	hub.BroadcastWaitingListUpdate(*entry)
	utils.RespondJSON(c, http.StatusOK, "Waiting list entry updated", entry)
}

// MarkAsSeated -> PUT /waiting-list/:entry_id/seat
func (wc *WaitingListController) MarkAsSeated(c *gin.Context) {
	entry, err := wc.svc.MarkAsSeated(c.Param("entry_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if entry == nil {
		utils.RespondError(c, http.StatusNotFound, ErrWaitingListEntryNotFound)
		return
	}

	hub.BroadcastWaitingListUpdate(*entry)
	utils.RespondJSON(c, http.StatusOK, "Waiting list entry seated", entry)
}

// RemoveFromWaitingList -> DELETE /waiting-list/:entry_id
func (wc *WaitingListController) RemoveFromWaitingList(c *gin.Context) {
	deleted, err := wc.svc.RemoveFromWaitingList(c.Param("entry_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrWaitingListEntryNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
