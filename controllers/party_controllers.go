package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/services"
	"github.com/seatwise/seating-app/utils"
)

type PartyController struct {
	svc *services.PartyService
}

func NewPartyController(db *gorm.DB) *PartyController {
	return &PartyController{svc: services.NewPartyService(db)}
}

// CreateParty -> POST /parties
func (pc *PartyController) CreateParty(c *gin.Context) {
	var input services.PartyCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	party, err := pc.svc.CreateParty(input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Party created: %s (size=%d)", party.Name, party.Size)
	utils.RespondJSON(c, http.StatusCreated, "Party created", party)
}

// GetAllParties -> GET /parties dengan filter status opsional
func (pc *PartyController) GetAllParties(c *gin.Context) {
	parties, err := pc.svc.GetParties(c.Query("status"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of parties", parties)
}

// GetPartyByID -> GET /parties/:party_id
func (pc *PartyController) GetPartyByID(c *gin.Context) {
	party, err := pc.svc.GetParty(c.Param("party_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if party == nil {
		utils.RespondError(c, http.StatusNotFound, ErrPartyNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Party detail", party)
}

// UpdateParty -> PATCH /parties/:party_id
func (pc *PartyController) UpdateParty(c *gin.Context) {
	var patch services.PartyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	party, err := pc.svc.UpdateParty(c.Param("party_id"), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if party == nil {
		utils.RespondError(c, http.StatusNotFound, ErrPartyNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Party updated", party)
}

// DeleteParty -> DELETE /parties/:party_id
func (pc *PartyController) DeleteParty(c *gin.Context) {
	deleted, err := pc.svc.DeleteParty(c.Param("party_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrPartyNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
