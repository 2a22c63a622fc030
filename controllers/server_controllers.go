package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/services"
	"github.com/seatwise/seating-app/utils"
)

type ServerController struct {
	svc *services.ServerService
}

func NewServerController(db *gorm.DB) *ServerController {
	return &ServerController{svc: services.NewServerService(db)}
}

// CreateServer -> POST /servers
func (sc *ServerController) CreateServer(c *gin.Context) {
	var input services.ServerCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	server, err := sc.svc.CreateServer(input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Server created: %s %s (%s)", server.FirstName, server.LastName, server.EmployeeID)
	utils.RespondJSON(c, http.StatusCreated, "Server created", server)
}

// GetAllServers -> GET /servers dengan filter restaurant_id/is_active
func (sc *ServerController) GetAllServers(c *gin.Context) {
	filter := services.ServerFilter{
		RestaurantID: c.Query("restaurant_id"),
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		filter.IsActive = &active
	}

	servers, err := sc.svc.GetServers(filter)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of servers", servers)
}

// GetServerByID -> GET /servers/:server_id
func (sc *ServerController) GetServerByID(c *gin.Context) {
	server, err := sc.svc.GetServer(c.Param("server_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if server == nil {
		utils.RespondError(c, http.StatusNotFound, ErrServerNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Server detail", server)
}

// UpdateServer -> PATCH /servers/:server_id
func (sc *ServerController) UpdateServer(c *gin.Context) {
	var patch services.ServerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	server, err := sc.svc.UpdateServer(c.Param("server_id"), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if server == nil {
		utils.RespondError(c, http.StatusNotFound, ErrServerNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Server updated", server)
}

// DeleteServer -> DELETE /servers/:server_id
func (sc *ServerController) DeleteServer(c *gin.Context) {
	deleted, err := sc.svc.DeleteServer(c.Param("server_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrServerNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
