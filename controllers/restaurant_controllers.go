package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/services"
	"github.com/seatwise/seating-app/utils"
)

type RestaurantController struct {
	svc       *services.RestaurantService
	assignSvc *services.AssignmentService
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{
		svc:       services.NewRestaurantService(db),
		assignSvc: services.NewAssignmentService(db),
	}
}

// CreateRestaurant -> POST /restaurants
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var input services.RestaurantCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := rc.svc.CreateRestaurant(input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant created: %s (%s)", restaurant.Name, restaurant.ID)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// GetAllRestaurants -> GET /restaurants dengan pagination limit/offset
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	restaurants, total, err := rc.svc.GetRestaurants(limit, offset)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", gin.H{
		"items":  restaurants,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetRestaurantByID -> GET /restaurants/:restaurant_id
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	restaurant, err := rc.svc.GetRestaurant(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if restaurant == nil {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// UpdateRestaurant -> PATCH /restaurants/:restaurant_id
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	var patch services.RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant, err := rc.svc.UpdateRestaurant(c.Param("restaurant_id"), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if restaurant == nil {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// DeleteRestaurant -> DELETE /restaurants/:restaurant_id
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	deleted, err := rc.svc.DeleteRestaurant(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- Sections ----------------

// GetSections -> GET /restaurants/:restaurant_id/sections
func (rc *RestaurantController) GetSections(c *gin.Context) {
	sections, err := rc.svc.GetSections(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of sections", sections)
}

// CreateSection -> POST /restaurants/:restaurant_id/sections
func (rc *RestaurantController) CreateSection(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")
	restaurant, err := rc.svc.GetRestaurant(restaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if restaurant == nil {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}

	var input services.SectionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	section, err := rc.svc.CreateSection(restaurantID, input)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Section created", section)
}

// UpdateSection -> PATCH /sections/:section_id
func (rc *RestaurantController) UpdateSection(c *gin.Context) {
	var patch services.SectionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	section, err := rc.svc.UpdateSection(c.Param("section_id"), patch)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if section == nil {
		utils.RespondError(c, http.StatusNotFound, ErrSectionNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Section updated", section)
}

// DeleteSection -> DELETE /sections/:section_id
func (rc *RestaurantController) DeleteSection(c *gin.Context) {
	deleted, err := rc.svc.DeleteSection(c.Param("section_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrSectionNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------------- Seating helpers ----------------

// AssignTableToParty -> POST /restaurants/:restaurant_id/seating/assign-table
// Jalur pintas host stand: verifikasi restoran lalu delegasi ke engine.
func (rc *RestaurantController) AssignTableToParty(c *gin.Context) {
	restaurant, err := rc.svc.GetRestaurant(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if restaurant == nil {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}

	var input services.TableAssignmentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	assignment, err := rc.assignSvc.CreateTableAssignment(input)
	if err != nil {
		respondAssignmentError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table assigned to party", assignment)
}

// CheckAvailability -> GET /restaurants/:restaurant_id/seating/check-availability
func (rc *RestaurantController) CheckAvailability(c *gin.Context) {
	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil || partySize < 1 {
		utils.RespondError(c, http.StatusBadRequest, errInvalidPartySize)
		return
	}

	availability, err := rc.svc.CheckTableAvailability(c.Param("restaurant_id"), partySize)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table availability", availability)
}

// GetOccupancyAnalytics -> GET /restaurants/:restaurant_id/analytics/occupancy
func (rc *RestaurantController) GetOccupancyAnalytics(c *gin.Context) {
	analytics, err := rc.svc.GetOccupancyAnalytics(c.Param("restaurant_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Occupancy analytics", analytics)
}
