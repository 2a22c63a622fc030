package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/seatwise/seating-app/controllers"
	"github.com/seatwise/seating-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	restaurantCtrl := controllers.NewRestaurantController(db)
	tableCtrl := controllers.NewTableController(db)
	partyCtrl := controllers.NewPartyController(db)
	reservationCtrl := controllers.NewReservationController(db)
	serverCtrl := controllers.NewServerController(db)
	waitingCtrl := controllers.NewWaitingListController(db)
	assignmentCtrl := controllers.NewAssignmentController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Endpoint WebSocket untuk dashboard lantai real-time
	r.GET("/ws", controllers.FloorHandler)

	// RESTAURANTS
	r.POST("/restaurants", restaurantCtrl.CreateRestaurant)
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.PATCH("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)
	r.DELETE("/restaurants/:restaurant_id", restaurantCtrl.DeleteRestaurant)

	// SECTIONS (nested di bawah restaurant)
	r.GET("/restaurants/:restaurant_id/sections", restaurantCtrl.GetSections)
	r.POST("/restaurants/:restaurant_id/sections", restaurantCtrl.CreateSection)
	r.PATCH("/sections/:section_id", restaurantCtrl.UpdateSection)
	r.DELETE("/sections/:section_id", restaurantCtrl.DeleteSection)

	// TABLES
	r.POST("/restaurants/:restaurant_id/tables", tableCtrl.CreateTable)
	r.GET("/restaurants/:restaurant_id/tables", tableCtrl.GetTables)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)
	r.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	r.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	r.PUT("/tables/:table_id/clean", tableCtrl.MarkTableClean)

	// SEATING (operasi gabungan per restaurant)
	r.POST("/restaurants/:restaurant_id/seating/assign-table", restaurantCtrl.AssignTableToParty)
	r.GET("/restaurants/:restaurant_id/seating/check-availability", restaurantCtrl.CheckAvailability)
	r.GET("/restaurants/:restaurant_id/analytics/occupancy", restaurantCtrl.GetOccupancyAnalytics)

	// PARTIES
	r.POST("/parties", partyCtrl.CreateParty)
	r.GET("/parties", partyCtrl.GetAllParties)
	r.GET("/parties/:party_id", partyCtrl.GetPartyByID)
	r.PATCH("/parties/:party_id", partyCtrl.UpdateParty)
	r.DELETE("/parties/:party_id", partyCtrl.DeleteParty)

	// RESERVATIONS
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations", reservationCtrl.GetAllReservations)
	r.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	r.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	r.PUT("/reservations/:reservation_id/cancel", reservationCtrl.CancelReservation)
	r.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

	// SERVERS
	r.POST("/servers", serverCtrl.CreateServer)
	r.GET("/servers", serverCtrl.GetAllServers)
	r.GET("/servers/:server_id", serverCtrl.GetServerByID)
	r.PATCH("/servers/:server_id", serverCtrl.UpdateServer)
	r.DELETE("/servers/:server_id", serverCtrl.DeleteServer)

	// WAITING LIST (FIFO)
	r.POST("/waiting-list", waitingCtrl.AddToWaitingList)
	r.GET("/waiting-list", waitingCtrl.GetWaitingList)
	r.GET("/waiting-list/next", waitingCtrl.GetNextWaitingParty)
	r.GET("/waiting-list/:entry_id", waitingCtrl.GetWaitingListEntryByID)
	r.PATCH("/waiting-list/:entry_id", waitingCtrl.UpdateWaitingListEntry)
	r.PUT("/waiting-list/:entry_id/seat", waitingCtrl.MarkAsSeated)
	r.DELETE("/waiting-list/:entry_id", waitingCtrl.RemoveFromWaitingList)

	// ASSIGNMENTS
	// Rate limiter lebih ketat untuk endpoint yang menulis status meja
	assignments := r.Group("/assignments")
	assignments.Use(middlewares.NewStrictRateLimiter())
	{
		assignments.POST("/table-assignments", assignmentCtrl.CreateTableAssignment)
		assignments.GET("/table-assignments", assignmentCtrl.GetAllTableAssignments)
		assignments.GET("/table-assignments/:assignment_id", assignmentCtrl.GetTableAssignmentByID)
		assignments.PATCH("/table-assignments/:assignment_id", assignmentCtrl.UpdateTableAssignment)
		assignments.PUT("/table-assignments/:assignment_id/complete", assignmentCtrl.CompleteTableAssignment)
		assignments.DELETE("/table-assignments/:assignment_id", assignmentCtrl.DeleteTableAssignment)

		assignments.POST("/reservation-assignments", assignmentCtrl.CreateReservationAssignment)
		assignments.GET("/reservation-assignments", assignmentCtrl.GetAllReservationAssignments)
		assignments.GET("/reservation-assignments/:assignment_id", assignmentCtrl.GetReservationAssignmentByID)
		assignments.PATCH("/reservation-assignments/:assignment_id", assignmentCtrl.UpdateReservationAssignment)
		assignments.PUT("/reservation-assignments/:assignment_id/complete", assignmentCtrl.CompleteReservationAssignment)
		assignments.DELETE("/reservation-assignments/:assignment_id", assignmentCtrl.DeleteReservationAssignment)
	}

	// DASHBOARD
	r.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)

	return r
}
