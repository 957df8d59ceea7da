package routes

import (
	"os"
	"strings"

	"github.com/softkr/timeheair/config"
	"github.com/softkr/timeheair/controllers"
	"github.com/softkr/timeheair/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "tauri://localhost"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	protected := api.Group("")
	protected.Use(utils.AuthMiddleware())
	{
		// Member routes
		members := protected.Group("/members")
		{
			members.POST("", controllers.CreateMember)
			members.GET("", controllers.GetMembers)
			members.GET("/search", controllers.SearchMemberByPhone)
			members.GET("/:id", controllers.GetMember)
			members.PUT("/:id", controllers.UpdateMember)
			members.DELETE("/:id", controllers.DeleteMember)
			members.POST("/:id/stamp", controllers.AddStamp)
			members.POST("/:id/use-stamps", controllers.UseStamps)
		}

		// Staff routes
		staff := protected.Group("/staff")
		{
			staff.GET("", controllers.GetStaffList)
			staff.GET("/:id", controllers.GetStaff)
			staff.POST("", controllers.CreateStaff)
			staff.PUT("/:id", controllers.UpdateStaff)
			staff.DELETE("/:id", controllers.DeleteStaff)
		}

		// Seat routes
		seats := protected.Group("/seats")
		{
			seats.GET("", controllers.GetSeats)
			seats.GET("/:id", controllers.GetSeat)
			seats.POST("/:id/start", controllers.StartService)
			seats.POST("/:id/complete", controllers.CompleteService)
			seats.POST("/:id/cancel", controllers.CancelService)
		}

		// Reservation routes
		reservations := protected.Group("/reservations")
		{
			reservations.GET("", controllers.GetReservations)
			reservations.GET("/:id", controllers.GetReservation)
			reservations.POST("", controllers.CreateReservation)
			reservations.PUT("/:id", controllers.UpdateReservation)
			reservations.PATCH("/:id/status", controllers.UpdateReservationStatus)
			reservations.DELETE("/:id", controllers.DeleteReservation)
		}

		// Service catalog routes
		services := protected.Group("/services")
		{
			services.GET("", controllers.GetServiceMenus)
			services.GET("/:id", controllers.GetServiceMenu)
			services.GET("/:id/price", controllers.ResolvePrice)
			services.POST("", controllers.CreateServiceMenu)
			services.PUT("/:id", controllers.UpdateServiceMenu)
			services.DELETE("/:id", controllers.DeleteServiceMenu)
		}

		// Ledger routes
		ledgerController := controllers.LedgerController{}
		ledger := protected.Group("/ledger")
		{
			ledger.GET("", ledgerController.GetLedgerEntries)
			ledger.GET("/summary", ledgerController.GetLedgerSummary)
			ledger.GET("/daily", ledgerController.GetDailySummary)
		}

		// Dashboard route
		protected.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
