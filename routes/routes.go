package routes

import (
	"time"

	"autocheck-backend/config"
	"autocheck-backend/controllers"
	"autocheck-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.LoadHTMLGlob("templates/*.html")

	// Page routes. The session gate only checks cookie presence; the API
	// below re-validates the token on every call.
	r.GET("/", controllers.Landing)
	r.GET("/login", utils.RedirectAuthenticated(), controllers.LoginPage)

	dashboard := r.Group("/dashboard")
	dashboard.Use(utils.RequireSession())
	{
		dashboard.GET("", controllers.DashboardPage)
		dashboard.GET("/*page", controllers.DashboardPage)
	}

	auth := r.Group("/auth")
	auth.Use(utils.RateLimiter(rate.Limit(5), 10))
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Vehicle routes
		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("/lookup", controllers.LookupVehicle)
			vehicles.GET("", controllers.GetVehicles)
			vehicles.GET("/:id", controllers.GetVehicle)
		}

		// Service order routes
		orders := api.Group("/service-orders")
		{
			orders.POST("", controllers.CreateServiceOrder)
			orders.GET("", utils.CacheResponses(30*time.Second), controllers.GetServiceOrders)
			orders.GET("/:id", controllers.GetServiceOrder)
			orders.PUT("/:id/status", controllers.UpdateServiceOrderStatus)

			orders.POST("/:id/inspection-items", controllers.AddInspectionItem)
			orders.GET("/:id/inspection-items", controllers.GetInspectionItems)

			orders.POST("/:id/services", controllers.AddOrderService)
			orders.GET("/:id/services", controllers.GetOrderServices)
		}

		// Dashboard routes
		api.GET("/dashboard", utils.CacheResponses(30*time.Second), controllers.GetDashboardOverview)
	}

	return r
}
