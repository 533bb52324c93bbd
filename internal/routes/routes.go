package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-admin/internal/config"
	"github.com/BruksfildServices01/salon-admin/internal/handlers"
	"github.com/BruksfildServices01/salon-admin/internal/middleware"
	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/store"
)

func RegisterRoutes(r *gin.Engine, st *store.Store, cfg *config.Config) {

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(st, cfg)
	meHandler := handlers.NewMeHandler(st)
	companyHandler := handlers.NewCompanyHandler(st)
	employeeHandler := handlers.NewEmployeeHandler(st)
	serviceHandler := handlers.NewServiceHandler(st)
	clientHandler := handlers.NewClientHandler(st)
	appointmentHandler := handlers.NewAppointmentHandler(st)
	activityLogsHandler := handlers.NewActivityLogsHandler(st)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/theme", meHandler.GetTheme)
			secured.PUT("/me/theme", meHandler.SetTheme)

			// ------------------------------
			// SUPERADMIN — TENANTS
			// ------------------------------
			companies := secured.Group("/companies")
			companies.Use(middleware.RequireRole(models.RoleSuperAdmin))
			{
				companies.POST("", companyHandler.Create)
				companies.GET("", companyHandler.List)
				companies.GET("/:id", companyHandler.Get)
				companies.POST("/:id/admins", companyHandler.CreateAdmin)
				companies.GET("/:id/admins", companyHandler.ListAdmins)
			}

			// ------------------------------
			// COMPANY SCOPE (ADMIN)
			// ------------------------------
			me := secured.Group("/me")
			me.Use(middleware.RequireCompany())
			{
				me.GET("/employees", employeeHandler.List)
				me.POST("/employees", employeeHandler.Create)
				me.PATCH("/employees/:id", employeeHandler.Update)

				me.GET("/services", serviceHandler.List)
				me.POST("/services", serviceHandler.Create)
				me.PATCH("/services/:id", serviceHandler.Update)
				me.DELETE("/services/:id", serviceHandler.Delete)

				me.GET("/clients", clientHandler.List)
				me.POST("/clients", clientHandler.Create)
				me.GET("/clients/:id", clientHandler.Get)
				me.PATCH("/clients/:id", clientHandler.Update)
				me.DELETE("/clients/:id", clientHandler.Delete)
				me.GET("/clients/:id/appointments", clientHandler.Appointments)

				me.GET("/appointments", appointmentHandler.List)
				me.POST("/appointments", appointmentHandler.Create)
				me.PATCH("/appointments/:id", appointmentHandler.Update)
				me.PATCH("/appointments/:id/payment", appointmentHandler.UpdatePayment)
				me.PATCH("/appointments/:id/notes", appointmentHandler.UpdateNotes)
				me.DELETE("/appointments/:id", appointmentHandler.Delete)

				me.GET("/activity-logs", activityLogsHandler.List)
			}
		}
	}
}
