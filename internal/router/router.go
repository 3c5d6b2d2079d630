package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/JamilPr1/whatsapp-booking-system/internal/middleware"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreatePaymentIntent(c *ginext.Context)
	ConfirmPayment(c *ginext.Context)
	GetAvailableDates(c *ginext.Context)
	GetTimeSlots(c *ginext.Context)
	ListSchedules(c *ginext.Context)
	UnlockSchedule(c *ginext.Context)
	SetScheduleDistrict(c *ginext.Context)
	CreateService(c *ginext.Context)
	ListServices(c *ginext.Context)
	CreateUser(c *ginext.Context)
	GetUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		bookings := api.Group("/bookings", middleware.RequireIdentity())
		{
			bookings.POST("", h.CreateBooking)
			bookings.GET("", h.ListBookings)
			bookings.GET("/:id", h.GetBooking)
			bookings.PATCH("/:id/status", h.UpdateBookingStatus)
			bookings.POST("/:id/cancel", h.CancelBooking)
			bookings.POST("/:id/payment-intent", h.CreatePaymentIntent)
		}

		// Payments
		api.POST("/payments/confirm", h.ConfirmPayment)

		// Availability
		api.GET("/availability/dates/:district", h.GetAvailableDates)
		api.GET("/availability/slots", h.GetTimeSlots)

		// Service catalog
		api.GET("/services", h.ListServices)
		api.POST("/services", middleware.RequireAdmin(), h.CreateService)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", middleware.RequireAdmin(), h.ListUsers)
		api.GET("/users/:id", middleware.RequireIdentity(), h.GetUser)

		// Admin schedules
		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			admin.GET("/schedules", h.ListSchedules)
			admin.POST("/schedules/:id/unlock", h.UnlockSchedule)
			admin.PATCH("/schedules/:id/district", h.SetScheduleDistrict)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
