package routes

import (
	"wascrap/internal/adapter/http/handlers"
	"wascrap/internal/adapter/http/middleware"
	"wascrap/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const PathBookings = "/bookings"

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, tokens middleware.TokenParser, rdb *redis.Client) {
	bookings := rg.Group(PathBookings, middleware.RequireAuth(tokens))
	{
		// Customers
		bookings.POST("", middleware.Idempotency(rdb), bookingHandler.CreateBooking)
		bookings.GET("/mine", bookingHandler.ListMyBookings)

		// Staff
		staff := bookings.Group("", middleware.RequireRole(entities.RoleAdmin))
		staff.GET("", bookingHandler.ListBookings)
		staff.GET("/pending", bookingHandler.ListPendingBookings)
		staff.GET("/:id", bookingHandler.GetBooking)
		staff.PATCH("/:id/confirm", bookingHandler.ConfirmBooking)
		staff.PATCH("/:id/start", bookingHandler.StartBooking)
		staff.PATCH("/:id/complete", bookingHandler.CompleteBooking)
		staff.PATCH("/:id/cancel", bookingHandler.CancelBooking)
	}
}
