package routes

import (
	"wascrap/internal/adapter/http/handlers"
	"wascrap/internal/adapter/http/middleware"
	"wascrap/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathFunctions = "/functions"
)

func addAuthRoutes(rg *gin.RouterGroup, accountHandler *handlers.AccountHandler) {
	a := rg.Group(PathAuth)
	{
		a.POST("/signin", accountHandler.SignIn)
	}
}

// The /functions group keeps the paths and payloads the web client already
// calls. send-notification-email is restricted to staff and firebase-auth
// binds the profile uid to the caller's token.
func addFunctionRoutes(rg *gin.RouterGroup, h Handlers, tokens middleware.TokenParser) {
	fn := rg.Group(PathFunctions)
	{
		fn.POST("/send-otp-email", h.OTP.SendOTPEmail)
		fn.POST("/verify-otp", h.OTP.VerifyOTP)
		fn.POST("/get-user-email", h.Account.GetUserEmail)
		fn.POST("/submit-partner-inquiry", h.PartnerInquiry.SubmitPartnerInquiry)
		fn.POST("/firebase-auth", middleware.OptionalAuth(tokens), h.Seller.FirebaseAuth)
		fn.POST("/send-notification-email",
			middleware.RequireAuth(tokens),
			middleware.RequireRole(entities.RoleAdmin),
			h.Notification.SendNotificationEmail,
		)
	}
}
