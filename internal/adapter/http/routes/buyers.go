package routes

import (
	"wascrap/internal/adapter/http/handlers"
	"wascrap/internal/adapter/http/middleware"
	"wascrap/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathBuyers           = "/buyers"
	PathPartnerInquiries = "/partner-inquiries"
)

func addBuyerRoutes(rg *gin.RouterGroup, buyerHandler *handlers.ScrapBuyerHandler, tokens middleware.TokenParser) {
	buyers := rg.Group(PathBuyers, middleware.RequireAuth(tokens))
	{
		buyers.POST("", buyerHandler.RegisterBuyer)
		buyers.GET("/me", buyerHandler.GetMyBuyerProfile)

		staff := buyers.Group("", middleware.RequireRole(entities.RoleAdmin))
		staff.GET("", buyerHandler.ListBuyers)
		staff.GET("/:id", buyerHandler.GetBuyer)
		staff.PATCH("/:id/approve", buyerHandler.ApproveBuyer)
		staff.PATCH("/:id/reject", buyerHandler.RejectBuyer)
	}
}

func addPartnerRoutes(rg *gin.RouterGroup, inquiryHandler *handlers.PartnerInquiryHandler, tokens middleware.TokenParser) {
	rg.GET(PathPartnerInquiries,
		middleware.RequireAuth(tokens),
		middleware.RequireRole(entities.RoleAdmin),
		inquiryHandler.ListPartnerInquiries,
	)
}
