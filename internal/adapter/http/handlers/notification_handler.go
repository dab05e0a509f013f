package handlers

import (
	"errors"
	"net/http"

	request "wascrap/internal/adapter/http/dto/request"
	response "wascrap/internal/adapter/http/dto/response"
	"wascrap/internal/usecase"
	"wascrap/pkg"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// SendNotificationEmail godoc
// @Summary      Send an order or buyer-review e-mail (staff)
// @Tags         functions
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  request.SendNotificationRequest  true  "Notification"
// @Success      200  {object}  response.NotificationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /functions/send-notification-email [post]
func (h *NotificationHandler) SendNotificationEmail(c *gin.Context) {
	var payload request.SendNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	n, err := h.usecase.Send(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecipient):
		return pkg.NewDomainErrorSimple("INVALID_RECIPIENT", "A valid recipient email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownNotificationType):
		return pkg.NewDomainErrorSimple("UNKNOWN_NOTIFICATION_TYPE", "Unknown notification type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCancellationReasonRequired):
		return pkg.NewDomainErrorSimple("CANCELLATION_REASON_REQUIRED", "Please provide a reason for cancellation", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailDeliveryFailed):
		return pkg.NewDomainError("EMAIL_DELIVERY_FAILED", "Failed to send email", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
