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

type OTPHandler struct {
	usecase usecase.IOTPUseCase
}

func NewOTPHandler(uc usecase.IOTPUseCase) *OTPHandler {
	return &OTPHandler{usecase: uc}
}

// SendOTPEmail godoc
// @Summary      E-mail a six digit sign-up code
// @Tags         functions
// @Accept       json
// @Produce      json
// @Param        body  body  request.SendOTPRequest  true  "E-mail and portal type"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /functions/send-otp-email [post]
func (h *OTPHandler) SendOTPEmail(c *gin.Context) {
	var payload request.SendOTPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	if err := h.usecase.SendOTP(c.Request.Context(), payload.Email, payload.ResolvePurpose()); err != nil {
		respondError(c, mapOTPError(err))
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: "OTP sent successfully"})
}

// VerifyOTP godoc
// @Summary      Verify a sign-up code and create the account
// @Tags         functions
// @Accept       json
// @Produce      json
// @Param        body  body  request.VerifyOTPRequest  true  "Code and new credentials"
// @Success      200  {object}  response.VerifyOTPResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      429  {object}  pkg.HTTPError
// @Router       /functions/verify-otp [post]
func (h *OTPHandler) VerifyOTP(c *gin.Context) {
	var payload request.VerifyOTPRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	acc, err := h.usecase.VerifyOTP(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapOTPError(err))
		return
	}
	c.JSON(http.StatusOK, response.VerifyOTPResponse{Success: true, Message: "Account created successfully", UserID: acc.ID})
}

func mapOTPError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmailRequired):
		return pkg.NewDomainErrorSimple("EMAIL_REQUIRED", "Email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRecipient):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Please enter a valid email address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOTPFieldsRequired):
		return pkg.NewDomainErrorSimple("FIELDS_REQUIRED", "Email, OTP, username, and password are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOTPFormat):
		return pkg.NewDomainErrorSimple("INVALID_OTP_FORMAT", "Invalid OTP format", http.StatusBadRequest)
	case isAny(err, usecase.ErrOTPExpired, usecase.ErrOTPMismatch):
		return pkg.NewDomainErrorSimple("INVALID_OTP", "Invalid or expired OTP. Please request a new code.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOTPTooManyAttempts):
		return pkg.NewDomainErrorSimple("TOO_MANY_ATTEMPTS", "Too many attempts. Please request a new code.", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrEmailDeliveryFailed):
		return pkg.NewDomainError("EMAIL_DELIVERY_FAILED", "Failed to send email", err, http.StatusBadGateway)
	default:
		return mapAccountError(err)
	}
}
