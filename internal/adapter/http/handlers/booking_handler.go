package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	request "wascrap/internal/adapter/http/dto/request"
	response "wascrap/internal/adapter/http/dto/response"
	"wascrap/internal/adapter/http/middleware"
	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase"
	"wascrap/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStatusFilter = pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown booking status", http.StatusBadRequest)

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking godoc
// @Summary      Submit a pickup booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        Idempotency-Key  header  string                        false  "Replay protection key"
// @Param        booking          body    request.CreateBookingRequest  true   "Booking form"
// @Success      201  {object}  response.BookingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	in := payload.ToInput()
	if strings.TrimSpace(in.Email) == "" {
		in.Email = middleware.CurrentUserEmail(c)
	}

	b, err := h.usecase.Create(c.Request.Context(), middleware.CurrentUserID(c), in)
	if err != nil {
		respondError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBooking(b))
}

// ListBookings godoc
// @Summary      List bookings (staff)
// @Tags         bookings
// @Produce      json
// @Security     Bearer
// @Param        status  query  string  false  "pending|confirmed|in_progress|completed|cancelled"
// @Success      200  {array}   response.BookingResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var filter entities.BookingFilter
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, ok := entities.ParseBookingStatus(raw)
		if !ok {
			respondError(c, errInvalidStatusFilter)
			return
		}
		filter.Status = status
	}

	bookings, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// ListPendingBookings godoc
// @Summary      Pending bookings awaiting confirmation (staff)
// @Tags         bookings
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.BookingResponse
// @Router       /bookings/pending [get]
func (h *BookingHandler) ListPendingBookings(c *gin.Context) {
	bookings, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// ListMyBookings returns the caller's own bookings.
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.BookingResponse
// @Router       /bookings/mine [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	bookings, err := h.usecase.ListByUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// GetBooking godoc
// @Summary      Get a booking (staff)
// @Tags         bookings
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {object}  response.BookingResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.usecase.Confirm)
}

func (h *BookingHandler) StartBooking(c *gin.Context) {
	h.transition(c, h.usecase.StartProgress)
}

// CompleteBooking godoc
// @Summary      Mark a booking completed (staff)
// @Tags         bookings
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Booking ID"
// @Success      200  {object}  response.BookingResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /bookings/{id}/complete [patch]
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	staffID := middleware.CurrentUserID(c)
	h.transition(c, func(ctx context.Context, id string) (entities.Booking, error) {
		return h.usecase.Complete(ctx, id, staffID)
	})
}

// CancelBooking godoc
// @Summary      Cancel a booking (staff)
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id      path  string                        true  "Booking ID"
// @Param        reason  body  request.CancelBookingRequest  true  "Cancellation reason"
// @Success      200  {object}  response.BookingResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /bookings/{id}/cancel [patch]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var payload request.CancelBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, errInvalidPayload)
		return
	}
	h.transition(c, func(ctx context.Context, id string) (entities.Booking, error) {
		return h.usecase.Cancel(ctx, id, payload.Reason)
	})
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, id string) (entities.Booking, error)) {
	b, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingInput):
		return validationError("INVALID_BOOKING", err, usecase.ErrInvalidBookingInput)
	case errors.Is(err, usecase.ErrInvalidBookingID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid booking id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCancellationReasonRequired):
		return pkg.NewDomainErrorSimple("CANCELLATION_REASON_REQUIRED", "Please provide a reason for cancellation", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Booking status does not allow this change", http.StatusConflict)
	default:
		return internalError(err)
	}
}
