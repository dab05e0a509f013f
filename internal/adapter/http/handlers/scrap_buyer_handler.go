package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "wascrap/internal/adapter/http/dto/request"
	response "wascrap/internal/adapter/http/dto/response"
	"wascrap/internal/adapter/http/middleware"
	"wascrap/internal/domain/entities"
	"wascrap/internal/usecase"
	"wascrap/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidVerifiedFilter = pkg.NewDomainErrorSimple("INVALID_REQUEST", "verified must be true or false", http.StatusBadRequest)

type ScrapBuyerHandler struct {
	usecase usecase.IScrapBuyerUseCase
}

func NewScrapBuyerHandler(uc usecase.IScrapBuyerUseCase) *ScrapBuyerHandler {
	return &ScrapBuyerHandler{usecase: uc}
}

// RegisterBuyer godoc
// @Summary      Apply as a scrap buyer
// @Tags         buyers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        buyer  body  request.RegisterBuyerRequest  true  "Buyer profile"
// @Success      201  {object}  response.BuyerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /buyers [post]
func (h *ScrapBuyerHandler) RegisterBuyer(c *gin.Context) {
	var payload request.RegisterBuyerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	b, err := h.usecase.Register(c.Request.Context(), middleware.CurrentUserID(c), middleware.CurrentUserEmail(c), payload.ToInput())
	if err != nil {
		respondError(c, mapBuyerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBuyer(b))
}

// GetMyBuyerProfile godoc
// @Summary      Buyer portal gate: the caller's scrap buyer profile
// @Tags         buyers
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.BuyerResponse
// @Failure      403  {object}  pkg.HTTPError
// @Router       /buyers/me [get]
func (h *ScrapBuyerHandler) GetMyBuyerProfile(c *gin.Context) {
	b, err := h.usecase.EnsureBuyer(c.Request.Context(), middleware.CurrentUserEmail(c))
	if err != nil {
		respondError(c, mapBuyerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBuyer(b))
}

// ListBuyers godoc
// @Summary      List scrap buyer applications (staff)
// @Tags         buyers
// @Produce      json
// @Security     Bearer
// @Param        verified  query  bool  false  "Filter by verification state"
// @Success      200  {array}  response.BuyerResponse
// @Router       /buyers [get]
func (h *ScrapBuyerHandler) ListBuyers(c *gin.Context) {
	var verified *bool
	if raw := strings.TrimSpace(c.Query("verified")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, errInvalidVerifiedFilter)
			return
		}
		verified = &v
	}

	buyers, err := h.usecase.List(c.Request.Context(), verified)
	if err != nil {
		respondError(c, mapBuyerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBuyers(buyers))
}

func (h *ScrapBuyerHandler) GetBuyer(c *gin.Context) {
	h.review(c, h.usecase.GetByID)
}

// ApproveBuyer godoc
// @Summary      Approve a scrap buyer (staff)
// @Tags         buyers
// @Produce      json
// @Security     Bearer
// @Param        id  path  string  true  "Buyer ID"
// @Success      200  {object}  response.BuyerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /buyers/{id}/approve [patch]
func (h *ScrapBuyerHandler) ApproveBuyer(c *gin.Context) {
	h.review(c, h.usecase.Approve)
}

// RejectBuyer godoc
// @Summary      Reject a scrap buyer (staff)
// @Tags         buyers
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id      path  string                      true   "Buyer ID"
// @Param        reason  body  request.RejectBuyerRequest  false  "Rejection reason"
// @Success      200  {object}  response.BuyerResponse
// @Router       /buyers/{id}/reject [patch]
func (h *ScrapBuyerHandler) RejectBuyer(c *gin.Context) {
	var payload request.RejectBuyerRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}
	h.review(c, func(ctx context.Context, id string) (entities.ScrapBuyer, error) {
		return h.usecase.Reject(ctx, id, payload.Reason)
	})
}

func (h *ScrapBuyerHandler) review(c *gin.Context, apply func(ctx context.Context, id string) (entities.ScrapBuyer, error)) {
	b, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapBuyerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBuyer(b))
}

func mapBuyerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBuyerInput):
		return validationError("INVALID_BUYER", err, usecase.ErrInvalidBuyerInput)
	case errors.Is(err, usecase.ErrInvalidPanCard):
		return pkg.NewDomainErrorSimple("INVALID_PAN_CARD", "Please enter a valid PAN Card number (e.g., ABCDE1234F)", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBuyerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid scrap buyer id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBuyerAlreadyRegistered):
		return pkg.NewDomainErrorSimple("BUYER_ALREADY_REGISTERED", "A scrap buyer profile already exists for this account", http.StatusConflict)
	case errors.Is(err, usecase.ErrBuyerNotFound):
		return pkg.NewDomainErrorSimple("BUYER_NOT_FOUND", "Scrap buyer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotABuyer):
		return errNotABuyer
	default:
		return internalError(err)
	}
}

var errNotABuyer = pkg.NewDomainErrorSimple("NOT_A_BUYER", "This account is not registered as a scrap buyer.", http.StatusForbidden)
