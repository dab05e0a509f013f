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

type PartnerInquiryHandler struct {
	usecase usecase.IPartnerInquiryUseCase
}

func NewPartnerInquiryHandler(uc usecase.IPartnerInquiryUseCase) *PartnerInquiryHandler {
	return &PartnerInquiryHandler{usecase: uc}
}

// SubmitPartnerInquiry godoc
// @Summary      Submit a partnership inquiry
// @Tags         functions
// @Accept       json
// @Produce      json
// @Param        body  body  request.PartnerInquiryRequest  true  "Inquiry"
// @Success      200  {object}  response.PartnerInquiryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /functions/submit-partner-inquiry [post]
func (h *PartnerInquiryHandler) SubmitPartnerInquiry(c *gin.Context) {
	var payload request.PartnerInquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	p, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapPartnerInquiryError(err))
		return
	}
	c.JSON(http.StatusOK, response.PartnerInquiryResponse{
		Success:   true,
		Message:   "Partner inquiry submitted successfully",
		InquiryID: p.ID,
	})
}

// ListPartnerInquiries godoc
// @Summary      List partnership inquiries (staff)
// @Tags         partners
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.PartnerInquiryListItem
// @Router       /partner-inquiries [get]
func (h *PartnerInquiryHandler) ListPartnerInquiries(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, mapPartnerInquiryError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPartnerInquiries(items))
}

func mapPartnerInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPartnerInquiry):
		return validationError("INVALID_PARTNER_INQUIRY", err, usecase.ErrInvalidPartnerInquiry)
	case errors.Is(err, usecase.ErrUnknownPartnerType):
		return pkg.NewDomainErrorSimple("UNKNOWN_PARTNER_TYPE", "Partner type must be investors, transporters, recyclers or ngo", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
