package handlers

import (
	"errors"
	"fmt"
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

var (
	errSellerSignInRequired = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Sign in to read or change a scrap seller profile", http.StatusUnauthorized)
	errSellerNotOwner       = pkg.NewDomainErrorSimple("FORBIDDEN", "You can only manage your own scrap seller profile", http.StatusForbidden)
)

type ScrapSellerHandler struct {
	usecase usecase.IScrapSellerUseCase
}

func NewScrapSellerHandler(uc usecase.IScrapSellerUseCase) *ScrapSellerHandler {
	return &ScrapSellerHandler{usecase: uc}
}

// FirebaseAuth godoc
// @Summary      Create, update or fetch a federated seller profile
// @Tags         functions
// @Accept       json
// @Produce      json
// @Param        body  body  request.FirebaseAuthRequest  true  "action, userData, uid"
// @Success      200  {object}  response.ScrapSellerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /functions/firebase-auth [post]
func (h *ScrapSellerHandler) FirebaseAuth(c *gin.Context) {
	var payload request.FirebaseAuthRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	action, in, uid := payload.ToInput()
	if appErr := authorizeSeller(c, action, in, uid); appErr != nil {
		respondError(c, appErr)
		return
	}
	seller, err := h.usecase.Handle(c.Request.Context(), action, in, uid)
	if err != nil {
		respondError(c, mapSellerError(err))
		return
	}

	resp := response.ScrapSellerResponse{Success: true, Data: seller}
	if action != usecase.SellerActionGet {
		resp.Message = fmt.Sprintf("Scrap seller %sd successfully", action)
	}
	c.JSON(http.StatusOK, resp)
}

// authorizeSeller binds the profile uid to the token subject. Anonymous callers
// may only create a profile; staff may act on any uid.
func authorizeSeller(c *gin.Context, action usecase.SellerAction, in usecase.SellerInput, uid string) *pkg.AppError {
	var target string
	switch action {
	case usecase.SellerActionCreate:
		target = in.UID
	case usecase.SellerActionUpdate:
		target = in.UID
		if strings.TrimSpace(target) == "" {
			target = uid
		}
	case usecase.SellerActionGet:
		target = uid
	default:
		return nil
	}

	caller := middleware.CurrentUserID(c)
	if caller == "" {
		if action == usecase.SellerActionCreate {
			return nil
		}
		return errSellerSignInRequired
	}
	if middleware.CurrentUserRole(c) == entities.RoleAdmin || caller == strings.TrimSpace(target) {
		return nil
	}
	return errSellerNotOwner
}

func mapSellerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAction):
		return pkg.NewDomainErrorSimple("INVALID_ACTION", "Invalid action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSellerInput):
		return validationError("INVALID_SELLER", err, usecase.ErrInvalidSellerInput)
	case errors.Is(err, usecase.ErrInvalidPanCard):
		return pkg.NewDomainErrorSimple("INVALID_PAN_CARD", "Please enter a valid PAN Card number (e.g., ABCDE1234F)", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSellerAlreadyExists):
		return pkg.NewDomainErrorSimple("SELLER_ALREADY_EXISTS", "Scrap seller already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrSellerNotFound):
		return pkg.NewDomainErrorSimple("SELLER_NOT_FOUND", "Scrap seller not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
