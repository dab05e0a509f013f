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

type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// SignIn godoc
// @Summary      Sign in with e-mail or username
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  request.SignInRequest  true  "Credentials"
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /auth/signin [post]
func (h *AccountHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	session, err := h.usecase.SignIn(c.Request.Context(), payload.Identifier, payload.Password, payload.ResolvePortal())
	if err != nil {
		respondError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// GetUserEmail godoc
// @Summary      Resolve a username to its e-mail
// @Tags         functions
// @Accept       json
// @Produce      json
// @Param        body  body  request.GetUserEmailRequest  true  "Username"
// @Success      200  {object}  response.UserEmailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /functions/get-user-email [post]
func (h *AccountHandler) GetUserEmail(c *gin.Context) {
	var payload request.GetUserEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	email, err := h.usecase.GetEmailByUsername(c.Request.Context(), payload.Username)
	if err != nil {
		respondError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.UserEmailResponse{Email: email})
}

func mapAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUsernameRequired):
		return pkg.NewDomainErrorSimple("USERNAME_REQUIRED", "Username is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameNotFound):
		return pkg.NewDomainErrorSimple("USERNAME_NOT_FOUND", "Username not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Username is already taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrAccountAlreadyExists):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Email already registered. Please sign in instead.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAccountInput):
		return validationError("INVALID_ACCOUNT", err, usecase.ErrInvalidAccountInput)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid login credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotABuyer):
		return errNotABuyer
	default:
		return internalError(err)
	}
}
