package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"wascrap/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[http][handler] %s %s failed code=%s err=%v", c.Request.Method, c.FullPath(), appErr.Code, appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// validationError exposes the detail a use case attached to a sentinel,
// e.g. "invalid booking: pincode must be 6 digits" becomes "Pincode must be 6 digits".
func validationError(code string, err, sentinel error) *pkg.AppError {
	msg := err.Error()
	if detail, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok && detail != "" {
		msg = strings.ToUpper(detail[:1]) + detail[1:]
	}
	return pkg.NewDomainError(code, msg, err, http.StatusBadRequest)
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
