package middleware

import (
	"net/http"
	"strings"

	"wascrap/internal/domain/entities"
	"wascrap/internal/infrastructure/auth"
	"wascrap/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "auth.user_id"
	ctxUserEmail = "auth.email"
	ctxUserRole  = "auth.role"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed Authorization header", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "You do not have access to this resource", http.StatusForbidden)
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller identity on the gin context.
func RequireAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := parser.Parse(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		SetIdentity(c, claims.Subject, claims.Email, claims.Role)
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through but still rejects a bearer
// token that does not parse.
func OptionalAuth(parser TokenParser) gin.HandlerFunc {
	requireAuth := RequireAuth(parser)
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		requireAuth(c)
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if entities.Role(c.GetString(ctxUserRole)) != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func CurrentUserEmail(c *gin.Context) string {
	return c.GetString(ctxUserEmail)
}

func CurrentUserRole(c *gin.Context) entities.Role {
	return entities.Role(c.GetString(ctxUserRole))
}

func SetIdentity(c *gin.Context, userID, email string, role entities.Role) {
	c.Set(ctxUserID, userID)
	c.Set(ctxUserEmail, email)
	c.Set(ctxUserRole, string(role))
}
