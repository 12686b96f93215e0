package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salonsuite/backend/internal/domain/resource"
	"github.com/salonsuite/backend/internal/infrastructure/auth"
	"github.com/salonsuite/backend/internal/infrastructure/logger"
	"github.com/salonsuite/backend/internal/interfaces/http/dto"
)

// Principal context keys
const (
	PrincipalIDKey    = "principal_id"
	PrincipalEmailKey = "principal_email"
	AuthHeaderKey     = "Authorization"
	BearerPrefix      = "Bearer "
)

// ErrNoPrincipal is returned when no authenticated principal is in context
var ErrNoPrincipal = errors.New("no authenticated principal in context")

// Auth resolves the current principal from a Bearer token and stores it in
// the gin context. The X-User-ID header fallback keeps local development and
// tests usable without a token service.
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if strings.HasPrefix(header, BearerPrefix) {
			claims, err := jwtService.ValidateToken(strings.TrimPrefix(header, BearerPrefix))
			if err != nil {
				abortUnauthorized(c, "Invalid or expired token")
				return
			}
			c.Set(PrincipalIDKey, claims.UserID)
			c.Set(PrincipalEmailKey, claims.Email)
			c.Request = c.Request.WithContext(logger.WithOwnerID(c.Request.Context(), claims.UserID))
			c.Next()
			return
		}

		if userID := c.GetHeader("X-User-ID"); userID != "" {
			if _, err := uuid.Parse(userID); err != nil {
				abortUnauthorized(c, "Invalid user ID")
				return
			}
			c.Set(PrincipalIDKey, userID)
			c.Set(PrincipalEmailKey, c.GetHeader("X-User-Email"))
			c.Request = c.Request.WithContext(logger.WithOwnerID(c.Request.Context(), userID))
			c.Next()
			return
		}

		abortUnauthorized(c, "Authentication required")
	}
}

// CurrentPrincipal extracts the authenticated principal from the gin context
func CurrentPrincipal(c *gin.Context) (resource.Principal, error) {
	idStr := c.GetString(PrincipalIDKey)
	if idStr == "" {
		return resource.Principal{}, ErrNoPrincipal
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return resource.Principal{}, ErrNoPrincipal
	}
	return resource.Principal{
		ID:    id,
		Email: c.GetString(PrincipalEmailKey),
	}, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message, c.GetString("request_id")))
}
