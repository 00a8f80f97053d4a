package middleware

import (
	"strings"

	"perks/internal/delivery/api/response"
	deliverycontext "perks/internal/delivery/context"
	"perks/internal/domain/entity"
	"perks/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// accessTokenQueryParam carries the token for WebSocket upgrades, where
	// browsers cannot set the Authorization header.
	accessTokenQueryParam = "access_token"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller's session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := extractToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization token is missing or malformed")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		SetSession(c, entity.Session{
			UserID: claims.UserID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		})

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := GetSession(c)
			if !ok {
				return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
			}

			if !session.Roles.Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", false
		}

		return tokenString, true
	}

	if tokenString := c.QueryParam(accessTokenQueryParam); tokenString != "" {
		return tokenString, true
	}

	return "", false
}

// SetSession stores the authenticated session on the echo context.
func SetSession(c echo.Context, session entity.Session) {
	deliverycontext.SetSession(c, session)
}

// GetSession returns the authenticated session set by Authenticate.
func GetSession(c echo.Context) (entity.Session, bool) {
	return deliverycontext.GetSession(c)
}
