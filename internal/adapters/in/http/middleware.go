package http

import (
	"net/http"
	"strings"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/user"
	"deliveryhub/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const currentUserKey = "current_user"

// AuthMiddleware authenticates requests with HS256 bearer tokens. The token's
// subject is the user ID; the account is loaded on every request so revoked
// or deactivated users are cut off immediately, not at token expiry.
type AuthMiddleware struct {
	secret []byte
	users  ports.UserRepository
}

// NewAuthMiddleware creates the middleware with the signing secret and the
// user repository used to resolve token subjects.
func NewAuthMiddleware(secret string, users ports.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret), users: users}
}

// Authenticate validates the bearer token and stores the authenticated user
// in the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
			return m.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token",
			})
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token",
			})
		}

		userID, err := kernel.UUIDFromString(subject)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid token subject",
			})
		}

		account, err := m.users.Get(ctx.Request().Context(), userID)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Unknown user",
			})
		}

		if !account.IsActive() {
			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Account is deactivated",
			})
		}

		ctx.Set(currentUserKey, account)
		return next(ctx)
	}
}

// RequireRole rejects authenticated users whose role is not in the allowed
// set. It must run after Authenticate.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			account := currentUser(ctx)
			if account == nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Authentication required",
				})
			}

			for _, role := range roles {
				if account.Role() == role {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Insufficient permissions",
			})
		}
	}
}

func currentUser(ctx echo.Context) *user.User {
	account, _ := ctx.Get(currentUserKey).(*user.User)
	return account
}
