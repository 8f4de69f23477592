package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/storecore/commerce-api/internal/core/domain"
	"github.com/storecore/commerce-api/internal/core/ports"
)

// identityKey is the echo context key under which Authenticate stores the
// resolved *domain.User.
const identityKey = "identity"

// Authenticate resolves the caller's identity from the bearer token and
// injects it into the request context. The user is re-fetched from the
// repository on every request, so role changes and deletions after token
// issuance take effect immediately.
//
// Every failure mode (missing header, malformed/expired/forged token,
// identity no longer in the store) is reported identically as a 401.
func Authenticate(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.SubjectID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity stored by Authenticate, if any.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(identityKey).(*domain.User)
	return user, ok
}

// SetCurrentUser injects an identity directly. Intended for tests.
func SetCurrentUser(c echo.Context, user *domain.User) {
	c.Set(identityKey, user)
}
