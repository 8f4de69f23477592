package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storecore/commerce-api/internal/api/middleware"
	"github.com/storecore/commerce-api/internal/core/domain"
)

// currentIdentity extracts the identity injected by the Authenticate
// middleware. Its absence on a protected route means the middleware chain
// was misconfigured; the request is rejected as unauthenticated.
func currentIdentity(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

// parseID parses the :id path parameter as a positive integer.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a number")
	}
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive number")
	}
	return id, nil
}
