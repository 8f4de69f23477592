package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Policy is the access rule attached to a route at registration time.
// A Public route bypasses the whole auth chain; a non-public route with an
// empty Roles set admits any authenticated user.
type Policy struct {
	Public bool
	Roles  []string
}

// Anyone is the policy for routes that skip authentication entirely.
func Anyone() Policy { return Policy{Public: true} }

// Authenticated is the policy for routes open to any logged-in user.
func Authenticated() Policy { return Policy{} }

// RequireRoles returns the policy restricting a route to the given roles.
func RequireRoles(roles ...string) Policy { return Policy{Roles: roles} }

// RBAC enforces a route's role restriction. It must run after Authenticate:
// a request that never resolved an identity is rejected as unauthenticated
// (401), never as forbidden (403).
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if len(allowed) > 0 {
				if _, ok := allowed[user.Role]; !ok {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
			}
			return next(c)
		}
	}
}
