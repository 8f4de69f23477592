package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storecore/commerce-api/internal/api/handler"
	"github.com/storecore/commerce-api/internal/api/middleware"
	"github.com/storecore/commerce-api/internal/core/domain"
	"github.com/storecore/commerce-api/internal/core/service"
	"github.com/storecore/commerce-api/internal/infrastructure/config"
	mongodb "github.com/storecore/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storecore/commerce-api/internal/infrastructure/db/redis"
)

// route couples a handler with the access policy enforced by the middleware
// chain. The policy is declared here, at registration time, so the full
// access map of the API is readable in one place.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	policy  middleware.Policy
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb)

	hasher := service.NewBcryptHasher(0)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	userService := service.NewUserService(userRepo, hasher, log)
	authService := service.NewAuthService(userService, userRepo, hasher, tokens, log)
	productService := service.NewProductService(productRepo, productCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	authenticate := middleware.Authenticate(tokens, userRepo)

	routes := []route{
		// Auth
		{http.MethodPost, "/auth/login", authHandler.Login, middleware.Anyone()},
		{http.MethodPost, "/auth/register", authHandler.Register, middleware.Anyone()},
		{http.MethodGet, "/auth/profile", authHandler.Profile, middleware.Authenticated()},

		// Users
		{http.MethodPost, "/users", userHandler.Create, middleware.Anyone()},
		{http.MethodGet, "/users", userHandler.List, middleware.RequireRoles(domain.RoleAdmin, domain.RoleModerator)},
		{http.MethodGet, "/users/me", userHandler.Me, middleware.Authenticated()},
		{http.MethodGet, "/users/:id", userHandler.Get, middleware.Authenticated()},
		{http.MethodPatch, "/users/:id", userHandler.Update, middleware.Authenticated()},
		{http.MethodDelete, "/users/:id", userHandler.Delete, middleware.RequireRoles(domain.RoleAdmin)},

		// Products
		{http.MethodPost, "/products", productHandler.Create, middleware.RequireRoles(domain.RoleAdmin, domain.RoleModerator)},
		{http.MethodGet, "/products", productHandler.List, middleware.Anyone()},
		{http.MethodGet, "/products/:id", productHandler.Get, middleware.Anyone()},
		{http.MethodPatch, "/products/:id", productHandler.Update, middleware.RequireRoles(domain.RoleAdmin, domain.RoleModerator)},
		{http.MethodDelete, "/products/:id", productHandler.Delete, middleware.RequireRoles(domain.RoleAdmin)},

		// Health probes
		{http.MethodGet, "/health", healthHandler.Liveness, middleware.Anyone()},
		{http.MethodGet, "/health/ready", readinessHandler.Readiness, middleware.Anyone()},
	}

	for _, r := range routes {
		if r.policy.Public {
			e.Add(r.method, r.path, r.handler)
			continue
		}
		// Identity resolution always precedes the role gate, so a missing or
		// invalid token is reported as 401 before any 403 can occur.
		e.Add(r.method, r.path, r.handler, authenticate, middleware.RBAC(r.policy.Roles...))
	}

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
