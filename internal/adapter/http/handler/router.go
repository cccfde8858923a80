package handler

import (
	"sim-registry/internal/adapter/http/middleware"
	"sim-registry/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RegistrationSvc ports.RegistrationService
	VerificationSvc ports.VerificationService
	SwapSvc         ports.SwapService
	FraudSvc        ports.FraudService
	AttemptStore    ports.VerifyAttemptStore // nil = attempt limiting disabled
	HealthCheckers  []ports.HealthChecker
	Policy          RegistrationPolicy
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Attempt limit rules
	rules := middleware.DefaultAttemptLimitRules()

	// Helper: return attempt limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.AttemptStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.AttemptLimiter(deps.AttemptStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	bindingHandler := NewBindingHandler(deps.RegistrationSvc, deps.VerificationSvc, deps.SwapSvc, deps.FraudSvc, deps.Policy)
	bindings := v1.Group("/bindings")
	{
		bindings.POST("", rl("register"), bindingHandler.Register)
		bindings.POST("/verify", rl("verify"), bindingHandler.Verify)
		bindings.POST("/swap", rl("swap"), bindingHandler.Swap)
	}

	identityHandler := NewIdentityHandler(deps.RegistrationSvc, deps.FraudSvc, deps.Policy.MaxPerNationalID)
	identities := v1.Group("/identities")
	{
		identities.GET("/:nationalId/registrations", identityHandler.Registrations)
		identities.GET("/:nationalId/fraud-reports", identityHandler.FraudReports)
	}

	return r
}
