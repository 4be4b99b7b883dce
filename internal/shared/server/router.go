package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"seopulse-backend/internal/audits"
	"seopulse-backend/internal/services/health"
	"seopulse-backend/internal/shared/config"
	"seopulse-backend/internal/shared/metrics"
	"seopulse-backend/internal/shared/server/middleware"
	"seopulse-backend/internal/uploads"
)

const auditCreateGroup = "AUDIT_CREATE"

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config       config.Config
	AuditHandler *audits.Handler
	HealthSvc    *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(rateLimitConfig()),
	)

	healthSvc := deps.HealthSvc
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	registerMeRoutes(api)
	if deps.AuditHandler != nil {
		deps.AuditHandler.RegisterRoutes(api)
	}
	uploads.RegisterRoutes(api)

	return r
}

// rateLimitConfig throttles audit creation harder than read traffic.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			auditCreateGroup: {Rate: 0.5, Burst: 5},
			"DEFAULT":        {Rate: 10, Burst: 30},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && strings.HasPrefix(c.Request.URL.Path, "/api/v1/audits") {
				return auditCreateGroup
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
