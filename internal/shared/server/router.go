package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masterchiefff/jobfit-server/internal/cvs"
	"github.com/masterchiefff/jobfit-server/internal/jobs"
	"github.com/masterchiefff/jobfit-server/internal/shared/config"
	"github.com/masterchiefff/jobfit-server/internal/shared/server/middleware"
	"github.com/masterchiefff/jobfit-server/internal/shared/server/respond"
	"github.com/masterchiefff/jobfit-server/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config      config.Config
	CVHandler   *cvs.Handler
	UserHandler *users.Handler
	JobHandler  *jobs.Handler
	RateLimiter *middleware.RateLimiter
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
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"UPLOAD": {Rate: 0.5, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/upload" {
					return "UPLOAD"
				}
				return ""
			},
			Limiter: deps.RateLimiter,
		}),
		middleware.Auth(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.CVHandler != nil {
		deps.CVHandler.RegisterRoutes(api)
	}
	if deps.JobHandler != nil {
		deps.JobHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3002"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
