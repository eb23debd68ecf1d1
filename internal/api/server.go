// Package api provides HTTP API routes and server setup.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xzzpig/cronlist/internal/api/context"
	"github.com/xzzpig/cronlist/internal/api/handlers"
	"github.com/xzzpig/cronlist/internal/core/config"
	"github.com/xzzpig/cronlist/internal/core/datelist"
	"github.com/xzzpig/cronlist/internal/core/logger"
)

// SetupRouter builds the gin engine serving the API.
func SetupRouter(cfg *config.Config, builder *datelist.Builder) *gin.Engine {
	if cfg.App.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Middleware
	r.Use(context.RequestIDMiddleware())
	r.Use(ginLogger(apiLog))
	r.Use(gin.Recovery())
	r.Use(context.LocaleMiddleware(cfg.App.Locale))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", context.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", context.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	RegisterAPIRoutes(api, RouterDeps{Builder: builder})

	r.NoRoute(handlers.NotFoundHandler)

	return r
}

func apiLog() *zap.Logger {
	return logger.Named("api")
}

// ginLogger resolves its logger per request so reloaded log levels apply
// without rebuilding the router.
func ginLogger(log func() *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		requestID := context.GetRequestID(c)
		l := log()

		if len(c.Errors) > 0 {
			for _, e := range c.Errors.Errors() {
				l.Warn(e, zap.String("request_id", requestID), zap.String("path", path))
			}
			return
		}
		l.Info(path,
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", requestID),
			zap.Duration("latency", latency),
		)
	}
}
