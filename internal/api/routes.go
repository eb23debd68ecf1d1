package api

import (
	"github.com/gin-gonic/gin"

	"github.com/xzzpig/cronlist/internal/api/handlers"
	"github.com/xzzpig/cronlist/internal/core/datelist"
)

// RouterDeps contains all dependencies required for setting up API routes.
type RouterDeps struct {
	Builder *datelist.Builder
}

// RegisterAPIRoutes registers all API routes to the given router group.
func RegisterAPIRoutes(router *gin.RouterGroup, deps RouterDeps) {
	datesHandler := handlers.NewDatesHandler(deps.Builder)

	dates := router.Group("/dates")
	{
		dates.GET("", datesHandler.Get)
		dates.POST("", datesHandler.Post)
	}
}
