package routes

import (
	"Source_Health_Sync/internal/health-sync/api/handler"
	"Source_Health_Sync/internal/health-sync/api/ws"

	"github.com/gin-gonic/gin"
)

func AddHealthRoutes(r *gin.Engine, h handler.HealthHandler, hub *ws.Hub) {
	healthRoutes := r.Group("/health-sync")
	healthRoutes.GET("/sources", h.GetSources())
	healthRoutes.GET("/overview", h.GetOverview())
	healthRoutes.POST("/refresh", h.RefreshAll())
	healthRoutes.POST("/sources/:id/refresh", h.RefreshSource())
	healthRoutes.POST("/sources/:id/test", h.TriggerSourceTest())
	healthRoutes.POST("/sources/:id/pause", h.PauseSource())
	healthRoutes.POST("/sources/:id/resume", h.ResumeSource())
	healthRoutes.GET("/cache", h.GetCacheInfo())
	healthRoutes.DELETE("/cache", h.ClearCache())
	healthRoutes.GET("/export", h.ExportHealthReport())
	healthRoutes.GET("/ws", hub.Handle())
}
