package handler

import (
	"Source_Health_Sync/internal/health-sync/adapter"
	"Source_Health_Sync/internal/health-sync/api/dto/response"
	apperrors "Source_Health_Sync/internal/health-sync/errors"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type HealthHandler interface {
	GetSources() gin.HandlerFunc
	GetOverview() gin.HandlerFunc
	RefreshAll() gin.HandlerFunc
	RefreshSource() gin.HandlerFunc
	TriggerSourceTest() gin.HandlerFunc
	PauseSource() gin.HandlerFunc
	ResumeSource() gin.HandlerFunc
	GetCacheInfo() gin.HandlerFunc
	ClearCache() gin.HandlerFunc
	ExportHealthReport() gin.HandlerFunc
}

type healthHandler struct {
	logger  *zap.Logger
	monitor adapter.HealthMonitorAdapter
}

func (h *healthHandler) GetSources() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.monitor.Sources())
	}
}

func (h *healthHandler) GetOverview() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.monitor.Overview())
	}
}

// writeIntentError translates the sync-layer error taxonomy onto HTTP. A
// throttled refresh is not an internal error: the cooldown is surfaced so the
// UI can show it.
func (h *healthHandler) writeIntentError(c *gin.Context, err error) {
	var throttled *apperrors.ThrottledError
	switch {
	case errors.As(err, &throttled):
		c.JSON(http.StatusTooManyRequests, response.ThrottledResponse{
			Message:      throttled.Error(),
			RetryAfterMs: throttled.RetryAfter.Milliseconds(),
		})
	case errors.Is(err, apperrors.ErrSourceNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Source not found",
		})
	case errors.Is(err, apperrors.ErrMonitoringPaused):
		c.JSON(http.StatusConflict, response.Response{
			Message: "Monitoring is paused for this source",
		})
	default:
		h.loggingError(c, err, "health sync intent failed", zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal Server Error",
		})
	}
}

func (h *healthHandler) RefreshAll() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.monitor.RefreshHealth(c); err != nil {
			err = fmt.Errorf("HealthHandler.RefreshAll: %w", err)
			h.writeIntentError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Refresh completed",
		})
	}
}

func (h *healthHandler) RefreshSource() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := h.monitor.RefreshSource(c, id); err != nil {
			err = fmt.Errorf("HealthHandler.RefreshSource: %w", err)
			h.writeIntentError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Source refreshed",
		})
	}
}

func (h *healthHandler) TriggerSourceTest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result, err := h.monitor.TriggerSourceTest(c, id)
		if err != nil {
			err = fmt.Errorf("HealthHandler.TriggerSourceTest: %w", err)
			h.writeIntentError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *healthHandler) PauseSource() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := h.monitor.PauseMonitoring(c, id); err != nil {
			err = fmt.Errorf("HealthHandler.PauseSource: %w", err)
			h.writeIntentError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Monitoring paused",
		})
	}
}

func (h *healthHandler) ResumeSource() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := h.monitor.ResumeMonitoring(c, id); err != nil {
			err = fmt.Errorf("HealthHandler.ResumeSource: %w", err)
			h.writeIntentError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Monitoring resumed",
		})
	}
}

func (h *healthHandler) GetCacheInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.monitor.CacheInfo(c))
	}
}

func (h *healthHandler) ClearCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.monitor.ClearCache(c)
		c.JSON(http.StatusOK, response.Response{
			Message: "Cache cleared",
		})
	}
}

func (h *healthHandler) ExportHealthReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		views := h.monitor.Sources()
		file, err := h.generateExcelFile(views)
		if err != nil {
			err = fmt.Errorf("HealthHandler.ExportHealthReport: %w", err)
			h.loggingError(c, err, "failed to export health report", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("source-health-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("HealthHandler.ExportHealthReport: %w", err)
			h.loggingError(c, err, "failed to export health report", zap.ErrorLevel)
			return
		}
		c.Status(http.StatusOK)
	}
}

func (h *healthHandler) generateExcelFile(views []adapter.SourceView) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Source Health"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"source_id", "name", "category", "status", "uptime", "response_time_ms", "error_rate", "credibility", "health_trend", "last_update", "staleness"}
	if err = f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}
	for i, view := range views {
		rowData := []interface{}{
			view.SourceID,
			view.Name,
			view.Category,
			view.Status,
			view.Uptime,
			view.ResponseTimeMs,
			view.ErrorRate,
			view.Credibility,
			view.HealthTrend,
			view.LastUpdate.Format("2006-01-02 15:04:05"),
			view.StalenessLabel,
		}
		startCell := fmt.Sprintf("A%d", i+2)
		if err = f.SetSheetRow(sheetName, startCell, &rowData); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func (h *healthHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	h.logger.Log(logLevel, errDescription, data...)
}

func NewHealthHandler(logger *zap.Logger, monitor adapter.HealthMonitorAdapter) HealthHandler {
	return &healthHandler{
		logger:  logger,
		monitor: monitor,
	}
}
