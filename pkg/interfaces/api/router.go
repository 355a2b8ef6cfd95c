package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the gin engine with middleware and routes
func NewRouter(h *Handler, log *logrus.Logger) *gin.Engine {
	router := gin.New()

	router.Use(RequestLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/health", h.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/forecast", h.GetForecast)
		v1.GET("/supply-plan", h.GetSupplyPlan)
		v1.GET("/supply-plan/export", h.ExportSupplyPlan)
		v1.GET("/allocation", h.GetAllocation)
		v1.POST("/data/regenerate", h.RegenerateData)

		v1.GET("/commodities", h.ListCommodities)
		v1.GET("/commodities/:name", h.GetCommodity)
		v1.GET("/news", h.GetNews)
	}

	return router
}

// RequestLogger logs each request through logrus
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"status":     status,
			"latency_ms": float64(time.Since(start).Microseconds()) / 1000.0,
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("error", c.Errors.String())
		}

		switch {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
