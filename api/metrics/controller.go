// Package metricsapi exposes the Prometheus scrape endpoint.
package metricsapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsController serves the process metrics for scraping.
type MetricsController struct{}

// NewMetricsController creates a new MetricsController.
func NewMetricsController() *MetricsController {
	return &MetricsController{}
}

// RegisterPublic registers the scrape route. Prometheus does not authenticate.
func (mc *MetricsController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterProtected registers nothing, metrics have no protected routes.
func (mc *MetricsController) RegisterProtected(route *gin.RouterGroup) {}
