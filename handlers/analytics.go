package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/pkg/middleware"
)

// GetAnalytics returns the dashboard analytics snapshot, or one slice of it
// when ?metric= is given.
func (a *API) GetAnalytics(c *gin.Context) {
	sub := middleware.Subject(c)
	switch c.Query("metric") {
	case "stats":
		c.JSON(http.StatusOK, a.analytics.Overview(sub))
	case "monthly":
		c.JSON(http.StatusOK, a.analytics.Monthly())
	case "types":
		c.JSON(http.StatusOK, gin.H{"types": a.analytics.Types()})
	default:
		c.JSON(http.StatusOK, a.analytics.Overview(sub))
	}
}

// AnalyticsReport builds a custom date-range report.
func (a *API) AnalyticsReport(c *gin.Context) {
	var req struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.From == "" || req.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "From and to dates are required"})
		return
	}
	c.JSON(http.StatusOK, a.analytics.Period(middleware.Subject(c), req.From, req.To))
}
