package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/internal/settings"
	"github.com/settleview/settleview-api/pkg/middleware"
)

// GetSettings returns the caller's preferences, defaults included.
func (a *API) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, a.settings.Get(middleware.Subject(c)))
}

// UpdateSettings merges a partial preference update and returns the full
// resulting set.
func (a *API) UpdateSettings(c *gin.Context) {
	var p settings.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := a.settings.Update(middleware.Subject(c), p)
	if err != nil {
		respondError(c, err, "Settings")
		return
	}
	c.JSON(http.StatusOK, updated)
}
