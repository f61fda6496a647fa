package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/internal/profile"
	"github.com/settleview/settleview-api/pkg/middleware"
)

// GetProfile returns the caller's profile.
func (a *API) GetProfile(c *gin.Context) {
	p, err := a.profile.Get(middleware.Subject(c))
	if err != nil {
		respondError(c, err, "Profile")
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfile merges a partial profile update. ID, role and the stats
// block are server-owned and ignored if sent.
func (a *API) UpdateProfile(c *gin.Context) {
	var p profile.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := a.profile.Update(middleware.Subject(c), p)
	if err != nil {
		respondError(c, err, "Profile")
		return
	}
	c.JSON(http.StatusOK, updated)
}
