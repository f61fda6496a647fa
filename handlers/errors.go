package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/internal/store"
	"github.com/settleview/settleview-api/pkg/logger"
)

// respondError maps service errors onto the uniform HTTP taxonomy. what names
// the resource for 404 bodies ("Document not found").
func respondError(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case errors.Is(err, store.ErrValidation), errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": errorMessage(err)})
	default:
		logger.Errorf("%s request failed: %v", what, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// errorMessage strips the sentinel prefix so clients see "name is required"
// rather than "validation failed: name is required".
func errorMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{store.ErrValidation, store.ErrConflict} {
		prefix := sentinel.Error() + ": "
		if strings.HasPrefix(msg, prefix) {
			rest := strings.TrimPrefix(msg, prefix)
			if rest == "" {
				break
			}
			return strings.ToUpper(rest[:1]) + rest[1:]
		}
	}
	return msg
}

// requireQueryID enforces the ?id= convention shared by the flat endpoints.
func requireQueryID(c *gin.Context, what string) (string, bool) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": what + " ID is required"})
		return "", false
	}
	return id, true
}
