package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/internal/cases"
	"github.com/settleview/settleview-api/pkg/middleware"
)

// ListCases returns the caller's cases in creation order.
func (a *API) ListCases(c *gin.Context) {
	c.JSON(http.StatusOK, a.cases.List(middleware.Subject(c)))
}

// GetCase returns one case with its nested documents, appointments, notes and
// timeline.
func (a *API) GetCase(c *gin.Context) {
	cs, err := a.cases.Get(middleware.Subject(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Case")
		return
	}
	c.JSON(http.StatusOK, cs)
}

// CreateCase opens a new case. Nested collections start empty and the
// timeline records the opening event.
func (a *API) CreateCase(c *gin.Context) {
	var in cases.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cs, err := a.cases.Create(middleware.Subject(c), in)
	if err != nil {
		respondError(c, err, "Case")
		return
	}
	c.JSON(http.StatusCreated, cs)
}

// UpdateCase merges a partial update; status changes land on the timeline.
func (a *API) UpdateCase(c *gin.Context) {
	var p cases.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cs, err := a.cases.Update(middleware.Subject(c), c.Param("id"), p)
	if err != nil {
		respondError(c, err, "Case")
		return
	}
	c.JSON(http.StatusOK, cs)
}

// DeleteCase removes a case with all nested data.
func (a *API) DeleteCase(c *gin.Context) {
	if err := a.cases.Delete(middleware.Subject(c), c.Param("id")); err != nil {
		respondError(c, err, "Case")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Case deleted"})
}

// AddCaseNote appends a note to a case.
func (a *API) AddCaseNote(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cs, err := a.cases.AddNote(middleware.Subject(c), c.Param("id"), req.Content, req.Author)
	if err != nil {
		respondError(c, err, "Case")
		return
	}
	c.JSON(http.StatusOK, cs)
}
