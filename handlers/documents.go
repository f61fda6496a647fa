package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/internal/documents"
	"github.com/settleview/settleview-api/pkg/middleware"
)

// ListDocuments returns the caller's documents in upload order.
func (a *API) ListDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, a.documents.List(middleware.Subject(c)))
}

// UploadDocument records document metadata. A multipart request additionally
// streams the file body into blob storage; a JSON request registers metadata
// only.
func (a *API) UploadDocument(c *gin.Context) {
	sub := middleware.Subject(c)
	in := documents.UploadInput{}

	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		defer f.Close()
		in.Name = file.Filename
		in.Type = c.PostForm("type")
		in.Size = c.PostForm("size")
		in.Content = f
		in.ContentLen = file.Size
		in.ContentType = file.Header.Get("Content-Type")
	} else {
		var req struct {
			Name string `json:"name"`
			Type string `json:"type"`
			Size string `json:"size"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		in.Name = req.Name
		in.Type = req.Type
		in.Size = req.Size
	}

	doc, err := a.documents.Upload(c.Request.Context(), sub, in)
	if err != nil {
		respondError(c, err, "Document")
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// UpdateDocumentStatus moves a document through its lifecycle.
func (a *API) UpdateDocumentStatus(c *gin.Context) {
	id, ok := requireQueryID(c, "Document")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := a.documents.UpdateStatus(middleware.Subject(c), id, req.Status)
	if err != nil {
		respondError(c, err, "Document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDocument removes a document record.
func (a *API) DeleteDocument(c *gin.Context) {
	id, ok := requireQueryID(c, "Document")
	if !ok {
		return
	}
	if err := a.documents.Delete(middleware.Subject(c), id); err != nil {
		respondError(c, err, "Document")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
