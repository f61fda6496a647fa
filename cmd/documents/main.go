package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/handlers"
	"github.com/settleview/settleview-api/internal/documents"
	"github.com/settleview/settleview-api/internal/storage"
	"github.com/settleview/settleview-api/internal/tokens"
	"github.com/settleview/settleview-api/pkg/logger"
	"github.com/settleview/settleview-api/pkg/middleware"
)

// Standalone documents service. Runs the documents API on its own port so
// heavy upload traffic can be scaled separately from the dashboard.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	port := os.Getenv("DOC_SERVICE_PORT")
	if port == "" {
		port = "5010"
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	var blobs documents.BlobStore
	if cfg := storage.LoadConfig(); cfg.Endpoint != "" {
		ms, err := storage.NewMinIOStorage(cfg)
		if err != nil {
			logger.Warnf("object storage unavailable, serving metadata only: %v", err)
		} else {
			blobs = ms
		}
	}
	svc := documents.NewService(blobs, nil)

	verifier := tokens.NewVerifier(os.Getenv("JWT_SECRET"), nil)
	api := handlers.NewAPI(nil, svc, nil, nil, nil, nil, nil, nil, nil, nil)
	api.RegisterDocumentRoutes(r.Group("/api", middleware.AuthMiddleware(verifier)))

	logger.Infof("documents service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logger.Fatalf("documents service failed: %v", err)
	}
}
