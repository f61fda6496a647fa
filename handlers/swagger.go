package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>settleview-api - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the dashboard surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "settleview-api", "version": "v0.1.0" },
  "paths": {
    "/auth/login": {
      "post": { "summary": "Password login", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "tokens returned" }, "401": { "description": "invalid credentials" } } }
    },
    "/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/auth/logout": {
      "post": { "summary": "Logout and invalidate refresh token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "logged out" } } }
    },
    "/api/documents": {
      "get": { "summary": "List documents", "responses": { "200": { "description": "documents" } } },
      "post": { "summary": "Upload a document (JSON metadata or multipart)", "responses": { "201": { "description": "created" } } },
      "put": { "summary": "Update document status (?id=)", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete a document (?id=)", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/appointments": {
      "get": { "summary": "List appointments", "responses": { "200": { "description": "appointments" } } },
      "post": { "summary": "Create an appointment (status always pending)", "responses": { "201": { "description": "created" } } },
      "put": { "summary": "Update an appointment (?id=)", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete an appointment (?id=)", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/billing": {
      "get": { "summary": "Payment methods and invoices (?type=payment-methods|invoices)", "responses": { "200": { "description": "billing data" } } },
      "post": { "summary": "Add a payment method", "responses": { "201": { "description": "created" } } },
      "put": { "summary": "Update a payment method (?id=)", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete a non-default payment method (?id=)", "responses": { "200": { "description": "deleted" }, "400": { "description": "default method" } } }
    },
    "/api/messages": {
      "get": { "summary": "Snapshot, or SSE stream with Accept: text/event-stream", "responses": { "200": { "description": "snapshot or stream" } } },
      "post": { "summary": "Send a message", "responses": { "201": { "description": "created" } } },
      "put": { "summary": "Mark a conversation read (?id=)", "responses": { "200": { "description": "updated" } } }
    },
    "/api/cases": {
      "get": { "summary": "List cases", "responses": { "200": { "description": "cases" } } },
      "post": { "summary": "Open a case", "responses": { "201": { "description": "created" } } }
    },
    "/api/cases/{id}": {
      "get": { "summary": "Get a case", "responses": { "200": { "description": "case" } } },
      "put": { "summary": "Update a case", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete a case", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/notifications": {
      "get": { "summary": "List notifications", "responses": { "200": { "description": "notifications" } } }
    },
    "/api/notifications/{id}": {
      "put": { "summary": "Mark a notification read", "responses": { "200": { "description": "updated" } } }
    },
    "/api/notifications/events": {
      "get": { "summary": "SSE stream of new notifications", "responses": { "200": { "description": "stream" } } }
    },
    "/api/analytics": {
      "get": { "summary": "Analytics snapshot (?metric=stats|monthly|types)", "responses": { "200": { "description": "analytics" } } },
      "post": { "summary": "Custom date-range report", "responses": { "200": { "description": "report" } } }
    },
    "/api/profile": {
      "get": { "summary": "Get the caller's profile", "responses": { "200": { "description": "profile" }, "404": { "description": "no profile" } } },
      "put": { "summary": "Partial profile update (id, role and stats are server-owned)", "responses": { "200": { "description": "updated" } } }
    },
    "/api/settings": {
      "get": { "summary": "Get the caller's preferences (defaults until saved)", "responses": { "200": { "description": "settings" } } },
      "put": { "summary": "Partial preference update", "responses": { "200": { "description": "updated" }, "400": { "description": "invalid enum value" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
