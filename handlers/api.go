package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/internal/analytics"
	"github.com/settleview/settleview-api/internal/appointments"
	"github.com/settleview/settleview-api/internal/billing"
	"github.com/settleview/settleview-api/internal/cases"
	"github.com/settleview/settleview-api/internal/config"
	"github.com/settleview/settleview-api/internal/documents"
	"github.com/settleview/settleview-api/internal/messaging"
	"github.com/settleview/settleview-api/internal/notifications"
	"github.com/settleview/settleview-api/internal/profile"
	"github.com/settleview/settleview-api/internal/settings"
)

// API bundles the domain services behind the dashboard endpoints.
type API struct {
	cfg           *config.Config
	documents     *documents.Service
	appointments  *appointments.Service
	billing       *billing.Service
	messaging     *messaging.Service
	cases         *cases.Service
	notifications *notifications.Service
	analytics     *analytics.Service
	profile       *profile.Service
	settings      *settings.Service
}

func NewAPI(
	cfg *config.Config,
	docs *documents.Service,
	appts *appointments.Service,
	bills *billing.Service,
	msgs *messaging.Service,
	cs *cases.Service,
	ntfs *notifications.Service,
	an *analytics.Service,
	prof *profile.Service,
	sett *settings.Service,
) *API {
	return &API{
		cfg:           cfg,
		documents:     docs,
		appointments:  appts,
		billing:       bills,
		messaging:     msgs,
		cases:         cs,
		notifications: ntfs,
		analytics:     an,
		profile:       prof,
		settings:      sett,
	}
}

// Register wires the dashboard routes onto an authenticated router group.
func (a *API) Register(rg *gin.RouterGroup) {
	a.RegisterDocumentRoutes(rg)

	rg.GET("/appointments", a.ListAppointments)
	rg.POST("/appointments", a.CreateAppointment)
	rg.PUT("/appointments", a.UpdateAppointment)
	rg.DELETE("/appointments", a.DeleteAppointment)

	rg.GET("/billing", a.GetBilling)
	rg.POST("/billing", a.AddPaymentMethod)
	rg.PUT("/billing", a.UpdatePaymentMethod)
	rg.DELETE("/billing", a.DeletePaymentMethod)

	rg.GET("/messages", a.GetMessages)
	rg.POST("/messages", a.SendMessage)
	rg.PUT("/messages", a.MarkConversationRead)

	rg.GET("/cases", a.ListCases)
	rg.POST("/cases", a.CreateCase)
	rg.GET("/cases/:id", a.GetCase)
	rg.PUT("/cases/:id", a.UpdateCase)
	rg.DELETE("/cases/:id", a.DeleteCase)
	rg.POST("/cases/:id/notes", a.AddCaseNote)

	rg.GET("/notifications", a.ListNotifications)
	rg.PUT("/notifications/:id", a.MarkNotificationRead)
	rg.GET("/notifications/events", a.NotificationEvents)

	rg.GET("/analytics", a.GetAnalytics)
	rg.POST("/analytics", a.AnalyticsReport)

	rg.GET("/profile", a.GetProfile)
	rg.PUT("/profile", a.UpdateProfile)

	rg.GET("/settings", a.GetSettings)
	rg.PUT("/settings", a.UpdateSettings)
}

// RegisterDocumentRoutes wires only the documents endpoints. The standalone
// documents service uses this without the rest of the dashboard.
func (a *API) RegisterDocumentRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents", a.ListDocuments)
	rg.POST("/documents", a.UploadDocument)
	rg.PUT("/documents", a.UpdateDocumentStatus)
	rg.DELETE("/documents", a.DeleteDocument)
}
