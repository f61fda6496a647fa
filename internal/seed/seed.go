// Package seed installs the demo account and its fixture data. It exists so
// the dashboard is explorable out of the box; production deployments run
// with seeding disabled.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/settleview/settleview-api/internal/analytics"
	"github.com/settleview/settleview-api/internal/appointments"
	"github.com/settleview/settleview-api/internal/billing"
	"github.com/settleview/settleview-api/internal/cases"
	"github.com/settleview/settleview-api/internal/documents"
	"github.com/settleview/settleview-api/internal/messaging"
	"github.com/settleview/settleview-api/internal/notifications"
	"github.com/settleview/settleview-api/internal/profile"
	"github.com/settleview/settleview-api/internal/users"
)

// Demo account credentials.
const (
	DemoSub      = "1"
	DemoEmail    = "john@example.com"
	DemoName     = "John Doe"
	DemoPassword = "test123"
)

// Services collects everything the fixtures are written into.
type Services struct {
	Users         *users.Service
	Documents     *documents.Service
	Appointments  *appointments.Service
	Billing       *billing.Service
	Messaging     *messaging.Service
	Cases         *cases.Service
	Notifications *notifications.Service
	Analytics     *analytics.Service
	Profile       *profile.Service
}

// Demo registers the demo user and seeds the demo fixtures under it.
func Demo(ctx context.Context, s Services) error {
	if _, err := s.Users.Register(ctx, DemoSub, DemoEmail, DemoName, users.RoleClient, DemoPassword); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	s.Profile.Seed(DemoSub, &profile.Profile{
		FirstName: "John",
		LastName:  "Doe",
		Email:     DemoEmail,
		Phone:     "+61 2 5550 0142",
		Role:      profile.RoleClient,
		Languages: []string{"en"},
		Address: &profile.Address{
			Street:  "42 Harbour View Drive",
			City:    "Sydney",
			State:   "NSW",
			ZipCode: "2000",
			Country: "Australia",
		},
		Bio: "Purchasing a residential property, first settlement.",
	})

	s.Documents.Seed(DemoSub,
		&documents.Document{
			ID:         "1",
			Name:       "Settlement Agreement.pdf",
			Type:       "PDF",
			Size:       "2.5 MB",
			UploadedAt: mustTime("2024-03-20T10:30:00Z"),
			Status:     documents.StatusReady,
		},
		&documents.Document{
			ID:         "2",
			Name:       "Property Inspection Report.docx",
			Type:       "DOCX",
			Size:       "1.8 MB",
			UploadedAt: mustTime("2024-03-19T15:45:00Z"),
			Status:     documents.StatusPending,
		},
	)

	s.Appointments.Seed(DemoSub,
		&appointments.Appointment{
			ID:     "1",
			Title:  "Settlement Review Meeting",
			Date:   "2024-03-25",
			Time:   "10:00 AM",
			Type:   appointments.TypeVirtual,
			Status: appointments.StatusScheduled,
			With:   "John Smith",
		},
		&appointments.Appointment{
			ID:     "2",
			Title:  "Document Signing",
			Date:   "2024-03-26",
			Time:   "2:30 PM",
			Type:   appointments.TypeInPerson,
			Status: appointments.StatusPending,
			With:   "Sarah Johnson",
		},
	)

	s.Billing.SeedPaymentMethods(DemoSub,
		&billing.PaymentMethod{ID: "card-1", Type: "Visa", Last4: "4242", Expiry: "12/25", IsDefault: true},
		&billing.PaymentMethod{ID: "card-2", Type: "Mastercard", Last4: "8888", Expiry: "09/24"},
	)
	s.Billing.SeedInvoices(DemoSub,
		&billing.Invoice{ID: "INV-001", Date: "2024-03-15", Amount: 1500, Status: billing.InvoicePaid, Description: "Settlement Processing Fee"},
		&billing.Invoice{ID: "INV-002", Date: "2024-03-01", Amount: 750, Status: billing.InvoicePaid, Description: "Document Review Service"},
		&billing.Invoice{ID: "INV-003", Date: "2024-02-15", Amount: 2000, Status: billing.InvoicePending, Description: "Legal Consultation Fee"},
	)

	s.Messaging.SeedConversations(DemoSub,
		&messaging.Conversation{ID: "1", Name: "John Smith", Role: "Settlement Agent", LastMessage: "I've reviewed the documents you sent.", Unread: 2},
		&messaging.Conversation{ID: "2", Name: "Sarah Johnson", Role: "Legal Advisor", LastMessage: "The contract looks good to proceed.", Unread: 0},
	)
	s.Messaging.SeedMessages(DemoSub,
		&messaging.Message{ID: "1", Content: "Hello, I've received your settlement documents.", Sender: "John Smith", Timestamp: mustTime("2024-03-20T10:30:00Z"), ConversationID: "1"},
		&messaging.Message{ID: "2", Content: "Great, thank you for confirming.", Sender: "You", Timestamp: mustTime("2024-03-20T10:35:00Z"), ConversationID: "1"},
	)

	s.Cases.Seed(DemoSub,
		&cases.Case{
			ID:          "case-1",
			Title:       "Residential Property Settlement",
			Description: "Settlement for the purchase at 42 Harbour View Drive.",
			Type:        "residential",
			Status:      cases.StatusInProgress,
			Priority:    cases.PriorityHigh,
			AssignedTo:  "John Smith",
			ClientID:    DemoSub,
			CreatedAt:   mustTime("2024-03-10T09:00:00Z"),
			UpdatedAt:   mustTime("2024-03-20T10:30:00Z"),
			DueDate:     "2024-04-15",
			Documents: []cases.CaseDocument{
				{ID: "1", Name: "Settlement Agreement.pdf", Type: "PDF", UploadedAt: mustTime("2024-03-20T10:30:00Z")},
			},
			Appointments: []cases.CaseAppointment{
				{ID: "1", Title: "Settlement Review Meeting", Date: "2024-03-25", Time: "10:00 AM", Type: appointments.TypeVirtual},
			},
			Notes: []cases.Note{
				{ID: "note-1", Content: "Client confirmed the inspection date.", CreatedAt: mustTime("2024-03-12T14:00:00Z"), CreatedBy: "John Smith"},
			},
			Timeline: []cases.TimelineEvent{
				{ID: "evt-1", Event: "Case opened", Date: mustTime("2024-03-10T09:00:00Z"), AddedBy: "John Smith"},
				{ID: "evt-2", Event: "Settlement agreement uploaded", Date: mustTime("2024-03-20T10:30:00Z"), AddedBy: DemoName},
			},
			Billing: cases.BillingSummary{TotalBilled: 2250, TotalPaid: 2250, NextInvoiceDate: "2024-04-01"},
		},
		&cases.Case{
			ID:          "case-2",
			Title:       "Commercial Lease Dispute",
			Description: "Dispute over the make-good clause at the Quay Street premises.",
			Type:        "commercial",
			Status:      cases.StatusOpen,
			Priority:    cases.PriorityMedium,
			AssignedTo:  "Sarah Johnson",
			ClientID:    DemoSub,
			CreatedAt:   mustTime("2024-02-28T11:15:00Z"),
			UpdatedAt:   mustTime("2024-03-05T16:40:00Z"),
			Documents:   []cases.CaseDocument{},
			Appointments: []cases.CaseAppointment{
				{ID: "2", Title: "Document Signing", Date: "2024-03-26", Time: "2:30 PM", Type: appointments.TypeInPerson},
			},
			Notes: []cases.Note{},
			Timeline: []cases.TimelineEvent{
				{ID: "evt-3", Event: "Case opened", Date: mustTime("2024-02-28T11:15:00Z"), AddedBy: "Sarah Johnson"},
			},
			Billing: cases.BillingSummary{TotalBilled: 2000, TotalPaid: 0, NextInvoiceDate: "2024-03-30"},
		},
	)

	s.Notifications.Seed(DemoSub,
		&notifications.Notification{
			ID:        "1",
			Type:      notifications.KindDocument,
			Title:     "Document ready",
			Message:   "Settlement Agreement.pdf has been processed",
			Timestamp: mustTime("2024-03-20T10:31:00Z"),
			Read:      true,
			Data:      map[string]string{"documentId": "1"},
		},
		&notifications.Notification{
			ID:        "2",
			Type:      notifications.KindAppointment,
			Title:     "Appointment scheduled",
			Message:   "Settlement Review Meeting on 2024-03-25 at 10:00 AM",
			Timestamp: mustTime("2024-03-21T08:00:00Z"),
			Data:      map[string]string{"appointmentId": "1"},
		},
		&notifications.Notification{
			ID:        "3",
			Type:      notifications.KindBilling,
			Title:     "Invoice issued",
			Message:   "INV-003 Legal Consultation Fee is awaiting payment",
			Timestamp: mustTime("2024-02-15T09:00:00Z"),
			Data:      map[string]string{"invoiceId": "INV-003"},
		},
	)

	s.Analytics.SeedReporting(
		[]analytics.MonthlyStat{
			{Month: "Jan", Cases: 30},
			{Month: "Feb", Cases: 45},
			{Month: "Mar", Cases: 38},
			{Month: "Apr", Cases: 55},
			{Month: "May", Cases: 48},
			{Month: "Jun", Cases: 62},
		},
		[]analytics.SettlementType{
			{Type: "Residential", Percentage: 45, Count: 540},
			{Type: "Commercial", Percentage: 30, Count: 360},
			{Type: "Industrial", Percentage: 25, Count: 300},
		},
	)
	return nil
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
