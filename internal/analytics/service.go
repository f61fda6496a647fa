package analytics

import (
	"time"

	"github.com/settleview/settleview-api/internal/appointments"
	"github.com/settleview/settleview-api/internal/billing"
	"github.com/settleview/settleview-api/internal/cases"
	"github.com/settleview/settleview-api/internal/documents"
	"github.com/settleview/settleview-api/internal/messaging"
)

// MonthlyStat is one month of activity counts for the trends chart.
type MonthlyStat struct {
	Month        string  `json:"month"`
	Cases        int     `json:"cases"`
	Documents    int     `json:"documents"`
	Appointments int     `json:"appointments"`
	Messages     int     `json:"messages"`
	Billing      float64 `json:"billing"`
}

// SettlementType is the per-category share of settlements.
type SettlementType struct {
	Type       string  `json:"type"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

// Data is the dashboard analytics snapshot. Totals are computed live from
// the domain collections; monthly stats and settlement types come from the
// reporting fixture until a real warehouse feeds them.
type Data struct {
	TotalCases           int           `json:"totalCases"`
	ActiveCases          int           `json:"activeCases"`
	ResolvedCases        int           `json:"resolvedCases"`
	TotalDocuments       int           `json:"totalDocuments"`
	TotalAppointments    int           `json:"totalAppointments"`
	UpcomingAppointments int           `json:"upcomingAppointments"`
	TotalMessages        int           `json:"totalMessages"`
	UnreadMessages       int           `json:"unreadMessages"`
	TotalBilled          float64       `json:"totalBilled"`
	OutstandingAmount    float64       `json:"outstandingAmount"`
	MonthlyStats         []MonthlyStat `json:"monthlyStats"`
}

// PeriodReport answers a custom date-range query.
type PeriodReport struct {
	From              string  `json:"from"`
	To                string  `json:"to"`
	TotalCases        int     `json:"totalCases"`
	TotalAppointments int     `json:"totalAppointments"`
	TotalBilled       float64 `json:"totalBilled"`
	CollectionRate    float64 `json:"collectionRate"`
}

// Service derives analytics over the other domain services.
type Service struct {
	docs    *documents.Service
	appts   *appointments.Service
	bills   *billing.Service
	msgs    *messaging.Service
	cases   *cases.Service
	monthly []MonthlyStat
	types   []SettlementType
	nowFn   func() time.Time
}

func NewService(docs *documents.Service, appts *appointments.Service, bills *billing.Service, msgs *messaging.Service, cs *cases.Service) *Service {
	return &Service{docs: docs, appts: appts, bills: bills, msgs: msgs, cases: cs, nowFn: time.Now}
}

// SeedReporting installs the fixture-backed monthly trend and settlement
// type breakdown.
func (s *Service) SeedReporting(monthly []MonthlyStat, types []SettlementType) {
	s.monthly = monthly
	s.types = types
}

// Overview assembles the analytics snapshot for one user.
func (s *Service) Overview(owner string) Data {
	st := s.cases.Stats(owner)
	return Data{
		TotalCases:           st.Total,
		ActiveCases:          st.Total - st.Resolved - st.Closed,
		ResolvedCases:        st.Resolved,
		TotalDocuments:       len(s.docs.List(owner)),
		TotalAppointments:    len(s.appts.List(owner)),
		UpcomingAppointments: len(s.appts.Upcoming(owner, s.nowFn())),
		TotalMessages:        s.msgs.MessageCount(owner),
		UnreadMessages:       s.msgs.UnreadCount(owner),
		TotalBilled:          s.bills.TotalBilled(owner),
		OutstandingAmount:    s.bills.TotalOutstanding(owner),
		MonthlyStats:         s.monthly,
	}
}

// Monthly returns the trend fixture.
func (s *Service) Monthly() []MonthlyStat { return s.monthly }

// Types returns the settlement-type breakdown fixture.
func (s *Service) Types() []SettlementType { return s.types }

// ResolutionRate is the percentage of the owner's cases that were resolved
// or closed. Zero cases yield zero, never a division error.
func (s *Service) ResolutionRate(owner string) float64 {
	return s.cases.Stats(owner).ResolutionRate
}

// CollectionRate is the percentage of billed amounts already collected.
func (s *Service) CollectionRate(owner string) float64 {
	billed := s.bills.TotalBilled(owner)
	if billed == 0 {
		return 0
	}
	return (billed - s.bills.TotalOutstanding(owner)) / billed * 100
}

// PeriodReport builds a simple custom-range report. Range bounds are the
// dashboard's date strings (2006-01-02); the fixture-free totals are the
// live ones, restricted where records carry comparable dates.
func (s *Service) Period(owner, from, to string) PeriodReport {
	var billed, collected float64
	for _, inv := range s.bills.Invoices(owner) {
		if inv.Date < from || inv.Date > to {
			continue
		}
		billed += inv.Amount
		if inv.Status == billing.InvoicePaid {
			collected += inv.Amount
		}
	}
	apts := 0
	for _, a := range s.appts.List(owner) {
		if a.Date >= from && a.Date <= to {
			apts++
		}
	}
	rate := 0.0
	if billed > 0 {
		rate = collected / billed * 100
	}
	return PeriodReport{
		From:              from,
		To:                to,
		TotalCases:        s.cases.Stats(owner).Total,
		TotalAppointments: apts,
		TotalBilled:       billed,
		CollectionRate:    rate,
	}
}
