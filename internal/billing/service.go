package billing

import (
	"fmt"
	"sync"

	"github.com/settleview/settleview-api/internal/store"
)

// AddPaymentMethodInput is the client-supplied part of a payment method.
type AddPaymentMethodInput struct {
	Type      string `json:"type"`
	Last4     string `json:"last4"`
	Expiry    string `json:"expiry"`
	IsDefault bool   `json:"isDefault"`
}

// PaymentMethodPatch is a partial update. Last4 is deliberately absent:
// the stored digits never change after creation.
type PaymentMethodPatch struct {
	Type      *string `json:"type"`
	Expiry    *string `json:"expiry"`
	IsDefault *bool   `json:"isDefault"`
}

// Service owns payment methods and invoices for all users. The service-level
// lock spans the compound default-reassignment operations on the write side
// and the method reads on the read side, so no caller ever observes two
// defaults or none mid-swap.
type Service struct {
	mu       sync.RWMutex
	methods  *store.Collection[*PaymentMethod]
	invoices *store.Collection[*Invoice]
}

func NewService() *Service {
	return &Service{
		methods:  store.NewCollection[*PaymentMethod]("payment_methods", "card-"),
		invoices: store.NewCollection[*Invoice]("invoices", "INV-"),
	}
}

func (s *Service) SeedPaymentMethods(owner string, pms ...*PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods.Seed(owner, pms...)
}

func (s *Service) SeedInvoices(owner string, invs ...*Invoice) { s.invoices.Seed(owner, invs...) }

func (s *Service) PaymentMethods(owner string) []*PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.methods.List(owner)
}

func (s *Service) Invoices(owner string) []*Invoice { return s.invoices.List(owner) }

// AddPaymentMethod stores a new method. When the new method is the default,
// every sibling loses its default flag in the same swap.
func (s *Service) AddPaymentMethod(owner string, in AddPaymentMethodInput) (*PaymentMethod, error) {
	if in.Type == "" || in.Last4 == "" || in.Expiry == "" {
		return nil, fmt.Errorf("%w: type, last4 and expiry are required", store.ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pm := s.methods.Create(owner, &PaymentMethod{
		Type:      in.Type,
		Last4:     in.Last4,
		Expiry:    in.Expiry,
		IsDefault: in.IsDefault,
	})
	if in.IsDefault {
		s.methods.UpdateEach(owner, func(m *PaymentMethod) { m.IsDefault = m.ID == pm.ID })
	}
	return pm, nil
}

// UpdatePaymentMethod merges the patch. Setting isDefault=true atomically
// clears the flag on every sibling.
func (s *Service) UpdatePaymentMethod(owner, id string, p PaymentMethodPatch) (*PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.methods.Get(owner, id); err != nil {
		return nil, err
	}
	if p.IsDefault != nil && *p.IsDefault {
		s.methods.UpdateEach(owner, func(m *PaymentMethod) { m.IsDefault = m.ID == id })
	}
	return s.methods.Update(owner, id, func(m *PaymentMethod) {
		if p.Type != nil {
			m.Type = *p.Type
		}
		if p.Expiry != nil {
			m.Expiry = *p.Expiry
		}
		if p.IsDefault != nil && !*p.IsDefault {
			m.IsDefault = false
		}
	})
}

// DeletePaymentMethod removes a method. The current default cannot be
// removed; reassign the default first.
func (s *Service) DeletePaymentMethod(owner, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.methods.Delete(owner, id, func(m *PaymentMethod) error {
		if m.IsDefault {
			return fmt.Errorf("%w: cannot delete default payment method", store.ErrConflict)
		}
		return nil
	})
}

// DefaultPaymentMethod returns the owner's default method, or nil.
func (s *Service) DefaultPaymentMethod(owner string) *PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.methods.List(owner) {
		if m.IsDefault {
			return m
		}
	}
	return nil
}

// TotalOutstanding sums the amounts of all non-paid invoices.
func (s *Service) TotalOutstanding(owner string) float64 {
	var total float64
	for _, inv := range s.invoices.List(owner) {
		if inv.Status != InvoicePaid {
			total += inv.Amount
		}
	}
	return total
}

// TotalBilled sums all invoice amounts.
func (s *Service) TotalBilled(owner string) float64 {
	var total float64
	for _, inv := range s.invoices.List(owner) {
		total += inv.Amount
	}
	return total
}
