package client

import (
	"context"

	"github.com/settleview/settleview-api/internal/billing"
)

// BillingHook caches payment methods and invoices together, the way the
// billing endpoint serves them.
type BillingHook struct {
	hookState
	c        *Client
	methods  []*billing.PaymentMethod
	invoices []*billing.Invoice
}

func NewBillingHook(c *Client) *BillingHook {
	return &BillingHook{c: c}
}

// Fetch replaces both caches; on failure both reset.
func (h *BillingHook) Fetch(ctx context.Context) error {
	h.begin()
	var out struct {
		PaymentMethods []*billing.PaymentMethod `json:"paymentMethods"`
		Invoices       []*billing.Invoice       `json:"invoices"`
	}
	if err := h.c.get(ctx, "/api/billing", &out); err != nil {
		h.finish(err, func() { h.methods, h.invoices = nil, nil })
		return err
	}
	h.finish(nil, func() { h.methods, h.invoices = out.PaymentMethods, out.Invoices })
	return nil
}

// AddPaymentMethod stores a new method. A new default demotes the cached
// siblings, mirroring the server-side swap.
func (h *BillingHook) AddPaymentMethod(ctx context.Context, in billing.AddPaymentMethodInput) (*billing.PaymentMethod, error) {
	h.begin()
	var pm billing.PaymentMethod
	if err := h.c.post(ctx, "/api/billing", in, &pm); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() {
		if pm.IsDefault {
			for _, m := range h.methods {
				m.IsDefault = false
			}
		}
		h.methods = append(h.methods, &pm)
	})
	return &pm, nil
}

// UpdatePaymentMethod merges a patch; setting the default demotes the rest.
func (h *BillingHook) UpdatePaymentMethod(ctx context.Context, id string, p billing.PaymentMethodPatch) (*billing.PaymentMethod, error) {
	h.begin()
	var pm billing.PaymentMethod
	if err := h.c.put(ctx, "/api/billing?id="+id, p, &pm); err != nil {
		h.finish(err, nil)
		return nil, err
	}
	h.finish(nil, func() {
		for i, m := range h.methods {
			if pm.IsDefault {
				m.IsDefault = false
			}
			if m.ID == id {
				h.methods[i] = &pm
			}
		}
	})
	return &pm, nil
}

// DeletePaymentMethod removes a non-default method.
func (h *BillingHook) DeletePaymentMethod(ctx context.Context, id string) error {
	h.begin()
	if err := h.c.del(ctx, "/api/billing?id="+id); err != nil {
		h.finish(err, nil)
		return err
	}
	h.finish(nil, func() {
		kept := h.methods[:0]
		for _, m := range h.methods {
			if m.ID != id {
				kept = append(kept, m)
			}
		}
		h.methods = kept
	})
	return nil
}

// PaymentMethods returns a copy of the cached methods.
func (h *BillingHook) PaymentMethods() []*billing.PaymentMethod {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*billing.PaymentMethod, len(h.methods))
	copy(out, h.methods)
	return out
}

// Invoices returns a copy of the cached invoices.
func (h *BillingHook) Invoices() []*billing.Invoice {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*billing.Invoice, len(h.invoices))
	copy(out, h.invoices)
	return out
}

// DefaultPaymentMethod returns the cached default, or nil.
func (h *BillingHook) DefaultPaymentMethod() *billing.PaymentMethod {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, m := range h.methods {
		if m.IsDefault {
			return m
		}
	}
	return nil
}

// PendingInvoices filters the cache for unpaid, not-yet-overdue invoices.
func (h *BillingHook) PendingInvoices() []*billing.Invoice {
	return h.invoicesByStatus(billing.InvoicePending)
}

// OverdueInvoices filters the cache for overdue invoices.
func (h *BillingHook) OverdueInvoices() []*billing.Invoice {
	return h.invoicesByStatus(billing.InvoiceOverdue)
}

func (h *BillingHook) invoicesByStatus(status string) []*billing.Invoice {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*billing.Invoice, 0)
	for _, inv := range h.invoices {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out
}

// TotalOutstanding sums the cached non-paid invoice amounts.
func (h *BillingHook) TotalOutstanding() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var total float64
	for _, inv := range h.invoices {
		if inv.Status != billing.InvoicePaid {
			total += inv.Amount
		}
	}
	return total
}

// CollectionRate is collected over billed as a percentage; 0 when nothing
// has been billed.
func (h *BillingHook) CollectionRate() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var billed, collected float64
	for _, inv := range h.invoices {
		billed += inv.Amount
		if inv.Status == billing.InvoicePaid {
			collected += inv.Amount
		}
	}
	if billed == 0 {
		return 0
	}
	return collected / billed * 100
}
