package billing

import (
	"sync"
	"testing"

	"github.com/settleview/settleview-api/internal/store"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func seedTwoCards(t *testing.T) *Service {
	t.Helper()
	svc := NewService()
	svc.SeedPaymentMethods("u1",
		&PaymentMethod{ID: "card-1", Type: "Visa", Last4: "4242", Expiry: "12/25", IsDefault: true},
		&PaymentMethod{ID: "card-2", Type: "Mastercard", Last4: "8888", Expiry: "09/24"},
	)
	return svc
}

func defaults(t *testing.T, svc *Service, owner string) []string {
	t.Helper()
	var out []string
	for _, m := range svc.PaymentMethods(owner) {
		if m.IsDefault {
			out = append(out, m.ID)
		}
	}
	return out
}

func TestDefaultExclusivityOnUpdate(t *testing.T) {
	svc := seedTwoCards(t)

	got, err := svc.UpdatePaymentMethod("u1", "card-2", PaymentMethodPatch{IsDefault: boolPtr(true)})
	require.NoError(t, err)
	require.True(t, got.IsDefault)

	require.Equal(t, []string{"card-2"}, defaults(t, svc, "u1"))
}

func TestDefaultExclusivityOnAdd(t *testing.T) {
	svc := seedTwoCards(t)

	pm, err := svc.AddPaymentMethod("u1", AddPaymentMethodInput{Type: "Amex", Last4: "0005", Expiry: "01/27", IsDefault: true})
	require.NoError(t, err)

	require.Equal(t, []string{pm.ID}, defaults(t, svc, "u1"))
}

func TestDefaultExclusivityUnderConcurrentReads(t *testing.T) {
	svc := seedTwoCards(t)

	const adds = 200
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < adds; i++ {
			_, err := svc.AddPaymentMethod("u1", AddPaymentMethodInput{
				Type: "Visa", Last4: "4242", Expiry: "12/30", IsDefault: true,
			})
			require.NoError(t, err)
		}
	}()

	// a reader racing the add-and-demote swap must never see two defaults
	for len(svc.PaymentMethods("u1")) < 2+adds {
		if got := defaults(t, svc, "u1"); len(got) > 1 {
			t.Fatalf("observed %d defaults mid-swap: %v", len(got), got)
		}
	}
	wg.Wait()
	require.Len(t, defaults(t, svc, "u1"), 1)
}

func TestLast4Immutable(t *testing.T) {
	svc := seedTwoCards(t)

	got, err := svc.UpdatePaymentMethod("u1", "card-1", PaymentMethodPatch{Expiry: strPtr("01/30")})
	require.NoError(t, err)
	require.Equal(t, "4242", got.Last4)
	require.Equal(t, "01/30", got.Expiry)
}

func TestCannotDeleteDefault(t *testing.T) {
	svc := seedTwoCards(t)

	err := svc.DeletePaymentMethod("u1", "card-1")
	require.ErrorIs(t, err, store.ErrConflict)
	require.Len(t, svc.PaymentMethods("u1"), 2)

	// reassign default, then the old default is deletable
	_, err = svc.UpdatePaymentMethod("u1", "card-2", PaymentMethodPatch{IsDefault: boolPtr(true)})
	require.NoError(t, err)
	require.NoError(t, svc.DeletePaymentMethod("u1", "card-1"))
	require.Len(t, svc.PaymentMethods("u1"), 1)
}

func TestDeleteMissingMethod(t *testing.T) {
	svc := seedTwoCards(t)
	require.ErrorIs(t, svc.DeletePaymentMethod("u1", "card-99"), store.ErrNotFound)
}

func TestAddPaymentMethodValidation(t *testing.T) {
	svc := NewService()
	_, err := svc.AddPaymentMethod("u1", AddPaymentMethodInput{Type: "Visa"})
	require.ErrorIs(t, err, store.ErrValidation)
}

func TestInvoiceAggregates(t *testing.T) {
	svc := NewService()
	svc.SeedInvoices("u1",
		&Invoice{ID: "INV-001", Amount: 1500, Status: InvoicePaid},
		&Invoice{ID: "INV-002", Amount: 750, Status: InvoicePending},
		&Invoice{ID: "INV-003", Amount: 2000, Status: InvoiceOverdue},
	)

	require.Equal(t, 4250.0, svc.TotalBilled("u1"))
	require.Equal(t, 2750.0, svc.TotalOutstanding("u1"))
	require.Equal(t, 0.0, svc.TotalOutstanding("u2"))
}
