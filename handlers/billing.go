package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/internal/billing"
	"github.com/settleview/settleview-api/pkg/middleware"
)

// GetBilling returns payment methods, invoices, or both depending on ?type=.
func (a *API) GetBilling(c *gin.Context) {
	sub := middleware.Subject(c)
	switch c.Query("type") {
	case "payment-methods":
		c.JSON(http.StatusOK, a.billing.PaymentMethods(sub))
	case "invoices":
		c.JSON(http.StatusOK, a.billing.Invoices(sub))
	default:
		c.JSON(http.StatusOK, gin.H{
			"paymentMethods": a.billing.PaymentMethods(sub),
			"invoices":       a.billing.Invoices(sub),
		})
	}
}

// AddPaymentMethod stores a new payment method; marking it default demotes
// every other method in the same step.
func (a *API) AddPaymentMethod(c *gin.Context) {
	var in billing.AddPaymentMethodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pm, err := a.billing.AddPaymentMethod(middleware.Subject(c), in)
	if err != nil {
		respondError(c, err, "Payment method")
		return
	}
	c.JSON(http.StatusCreated, pm)
}

// UpdatePaymentMethod merges a partial update; last4 never changes.
func (a *API) UpdatePaymentMethod(c *gin.Context) {
	id, ok := requireQueryID(c, "Payment method")
	if !ok {
		return
	}
	var p billing.PaymentMethodPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pm, err := a.billing.UpdatePaymentMethod(middleware.Subject(c), id, p)
	if err != nil {
		respondError(c, err, "Payment method")
		return
	}
	c.JSON(http.StatusOK, pm)
}

// DeletePaymentMethod removes a non-default payment method.
func (a *API) DeletePaymentMethod(c *gin.Context) {
	id, ok := requireQueryID(c, "Payment method")
	if !ok {
		return
	}
	if err := a.billing.DeletePaymentMethod(middleware.Subject(c), id); err != nil {
		respondError(c, err, "Payment method")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
}
