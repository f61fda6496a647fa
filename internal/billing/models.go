package billing

const (
	InvoicePaid    = "paid"
	InvoicePending = "pending"
	InvoiceOverdue = "overdue"
)

// PaymentMethod is a stored card or bank account. At most one method per
// owner may have IsDefault set; Last4 is immutable after creation.
type PaymentMethod struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Last4     string `json:"last4"`
	Expiry    string `json:"expiry"`
	IsDefault bool   `json:"isDefault"`
	UserID    string `json:"userId"`
}

func (p *PaymentMethod) RecordID() string      { return p.ID }
func (p *PaymentMethod) SetRecordID(id string) { p.ID = id }
func (p *PaymentMethod) Owner() string         { return p.UserID }
func (p *PaymentMethod) SetOwner(sub string)   { p.UserID = sub }
func (p *PaymentMethod) Clone() *PaymentMethod { cp := *p; return &cp }

// Invoice is read-mostly; invoices are issued by the billing back office and
// only listed here.
type Invoice struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	UserID      string  `json:"userId"`
}

func (i *Invoice) RecordID() string      { return i.ID }
func (i *Invoice) SetRecordID(id string) { i.ID = id }
func (i *Invoice) Owner() string         { return i.UserID }
func (i *Invoice) SetOwner(sub string)   { i.UserID = sub }
func (i *Invoice) Clone() *Invoice       { cp := *i; return &cp }
