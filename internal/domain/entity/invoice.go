package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is one purchase or sale receipt: the submitted line items plus the
// server-side creation timestamp used by the by-date queries.
type Invoice struct {
	ID          string
	Items       []InvoiceItem
	CreatedTime time.Time
}

// InvoiceItem is a single line of an invoice. ProductMatchID pairs the line
// with a product for stock adjustment.
type InvoiceItem struct {
	ProductMatchID  string
	ProductTitle    string
	ProductQuantity int
	UnitPrice       decimal.Decimal
	Total           decimal.Decimal
}
