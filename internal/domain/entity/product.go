package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an item on the store shelf. ProductMatchID is the
// business key the stock engine uses to locate a product; ID is the
// storage-assigned document id and is never used for stock arithmetic.
type Product struct {
	ID                   string
	ProductMatchID       string
	Title                string // unique-checked on create
	Generic              string
	Company              string
	Category             string
	Price                decimal.Decimal // sale price
	ProductPurchasePrice decimal.Decimal
	Stock                int // quantity on hand, never negative
	CreatedDate          time.Time
	LastEditedDate       *time.Time
	LastEditorEmail      string
}
