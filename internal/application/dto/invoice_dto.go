package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineItem one line of an invoice body. The request body is a bare
// JSON array of these.
type InvoiceLineItem struct {
	ProductMatchID  string          `json:"product_match_id"`
	ProductTitle    string          `json:"product_title"`
	ProductQuantity Quantity        `json:"product_quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Total           decimal.Decimal `json:"total"`
}

// InvoiceResponse invoice representation returned by the API.
type InvoiceResponse struct {
	ID          string            `json:"_id"`
	Invoice     []InvoiceLineItem `json:"invoice"`
	CreatedTime time.Time         `json:"created_time"`
}

// InvoiceCreatedResponse 201 body after inserting an invoice.
type InvoiceCreatedResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}
