package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicate      = errors.New("duplicate resource")
	ErrInvalidInput   = errors.New("invalid input")
	ErrMalformedBatch = errors.New("malformed stock adjustment batch")
)

// MissingProductsError reports the product_match_id values of a stock batch
// that have no matching product document. Nothing is written when it is returned.
type MissingProductsError struct {
	IDs []string
}

func (e *MissingProductsError) Error() string {
	return fmt.Sprintf("%d product(s) do not exist: %s", len(e.IDs), strings.Join(e.IDs, ", "))
}

// NegativeStockError reports a decrease that would drive a product's stock
// below zero. Sibling writes of the same batch may already have been applied.
type NegativeStockError struct {
	ProductID string
}

func (e *NegativeStockError) Error() string {
	return "stock cannot be negative for product " + e.ProductID
}
