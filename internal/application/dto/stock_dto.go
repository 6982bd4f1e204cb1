package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// Quantity is an integer magnitude that accepts either a JSON number or a
// numeric string ("5"), matching clients that forward form values verbatim.
type Quantity int

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("product_quantity %q is not an integer", s)
	}
	*q = Quantity(n)
	return nil
}

// Int returns the magnitude as a plain int.
func (q Quantity) Int() int { return int(q) }

// StockLineItem is one line of a stock adjustment batch.
type StockLineItem struct {
	ProductMatchID  string   `json:"product_match_id"`
	ProductQuantity Quantity `json:"product_quantity"`
}

// MissingProductsResponse is the 400 body when a batch references unknown
// product_match_id values.
type MissingProductsResponse struct {
	Error             string   `json:"error"`
	MissingProductIDs []string `json:"missingProductIds"`
}

// NegativeStockResponse is the 400 body when a decrease would drive stock
// below zero.
type NegativeStockResponse struct {
	Error     string `json:"error"`
	ProductID string `json:"productId"`
}

// StockErrorResponse generic 4xx/5xx body for the stock endpoints.
type StockErrorResponse struct {
	Error string `json:"error"`
}
