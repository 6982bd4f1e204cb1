package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest payload to create a product. ProductMatchID is
// optional; a server-issued one is assigned when absent.
type CreateProductRequest struct {
	ProductMatchID       string          `json:"product_match_id"`
	Title                string          `json:"title"`
	Generic              string          `json:"generic"`
	Company              string          `json:"company"`
	Category             string          `json:"category"`
	Price                decimal.Decimal `json:"price"`
	ProductPurchasePrice decimal.Decimal `json:"product_purchase_price"`
	Stock                int             `json:"stock"`
}

// UpdateProductRequest partial update; only the original field set is
// accepted. Nil fields are left untouched. last_edited_date is set
// server-side.
type UpdateProductRequest struct {
	ProductPurchasePrice *decimal.Decimal `json:"product_purchase_price"`
	Stock                *int             `json:"stock"`
	Price                *decimal.Decimal `json:"price"`
	LastEditorEmail      *string          `json:"last_editor_email"`
}

// ProductResponse product representation returned by the API.
type ProductResponse struct {
	ID                   string          `json:"_id"`
	ProductMatchID       string          `json:"product_match_id"`
	Title                string          `json:"title"`
	Generic              string          `json:"generic,omitempty"`
	Company              string          `json:"company,omitempty"`
	Category             string          `json:"category,omitempty"`
	Price                decimal.Decimal `json:"price"`
	ProductPurchasePrice decimal.Decimal `json:"product_purchase_price"`
	Stock                int             `json:"stock"`
	CreatedDate          time.Time       `json:"created_date"`
	LastEditedDate       *time.Time      `json:"last_edited_date,omitempty"`
	LastEditorEmail      string          `json:"last_editor_email,omitempty"`
}
