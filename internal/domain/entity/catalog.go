package entity

import "time"

// Generic is a generic (non-brand) product name, e.g. the active ingredient.
type Generic struct {
	ID          string
	Name        string // unique-checked on create
	CreatedDate time.Time
}

// Company is a supplier/manufacturer.
type Company struct {
	ID          string
	Name        string // unique-checked on create
	CreatedDate time.Time
}

// Category groups products for the storefront.
type Category struct {
	ID          string
	Name        string // unique-checked on create
	CreatedDate time.Time
}
