package dto

import "time"

// CreateGenericRequest payload to register a generic name.
type CreateGenericRequest struct {
	Generic string `json:"generic"`
}

// CreateCompanyRequest payload to register a company.
type CreateCompanyRequest struct {
	Company string `json:"company"`
}

// CreateCategoryRequest payload to register a category.
type CreateCategoryRequest struct {
	Category string `json:"category"`
}

// GenericResponse generic name representation.
type GenericResponse struct {
	ID          string    `json:"_id"`
	Generic     string    `json:"generic"`
	CreatedDate time.Time `json:"created_date"`
}

// CompanyResponse company representation.
type CompanyResponse struct {
	ID          string    `json:"_id"`
	Company     string    `json:"company"`
	CreatedDate time.Time `json:"created_date"`
}

// CategoryResponse category representation.
type CategoryResponse struct {
	ID          string    `json:"_id"`
	Category    string    `json:"category"`
	CreatedDate time.Time `json:"created_date"`
}
