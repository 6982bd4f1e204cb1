package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/application/usecase"
	"github.com/jhoicas/store-management-api/internal/domain"
)

// InvoiceHandler handles HTTP requests for one invoice collection
// (purchase or sold).
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List GET /api/{purchase,sold}-invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error retrieving invoices"})
	}
	return c.JSON(out)
}

// ListByDate GET /api/{purchase,sold}-invoices/by-date/:date — invoices of
// one calendar day (YYYY-MM-DD).
func (h *InvoiceHandler) ListByDate(c *fiber.Ctx) error {
	out, err := h.uc.ListByDate(c.Context(), c.Params("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date must be YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error retrieving invoices"})
	}
	return c.JSON(out)
}

// GetByID GET /api/{purchase,sold}-invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "invalid invoice id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error retrieving invoice"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
	}
	return c.JSON(out)
}

// Create POST /api/{purchase,sold}-invoices — body is a JSON array of line
// items; the document is stamped with the insertion time.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var items []dto.InvoiceLineItem
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid data format. Expected an array."})
	}
	id, err := h.uc.Create(c.Context(), items)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice needs at least one line item"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error inserting invoice"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceCreatedResponse{
		Message:    "Data inserted successfully",
		InsertedID: id,
	})
}
