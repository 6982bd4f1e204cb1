package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/application/usecase"
	"github.com/jhoicas/store-management-api/internal/domain"
)

// GenericHandler handles HTTP requests for generic names.
type GenericHandler struct {
	uc *usecase.GenericUseCase
}

// NewGenericHandler builds the handler.
func NewGenericHandler(uc *usecase.GenericUseCase) *GenericHandler {
	return &GenericHandler{uc: uc}
}

// List GET /api/generics
func (h *GenericHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error fetching generics"})
	}
	return c.JSON(out)
}

// Create POST /api/generics
func (h *GenericHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGenericRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return createError(c, err, "generic name already exists", "error inserting generic")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete DELETE /api/generics/:id
func (h *GenericHandler) Delete(c *fiber.Ctx) error {
	found, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "invalid generic id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error deleting generic"})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "generic not found"})
	}
	return c.JSON(dto.MessageResponse{Message: "Generic deleted successfully"})
}

// CompanyHandler handles HTTP requests for companies.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List GET /api/companies
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error fetching companies"})
	}
	return c.JSON(out)
}

// Create POST /api/companies
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return createError(c, err, "company name already exists", "error inserting company")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler builds the handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error fetching categories"})
	}
	return c.JSON(out)
}

// Create POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return createError(c, err, "category name already exists", "error inserting category")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func createError(c *fiber.Ctx, err error, dupMsg, internalMsg string) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: dupMsg})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name is required"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: internalMsg})
}
