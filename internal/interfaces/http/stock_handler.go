package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/application/stock"
	"github.com/jhoicas/store-management-api/internal/domain"
)

// StockHandler handles the batch stock adjustment endpoints.
type StockHandler struct {
	uc *stock.AdjustStockUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(uc *stock.AdjustStockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Increase PATCH /stock/increase — adds each line item's quantity to the
// matching product's stock (goods received).
func (h *StockHandler) Increase(c *fiber.Ctx) error {
	batch, ok := parseBatch(c)
	if !ok {
		return nil // response already written
	}
	if err := h.uc.IncreaseStock(c.Context(), batch); err != nil {
		return stockError(c, err, "Error updating product stock")
	}
	return c.JSON(dto.MessageResponse{Message: "Stock updated successfully"})
}

// Decrease PATCH /stock/decrease — subtracts each line item's quantity from
// the matching product's stock (goods sold), refusing negative results.
func (h *StockHandler) Decrease(c *fiber.Ctx) error {
	batch, ok := parseBatch(c)
	if !ok {
		return nil
	}
	if err := h.uc.DecreaseStock(c.Context(), batch); err != nil {
		return stockError(c, err, "Error decreasing product stock")
	}
	return c.JSON(dto.MessageResponse{Message: "Stock decreased successfully"})
}

func parseBatch(c *fiber.Ctx) ([]dto.StockLineItem, bool) {
	var batch []dto.StockLineItem
	if err := c.BodyParser(&batch); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.StockErrorResponse{
			Error: "Invalid data format. Expected an array of line items.",
		})
		return nil, false
	}
	return batch, true
}

// stockError maps engine failures onto the wire contract. Detail always
// includes the offending identifiers, never only a generic message.
func stockError(c *fiber.Ctx, err error, internalMsg string) error {
	var missErr *domain.MissingProductsError
	if errors.As(err, &missErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MissingProductsResponse{
			Error:             "One or more products do not exist in the database",
			MissingProductIDs: missErr.IDs,
		})
	}
	var negErr *domain.NegativeStockError
	if errors.As(err, &negErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NegativeStockResponse{
			Error:     "Stock cannot be negative",
			ProductID: negErr.ProductID,
		})
	}
	if errors.Is(err, domain.ErrMalformedBatch) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.StockErrorResponse{
			Error: "Each line item needs a product_match_id and a positive product_quantity, with no duplicates",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.StockErrorResponse{Error: internalMsg})
}
