package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/domain"
	"github.com/jhoicas/store-management-api/internal/domain/entity"
	"github.com/jhoicas/store-management-api/internal/domain/repository"
)

// dateLayout calendar-day parameter format of the by-date queries.
const dateLayout = "2006-01-02"

// InvoiceUseCase use cases for one invoice collection. Instantiated twice:
// once over purchaseInvoices and once over soldInvoices.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase builds the use case over the given invoice collection.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// Create stores the submitted line items as one invoice document stamped with
// the insertion time, and returns the storage-assigned id.
func (uc *InvoiceUseCase) Create(ctx context.Context, items []dto.InvoiceLineItem) (string, error) {
	if len(items) == 0 {
		return "", domain.ErrInvalidInput
	}
	invoice := &entity.Invoice{
		Items:       make([]entity.InvoiceItem, 0, len(items)),
		CreatedTime: time.Now(),
	}
	for _, it := range items {
		invoice.Items = append(invoice.Items, entity.InvoiceItem{
			ProductMatchID:  it.ProductMatchID,
			ProductTitle:    it.ProductTitle,
			ProductQuantity: it.ProductQuantity.Int(),
			UnitPrice:       it.UnitPrice,
			Total:           it.Total,
		})
	}
	return uc.repo.Insert(ctx, invoice)
}

// List returns every invoice in the collection.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(list), nil
}

// GetByID returns one invoice, or nil when it does not exist.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	resp := toInvoiceResponse(invoice)
	return &resp, nil
}

// ListByDate returns the invoices created on the given calendar day
// (YYYY-MM-DD, UTC): half-open range [startOfDay, startOfDay + 1 day).
func (uc *InvoiceUseCase) ListByDate(ctx context.Context, date string) ([]dto.InvoiceResponse, error) {
	start, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end := start.AddDate(0, 0, 1)
	list, err := uc.repo.FindByCreatedRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(list), nil
}

func toInvoiceResponses(list []*entity.Invoice) []dto.InvoiceResponse {
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, toInvoiceResponse(inv))
	}
	return items
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	lines := make([]dto.InvoiceLineItem, 0, len(inv.Items))
	for _, it := range inv.Items {
		lines = append(lines, dto.InvoiceLineItem{
			ProductMatchID:  it.ProductMatchID,
			ProductTitle:    it.ProductTitle,
			ProductQuantity: dto.Quantity(it.ProductQuantity),
			UnitPrice:       it.UnitPrice,
			Total:           it.Total,
		})
	}
	return dto.InvoiceResponse{ID: inv.ID, Invoice: lines, CreatedTime: inv.CreatedTime}
}
