package repository

import (
	"context"
	"time"

	"github.com/jhoicas/store-management-api/internal/domain/entity"
)

// InvoiceRepository persistence port for purchase and sold invoices. The two
// collections share a document shape, so one port serves both.
type InvoiceRepository interface {
	// Insert persists the invoice and returns the storage-assigned id.
	Insert(ctx context.Context, invoice *entity.Invoice) (string, error)
	FindAll(ctx context.Context) ([]*entity.Invoice, error)
	// FindByID returns (nil, nil) when the invoice does not exist.
	FindByID(ctx context.Context, id string) (*entity.Invoice, error)
	// FindByCreatedRange returns invoices with from <= created_time < to.
	FindByCreatedRange(ctx context.Context, from, to time.Time) ([]*entity.Invoice, error)
}
