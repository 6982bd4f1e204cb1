package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/store-management-api/internal/domain"
	"github.com/jhoicas/store-management-api/internal/domain/entity"
	"github.com/jhoicas/store-management-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository over one invoice collection.
// Instantiated for both purchaseInvoices and soldInvoices.
type InvoiceRepo struct {
	coll *mongo.Collection
}

// NewInvoiceRepository builds the persistence adapter for the named invoice
// collection.
func NewInvoiceRepository(db *mongo.Database, collection string) *InvoiceRepo {
	return &InvoiceRepo{coll: db.Collection(collection)}
}

type invoiceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Invoice     []invoiceItemDoc   `bson:"invoice"`
	CreatedTime time.Time          `bson:"created_time"`
}

type invoiceItemDoc struct {
	ProductMatchID  string               `bson:"product_match_id"`
	ProductTitle    string               `bson:"product_title,omitempty"`
	ProductQuantity int                  `bson:"product_quantity"`
	UnitPrice       primitive.Decimal128 `bson:"unit_price"`
	Total           primitive.Decimal128 `bson:"total"`
}

func toInvoiceDoc(inv *entity.Invoice) *invoiceDoc {
	items := make([]invoiceItemDoc, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, invoiceItemDoc{
			ProductMatchID:  it.ProductMatchID,
			ProductTitle:    it.ProductTitle,
			ProductQuantity: it.ProductQuantity,
			UnitPrice:       toDecimal128(it.UnitPrice),
			Total:           toDecimal128(it.Total),
		})
	}
	return &invoiceDoc{Invoice: items, CreatedTime: inv.CreatedTime}
}

func (d *invoiceDoc) toEntity() *entity.Invoice {
	items := make([]entity.InvoiceItem, 0, len(d.Invoice))
	for _, it := range d.Invoice {
		items = append(items, entity.InvoiceItem{
			ProductMatchID:  it.ProductMatchID,
			ProductTitle:    it.ProductTitle,
			ProductQuantity: it.ProductQuantity,
			UnitPrice:       fromDecimal128(it.UnitPrice),
			Total:           fromDecimal128(it.Total),
		})
	}
	return &entity.Invoice{ID: d.ID.Hex(), Items: items, CreatedTime: d.CreatedTime}
}

// Insert persists the invoice and returns the storage-assigned id.
func (r *InvoiceRepo) Insert(ctx context.Context, invoice *entity.Invoice) (string, error) {
	res, err := r.coll.InsertOne(ctx, toInvoiceDoc(invoice))
	if err != nil {
		return "", fmt.Errorf("insert invoice: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert invoice: unexpected inserted id type %T", res.InsertedID)
	}
	invoice.ID = oid.Hex()
	return invoice.ID, nil
}

// FindAll returns every invoice in the collection.
func (r *InvoiceRepo) FindAll(ctx context.Context) ([]*entity.Invoice, error) {
	return r.find(ctx, bson.M{})
}

// FindByID returns one invoice, or (nil, nil) when absent.
func (r *InvoiceRepo) FindByID(ctx context.Context, id string) (*entity.Invoice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var doc invoiceDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return doc.toEntity(), nil
}

// FindByCreatedRange returns invoices with from <= created_time < to.
func (r *InvoiceRepo) FindByCreatedRange(ctx context.Context, from, to time.Time) ([]*entity.Invoice, error) {
	return r.find(ctx, bson.M{"created_time": bson.M{"$gte": from, "$lt": to}})
}

func (r *InvoiceRepo) find(ctx context.Context, filter bson.M) ([]*entity.Invoice, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	var docs []invoiceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode invoices: %w", err)
	}
	list := make([]*entity.Invoice, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}
