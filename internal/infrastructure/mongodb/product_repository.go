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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements the ProductRepository port over the products
// collection.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection("products")}
}

type productDoc struct {
	ID                   primitive.ObjectID   `bson:"_id,omitempty"`
	ProductMatchID       string               `bson:"product_match_id"`
	Title                string               `bson:"title"`
	Generic              string               `bson:"generic,omitempty"`
	Company              string               `bson:"company,omitempty"`
	Category             string               `bson:"category,omitempty"`
	Price                primitive.Decimal128 `bson:"price"`
	ProductPurchasePrice primitive.Decimal128 `bson:"product_purchase_price"`
	Stock                int                  `bson:"stock"`
	CreatedDate          time.Time            `bson:"created_date"`
	LastEditedDate       *time.Time           `bson:"last_edited_date,omitempty"`
	LastEditorEmail      string               `bson:"last_editor_email,omitempty"`
}

func toProductDoc(p *entity.Product) *productDoc {
	return &productDoc{
		ProductMatchID:       p.ProductMatchID,
		Title:                p.Title,
		Generic:              p.Generic,
		Company:              p.Company,
		Category:             p.Category,
		Price:                toDecimal128(p.Price),
		ProductPurchasePrice: toDecimal128(p.ProductPurchasePrice),
		Stock:                p.Stock,
		CreatedDate:          p.CreatedDate,
		LastEditedDate:       p.LastEditedDate,
		LastEditorEmail:      p.LastEditorEmail,
	}
}

func (d *productDoc) toEntity() *entity.Product {
	return &entity.Product{
		ID:                   d.ID.Hex(),
		ProductMatchID:       d.ProductMatchID,
		Title:                d.Title,
		Generic:              d.Generic,
		Company:              d.Company,
		Category:             d.Category,
		Price:                fromDecimal128(d.Price),
		ProductPurchasePrice: fromDecimal128(d.ProductPurchasePrice),
		Stock:                d.Stock,
		CreatedDate:          d.CreatedDate,
		LastEditedDate:       d.LastEditedDate,
		LastEditorEmail:      d.LastEditorEmail,
	}
}

// Create inserts a new product document and writes the assigned id back.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	res, err := r.coll.InsertOne(ctx, toProductDoc(product))
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid.Hex()
	}
	return nil
}

// FindAll returns every product.
func (r *ProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

// FindByTitle returns the product with the given title, or (nil, nil).
func (r *ProductRepo) FindByTitle(ctx context.Context, title string) (*entity.Product, error) {
	var doc productDoc
	err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by title: %w", err)
	}
	return doc.toEntity(), nil
}

// FindByMatchIDs fetches all products whose product_match_id is in ids with a
// single $in query.
func (r *ProductRepo) FindByMatchIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"product_match_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find products by match ids: %w", err)
	}
	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].toEntity())
	}
	return list, nil
}

// UpdateFields applies a partial $set by document id.
func (r *ProductRepo) UpdateFields(ctx context.Context, id string, upd repository.ProductUpdate) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrInvalidInput
	}
	set := bson.M{"last_edited_date": upd.LastEditedDate}
	if upd.ProductPurchasePrice != nil {
		set["product_purchase_price"] = toDecimal128(*upd.ProductPurchasePrice)
	}
	if upd.Price != nil {
		set["price"] = toDecimal128(*upd.Price)
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}
	if upd.LastEditorEmail != nil {
		set["last_editor_email"] = *upd.LastEditorEmail
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// IncrementStock atomically adds quantity to stock, keyed by product_match_id.
func (r *ProductRepo) IncrementStock(ctx context.Context, productMatchID string, quantity int) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"product_match_id": productMatchID},
		bson.M{"$inc": bson.M{"stock": quantity}},
	)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}

// DecrementStock subtracts quantity from stock in one conditional update:
// the filter requires stock >= quantity, so concurrent decreases can never
// drive the stored value negative. Returns false when the condition failed.
func (r *ProductRepo) DecrementStock(ctx context.Context, productMatchID string, quantity int) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"product_match_id": productMatchID, "stock": bson.M{"$gte": quantity}},
		bson.M{"$inc": bson.M{"stock": -quantity}},
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// Delete removes a product by document id.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrInvalidInput
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return res.DeletedCount > 0, nil
}
