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

// The generics, company and categories collections share one document shape:
// a single name field plus the creation date. namedDoc covers all three; the
// bson field holding the name differs per collection.

type namedDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Generic     string             `bson:"generic,omitempty"`
	Company     string             `bson:"company,omitempty"`
	Category    string             `bson:"category,omitempty"`
	CreatedDate time.Time          `bson:"created_date"`
}

var _ repository.GenericRepository = (*GenericRepo)(nil)

// GenericRepo implements GenericRepository over the generics collection.
type GenericRepo struct {
	coll *mongo.Collection
}

// NewGenericRepository builds the persistence adapter for generic names.
func NewGenericRepository(db *mongo.Database) *GenericRepo {
	return &GenericRepo{coll: db.Collection("generics")}
}

// Create inserts a generic name document.
func (r *GenericRepo) Create(ctx context.Context, generic *entity.Generic) error {
	res, err := r.coll.InsertOne(ctx, namedDoc{Generic: generic.Name, CreatedDate: generic.CreatedDate})
	if err != nil {
		return fmt.Errorf("insert generic: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		generic.ID = oid.Hex()
	}
	return nil
}

// FindAll returns every generic name.
func (r *GenericRepo) FindAll(ctx context.Context) ([]*entity.Generic, error) {
	docs, err := findNamedDocs(ctx, r.coll, "list generics")
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Generic, 0, len(docs))
	for _, d := range docs {
		list = append(list, &entity.Generic{ID: d.ID.Hex(), Name: d.Generic, CreatedDate: d.CreatedDate})
	}
	return list, nil
}

// FindByName returns the generic with the given name, or (nil, nil).
func (r *GenericRepo) FindByName(ctx context.Context, name string) (*entity.Generic, error) {
	var doc namedDoc
	err := r.coll.FindOne(ctx, bson.M{"generic": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get generic by name: %w", err)
	}
	return &entity.Generic{ID: doc.ID.Hex(), Name: doc.Generic, CreatedDate: doc.CreatedDate}, nil
}

// Delete removes a generic by document id.
func (r *GenericRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrInvalidInput
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete generic: %w", err)
	}
	return res.DeletedCount > 0, nil
}

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements CompanyRepository over the company collection.
type CompanyRepo struct {
	coll *mongo.Collection
}

// NewCompanyRepository builds the persistence adapter for companies.
func NewCompanyRepository(db *mongo.Database) *CompanyRepo {
	return &CompanyRepo{coll: db.Collection("company")}
}

// Create inserts a company document.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	res, err := r.coll.InsertOne(ctx, namedDoc{Company: company.Name, CreatedDate: company.CreatedDate})
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		company.ID = oid.Hex()
	}
	return nil
}

// FindAll returns every company.
func (r *CompanyRepo) FindAll(ctx context.Context) ([]*entity.Company, error) {
	docs, err := findNamedDocs(ctx, r.coll, "list companies")
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Company, 0, len(docs))
	for _, d := range docs {
		list = append(list, &entity.Company{ID: d.ID.Hex(), Name: d.Company, CreatedDate: d.CreatedDate})
	}
	return list, nil
}

// FindByName returns the company with the given name, or (nil, nil).
func (r *CompanyRepo) FindByName(ctx context.Context, name string) (*entity.Company, error) {
	var doc namedDoc
	err := r.coll.FindOne(ctx, bson.M{"company": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name: %w", err)
	}
	return &entity.Company{ID: doc.ID.Hex(), Name: doc.Company, CreatedDate: doc.CreatedDate}, nil
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implements CategoryRepository over the categories collection.
type CategoryRepo struct {
	coll *mongo.Collection
}

// NewCategoryRepository builds the persistence adapter for categories.
func NewCategoryRepository(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{coll: db.Collection("categories")}
}

// Create inserts a category document.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	res, err := r.coll.InsertOne(ctx, namedDoc{Category: category.Name, CreatedDate: category.CreatedDate})
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid.Hex()
	}
	return nil
}

// FindAll returns every category.
func (r *CategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	docs, err := findNamedDocs(ctx, r.coll, "list categories")
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Category, 0, len(docs))
	for _, d := range docs {
		list = append(list, &entity.Category{ID: d.ID.Hex(), Name: d.Category, CreatedDate: d.CreatedDate})
	}
	return list, nil
}

// FindByName returns the category with the given name, or (nil, nil).
func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var doc namedDoc
	err := r.coll.FindOne(ctx, bson.M{"category": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &entity.Category{ID: doc.ID.Hex(), Name: doc.Category, CreatedDate: doc.CreatedDate}, nil
}

func findNamedDocs(ctx context.Context, coll *mongo.Collection, op string) ([]namedDoc, error) {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var docs []namedDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return docs, nil
}
