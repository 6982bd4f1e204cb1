package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/store-management-api/internal/domain/entity"
	"github.com/jhoicas/store-management-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements UserRepository over the users collection.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection("users")}
}

type userDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email"`
	Name  string             `bson:"name,omitempty"`
	Role  string             `bson:"role,omitempty"`
}

// Create inserts a user document and writes the assigned id back.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	res, err := r.coll.InsertOne(ctx, userDoc{Email: user.Email, Name: user.Name, Role: user.Role})
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}
	return nil
}

// FindAll returns every user.
func (r *UserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	list := make([]*entity.User, 0, len(docs))
	for _, d := range docs {
		list = append(list, &entity.User{ID: d.ID.Hex(), Email: d.Email, Name: d.Name, Role: d.Role})
	}
	return list, nil
}

// FindByEmail returns the user with the given email, or (nil, nil).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &entity.User{ID: doc.ID.Hex(), Email: doc.Email, Name: doc.Name, Role: doc.Role}, nil
}
