package repository

import (
	"context"

	"storefront-service/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepo defines the catalog's storage operations. Match counts from
// Update and Delete let callers distinguish not-found from success.
type ProductRepo interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, data models.ProductData) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, data models.ProductData) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
