package services

import (
	"context"

	"storefront-service/models"
)

// Catalog is the surface the HTTP layer depends on for product CRUD.
type Catalog interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, in models.ProductIn) (*models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, in models.ProductIn) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// SessionCreator is the surface the HTTP layer depends on for checkout.
type SessionCreator interface {
	CreateSession(ctx context.Context, req models.CheckoutRequest) (string, error)
}
