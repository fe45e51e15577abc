package services

import (
	"context"
	"errors"

	"storefront-service/apperrors"
	"storefront-service/database"
	"storefront-service/models"
	"storefront-service/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CatalogService implements product CRUD on top of the typed repository.
// A nil repository means the document store was never configured; every
// operation then fails with the store-unavailable error instead of
// pretending the catalog is empty.
type CatalogService struct {
	repo   repository.ProductRepo
	logger *zap.Logger
}

func NewCatalogService(repo repository.ProductRepo, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) available() error {
	if s.repo == nil {
		return apperrors.ErrStoreUnavailable
	}
	return nil
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return products, nil
}

// Create validates nothing itself; the payload is schema-checked at the HTTP
// boundary. The created record is re-read so the response carries exactly
// what the store persisted, with its assigned id.
func (s *CatalogService) Create(ctx context.Context, in models.ProductIn) (*models.Product, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	id, err := s.repo.Create(ctx, in.Data())
	if err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		// The record was just written; failing to read it back is a server
		// fault, not a client error.
		s.logger.Error("Failed to read back created product",
			zap.String("id", database.EncodeDocumentID(id)), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return created, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	oid, err := database.DecodeDocumentID(id)
	if err != nil {
		return nil, apperrors.InvalidProductID(err)
	}
	product, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProductNotFound
		}
		s.logger.Error("Failed to fetch product", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, in models.ProductIn) (*models.Product, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	oid, err := database.DecodeDocumentID(id)
	if err != nil {
		return nil, apperrors.InvalidProductID(err)
	}
	matched, err := s.repo.Update(ctx, oid, in.Data())
	if err != nil {
		s.logger.Error("Failed to update product", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	if matched == 0 {
		return nil, apperrors.ErrProductNotFound
	}
	updated, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		s.logger.Error("Failed to read back updated product", zap.String("id", id), zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.available(); err != nil {
		return err
	}
	oid, err := database.DecodeDocumentID(id)
	if err != nil {
		return apperrors.InvalidProductID(err)
	}
	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		s.logger.Error("Failed to delete product", zap.String("id", id), zap.Error(err))
		return apperrors.Internal(err)
	}
	if deleted == 0 {
		return apperrors.ErrProductNotFound
	}
	return nil
}
