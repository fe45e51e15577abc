package repository

import (
	"context"

	"storefront-service/database"
	"storefront-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const productCollection = "products"

// productDoc is the stored shape of a product. The key lives alongside the
// inlined attributes only inside this package.
type productDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	models.ProductData `bson:",inline"`
}

func (d productDoc) toModel() models.Product {
	return models.Product{
		ID:          database.EncodeDocumentID(d.ID),
		ProductData: d.ProductData,
	}
}

type ProductRepository struct {
	store *database.Store
}

func NewProductRepository(store *database.Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	var docs []productDoc
	if err := r.store.Find(ctx, productCollection, bson.M{}, &docs); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var doc productDoc
	if err := r.store.FindByID(ctx, productCollection, id, &doc); err != nil {
		return nil, err
	}
	product := doc.toModel()
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, data models.ProductData) (primitive.ObjectID, error) {
	return r.store.Insert(ctx, productCollection, data)
}

func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, data models.ProductData) (int64, error) {
	return r.store.Update(ctx, productCollection, id, data)
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.store.Delete(ctx, productCollection, id)
}
