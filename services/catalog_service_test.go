package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront-service/apperrors"
	"storefront-service/database"
	"storefront-service/models"
	"storefront-service/services"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ---- fake repository ----

type fakeProductRepo struct {
	byID      map[primitive.ObjectID]models.ProductData
	nextID    primitive.ObjectID
	calls     int
	createErr error
	findErr   error
}

func newFakeRepo() *fakeProductRepo {
	return &fakeProductRepo{
		byID:   map[primitive.ObjectID]models.ProductData{},
		nextID: primitive.NewObjectID(),
	}
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	f.calls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]models.Product, 0, len(f.byID))
	for id, data := range f.byID {
		out = append(out, models.Product{ID: database.EncodeDocumentID(id), ProductData: data})
	}
	return out, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	f.calls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	data, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &models.Product{ID: database.EncodeDocumentID(id), ProductData: data}, nil
}

func (f *fakeProductRepo) Create(_ context.Context, data models.ProductData) (primitive.ObjectID, error) {
	f.calls++
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	f.byID[f.nextID] = data
	return f.nextID, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id primitive.ObjectID, data models.ProductData) (int64, error) {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	f.byID[id] = data
	return 1, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	f.calls++
	if _, ok := f.byID[id]; !ok {
		return 0, nil
	}
	delete(f.byID, id)
	return 1, nil
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func greenTeaIn() models.ProductIn {
	return models.ProductIn{Title: "Green Tea", Price: floatPtr(9.99)}
}

func TestCatalogUnavailableWithoutStore(t *testing.T) {
	svc := services.NewCatalogService(nil, zap.NewNop())
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	_, err = svc.Create(ctx, greenTeaIn())
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	_, err = svc.Get(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	_, err = svc.Update(ctx, primitive.NewObjectID().Hex(), greenTeaIn())
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	err = svc.Delete(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestCatalogCreateAppliesDefaultsAndRereads(t *testing.T) {
	repo := newFakeRepo()
	svc := services.NewCatalogService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), greenTeaIn())

	assert.NoError(t, err)
	assert.Equal(t, database.EncodeDocumentID(repo.nextID), created.ID)
	assert.Equal(t, "Green Tea", created.Title)
	assert.Equal(t, 9.99, created.Price)
	assert.Equal(t, models.DefaultCategory, created.Category)
	assert.True(t, created.InStock)
	assert.Equal(t, models.DefaultStock, created.Stock)
	assert.Equal(t, []string{}, created.Images)
	assert.Equal(t, []string{}, created.Tags)
}

func TestCatalogCreateKeepsExplicitZeroValues(t *testing.T) {
	repo := newFakeRepo()
	svc := services.NewCatalogService(repo, zap.NewNop())

	in := greenTeaIn()
	in.InStock = boolPtr(false)
	stock := 0
	in.Stock = &stock

	created, err := svc.Create(context.Background(), in)

	assert.NoError(t, err)
	assert.False(t, created.InStock)
	assert.Equal(t, 0, created.Stock)
}

func TestCatalogCreateRereadFailureIsServerFault(t *testing.T) {
	repo := newFakeRepo()
	svc := services.NewCatalogService(repo, zap.NewNop())
	// insert succeeds, the immediate re-read misses
	repo.findErr = mongo.ErrNoDocuments

	_, err := svc.Create(context.Background(), greenTeaIn())

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	}
}

func TestCatalogGetMalformedIDNeverReachesStore(t *testing.T) {
	repo := newFakeRepo()
	svc := services.NewCatalogService(repo, zap.NewNop())

	for _, id := range []string{"", "nope", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := svc.Get(context.Background(), id)
		assert.ErrorIs(t, err, database.ErrInvalidDocumentID, "id %q", id)
		var appErr *apperrors.Error
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, http.StatusNotFound, appErr.Code)
		}
	}
	assert.Equal(t, 0, repo.calls)
}

func TestCatalogGetUnknownIDIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := services.NewCatalogService(repo, zap.NewNop())

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestCatalogCreateThenGetRoundTrips(t *testing.T) {
	repo := newFakeRepo()
	svc := services.NewCatalogService(repo, zap.NewNop())

	in := models.ProductIn{
		Title:          "Oolong",
		Description:    "Roasted",
		Price:          floatPtr(14.25),
		CompareAtPrice: floatPtr(19.99),
		Category:       "Specialty",
		Images:         []string{"https://img/oolong.png"},
		Tags:           []string{"roasted", "premium"},
	}
	created, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCatalogUpdateUnknownIDIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := services.NewCatalogService(repo, zap.NewNop())

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), greenTeaIn())
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)

	err = svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestCatalogUpdateRereadsStoredRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := services.NewCatalogService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), greenTeaIn())
	assert.NoError(t, err)

	in := greenTeaIn()
	in.Price = floatPtr(11.49)
	updated, err := svc.Update(context.Background(), created.ID, in)

	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 11.49, updated.Price)
}

func TestCatalogDeleteRemovesRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := services.NewCatalogService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), greenTeaIn())
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestCatalogListSurfacesStoreErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("socket closed")
	svc := services.NewCatalogService(repo, zap.NewNop())

	_, err := svc.List(context.Background())

	var appErr *apperrors.Error
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	}
}
