package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is a thin generic adapter over named MongoDB collections. Typed
// repositories are built on top of it; nothing above this package touches
// the mongo driver's collection API directly.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Insert stores a new document and returns its assigned key.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// FindByID decodes the document with the given key into out. Returns
// mongo.ErrNoDocuments when no document matches.
func (s *Store) FindByID(ctx context.Context, collection string, id primitive.ObjectID, out interface{}) error {
	return s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
}

// Find decodes all documents matching filter into out (a pointer to a slice).
// Each call opens a fresh cursor; result order is unspecified.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// Update replaces the stored fields of the document with the given key and
// returns the number of matched documents. A zero count means not found.
func (s *Store) Update(ctx context.Context, collection string, id primitive.ObjectID, fields interface{}) (int64, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes the document with the given key and returns the number of
// deleted documents. A zero count means not found.
func (s *Store) Delete(ctx context.Context, collection string, id primitive.ObjectID) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Collections lists the collection names of the underlying database.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}
