package database

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidDocumentID reports a client-supplied id that is not a
// well-formed document key.
var ErrInvalidDocumentID = errors.New("invalid document id")

// EncodeDocumentID converts a storage key into its client-facing string form.
func EncodeDocumentID(id primitive.ObjectID) string {
	return id.Hex()
}

// DecodeDocumentID parses a client-supplied id string into a storage key.
// It fails closed: any string that is not a 24-character hex ObjectID is
// rejected, never partially matched.
func DecodeDocumentID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidDocumentID, id)
	}
	return oid, nil
}
