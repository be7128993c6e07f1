package helpers

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// EncodeBSON marshals a struct or map into a BSON document.
func EncodeBSON(value any) ([]byte, error) {
	bsonData, err := bson.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("error encoding BSON: %w", err)
	}
	return bsonData, nil
}
