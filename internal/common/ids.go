package common

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID validates a path or query identifier.
func ParseID(raw, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, InvalidArgument("invalid " + name)
	}
	return id, nil
}
