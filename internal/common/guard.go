package common

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequireOwner fails with PermissionDenied unless actor owns the entity.
// ObjectIDs are byte arrays, so == compares the identifier value.
func RequireOwner(owner, actor primitive.ObjectID, action string) error {
	if actor.IsZero() || owner != actor {
		return PermissionDenied("you are not allowed to " + action)
	}
	return nil
}
