package policy

import "github.com/gofrs/uuid"

// Owned is any resource with a single owning author.
type Owned interface {
	OwnerID() uuid.UUID
}

// IsAuthor reports whether the actor owns the resource. An anonymous
// actor (nil uuid) never does. Callers that deny a mutation must fall
// back to a redirect to the associated post's detail page, not an
// error response.
func IsAuthor(actorID uuid.UUID, resource Owned) bool {
	if actorID == uuid.Nil {
		return false
	}
	return resource.OwnerID() == actorID
}
