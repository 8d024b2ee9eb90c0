package service

import "go-lists-api/model"

// Decision is the outcome of an ownership check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Authorize allows actor to mutate a resource only when actor is its owner.
// There is no role hierarchy and no admin override.
func Authorize(actor model.Identity, ownerID int) Decision {
	if actor.ID == ownerID {
		return Allow
	}
	return Deny
}

// RequireOwner is Authorize expressed as an error. Callers must run it after
// the resource has been loaded and before anything is written.
func RequireOwner(actor model.Identity, ownerID int) error {
	if Authorize(actor, ownerID) == Deny {
		return ErrNotAuthorized
	}
	return nil
}
