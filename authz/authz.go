// Package authz decides, per user and report, whether an operation is
// permitted, and derives the owner restriction applied to list queries.
// Decisions are computed fresh on every call; nothing is cached between
// requests.
package authz

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/chinmayjoshi03/CivicConnect/models"
)

// IsOwner reports whether the report belongs to the user.
func IsOwner(user *models.User, report *models.Report) bool {
	return report.User == user.ID
}

// CanView reports whether the user may read the report directly: admins
// always, citizens only when they own it.
func CanView(user *models.User, report *models.Report) bool {
	if user.IsAdmin() {
		return true
	}
	return IsOwner(user, report)
}

// CanEdit reports whether the user may mutate the report (status appends).
// The rule matches CanView today but the two are separate decision points
// and callers must not substitute one for the other.
func CanEdit(user *models.User, report *models.Report) bool {
	if user.IsAdmin() {
		return true
	}
	return IsOwner(user, report)
}

// Scope derives the owner restriction for list queries. Citizens are always
// pinned to their own reports; any owner filter they supply is ignored, not
// rejected. Admins are unrestricted (nil) unless they supply a target user
// id, which must be a well-formed object id.
func Scope(user *models.User, requestedOwner string) (*primitive.ObjectID, error) {
	if !user.IsAdmin() {
		owner := user.ID
		return &owner, nil
	}

	if requestedOwner == "" {
		return nil, nil
	}

	owner, err := primitive.ObjectIDFromHex(requestedOwner)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q", requestedOwner)
	}
	return &owner, nil
}
