package authz

import (
	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	"github.com/Happykiller/DraftDream-sub004/model"
)

// Scope restricts a list query to the documents the session may read. It is
// applied to the store filter before the query runs, so pagination totals
// reflect only visible documents.
type Scope struct {
	// CreatedBy, when set, restricts to documents created by this user.
	CreatedBy string
	// AllowPublic widens CreatedBy with an OR on visibility == PUBLIC.
	AllowPublic bool
	// Assignee, when set, restricts to documents assigned to this user.
	Assignee string
}

// Unrestricted reports whether the scope adds no constraint.
func (s Scope) Unrestricted() bool {
	return s.CreatedBy == "" && s.Assignee == "" && !s.AllowPublic
}

// ScopeFor translates a session plus an optional caller-supplied createdBy
// filter into the scope for one entity type.
//
// ADMIN passes through, optionally narrowed by the explicit createdBy.
// COACH is pinned to their own documents (plus PUBLIC ones for shareable
// entities); asking for another coach's createdBy is rejected outright, never
// silently narrowed. ATHLETE only lists assignable entities, scoped to
// documents assigned to them.
func ScopeFor(session model.Session, desc model.Descriptor, createdBy string) (Scope, error) {
	switch session.Role {
	case model.RoleAdmin:
		return Scope{CreatedBy: createdBy}, nil

	case model.RoleCoach:
		if createdBy != "" {
			if createdBy != session.UserID {
				return Scope{}, draft_errors.Forbidden(draft_errors.ActionList, desc.Entity)
			}
			// Explicitly asking for own documents: no shared content.
			return Scope{CreatedBy: session.UserID}, nil
		}
		return Scope{CreatedBy: session.UserID, AllowPublic: desc.Shareable}, nil

	case model.RoleAthlete:
		if !desc.Assignable {
			return Scope{}, draft_errors.Forbidden(draft_errors.ActionList, desc.Entity)
		}
		return Scope{Assignee: session.UserID}, nil
	}

	return Scope{}, draft_errors.Forbidden(draft_errors.ActionList, desc.Entity)
}
