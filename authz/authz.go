// Package authz holds the ownership/visibility access policy applied
// uniformly to every entity type: a pure predicate for single-resource
// operations and a scope builder for list queries.
package authz

import (
	"github.com/Happykiller/DraftDream-sub004/model"
)

// Operation is what the session wants to do with a resource.
type Operation string

const (
	OpRead   Operation = "read"
	OpWrite  Operation = "write"
	OpDelete Operation = "delete"
)

// Resource is any entity the policy can decide on. Entities satisfy it
// through the embedded model.Ownership.
type Resource interface {
	ResourceCreator() string
	ResourceVisibility() model.Visibility
	ResourceAssignee() string
}

// CanAccess decides whether session may perform op on resource. Pure
// function, no side effects:
//
//  1. ADMIN is always allowed.
//  2. The creator is always allowed.
//  3. PUBLIC resources are readable by any coach.
//  4. Athletes may read resources assigned to them.
//
// Everything else is denied. A partial session is a transport bug and must
// be rejected before this predicate runs.
func CanAccess(session model.Session, resource Resource, op Operation) bool {
	if session.Role == model.RoleAdmin {
		return true
	}
	if session.UserID == resource.ResourceCreator() {
		return true
	}
	if op != OpRead {
		return false
	}
	if resource.ResourceVisibility() == model.VisibilityPublic && session.Role == model.RoleCoach {
		return true
	}
	if assignee := resource.ResourceAssignee(); assignee != "" &&
		session.Role == model.RoleAthlete && session.UserID == assignee {
		return true
	}
	return false
}
