package model

// Role of an authenticated user.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCoach   Role = "COACH"
	RoleAthlete Role = "ATHLETE"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoach, RoleAthlete:
		return true
	}
	return false
}

// Session identifies the acting user for one request. It is built by the
// auth middleware from a verified token and never persisted.
type Session struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// Complete reports whether the transport layer produced a usable session.
// A partial session is a transport bug and must be rejected upstream.
func (s Session) Complete() bool {
	return s.UserID != "" && s.Role.Valid()
}
