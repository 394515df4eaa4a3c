package model

import "go.mongodb.org/mongo-driver/bson"

// User is an account on the platform: an admin, a coach, or an athlete.
type User struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`

	Email        string `bson:"email" json:"email" binding:"required,email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Password     string `bson:"-" json:"password,omitempty"`
	FirstName    string `bson:"firstName" json:"first_name"`
	LastName     string `bson:"lastName" json:"last_name"`
	Role         Role   `bson:"role" json:"role" binding:"required"`
}

// UserPatch carries the updatable user fields; nil means "leave unchanged".
type UserPatch struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

func (p *UserPatch) Patch() bson.M {
	set := bson.M{}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.FirstName != nil {
		set["firstName"] = *p.FirstName
	}
	if p.LastName != nil {
		set["lastName"] = *p.LastName
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	return set
}
