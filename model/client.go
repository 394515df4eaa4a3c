package model

import "go.mongodb.org/mongo-driver/bson"

// Client is an athlete record managed by a coach. Clients are soft-deleted
// so their history stays queryable for billing disputes.
type Client struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`

	FirstName string `bson:"firstName" json:"first_name" binding:"required"`
	LastName  string `bson:"lastName" json:"last_name" binding:"required"`
	Email     string `bson:"email" json:"email" binding:"omitempty,email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Birthdate string `bson:"birthdate,omitempty" json:"birthdate,omitempty"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}

type ClientPatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Birthdate *string `json:"birthdate,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (p *ClientPatch) Patch() bson.M {
	set := bson.M{}
	if p.FirstName != nil {
		set["firstName"] = *p.FirstName
	}
	if p.LastName != nil {
		set["lastName"] = *p.LastName
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.Birthdate != nil {
		set["birthdate"] = *p.Birthdate
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	return set
}
