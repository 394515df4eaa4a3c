package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ProspectStatus is the lifecycle stage of a sales prospect.
type ProspectStatus string

const (
	ProspectLead      ProspectStatus = "LEAD"
	ProspectContacted ProspectStatus = "CONTACTED"
	ProspectMeeting   ProspectStatus = "MEETING"
	ProspectWon       ProspectStatus = "WON"
	ProspectLost      ProspectStatus = "LOST"
)

func (s ProspectStatus) Valid() bool {
	switch s {
	case ProspectLead, ProspectContacted, ProspectMeeting, ProspectWon, ProspectLost:
		return true
	}
	return false
}

// WorkflowEntry is one immutable step in a prospect's status history.
type WorkflowEntry struct {
	Status string    `bson:"status" json:"status"`
	Date   time.Time `bson:"date" json:"date"`
}

// Prospect is a potential client moving through the sales workflow. Every
// status change appends to WorkflowHistory; entries are never rewritten.
type Prospect struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`

	FirstName       string          `bson:"firstName" json:"first_name" binding:"required"`
	LastName        string          `bson:"lastName" json:"last_name" binding:"required"`
	Email           string          `bson:"email" json:"email" binding:"omitempty,email"`
	Phone           string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Status          ProspectStatus  `bson:"status" json:"status"`
	WorkflowHistory []WorkflowEntry `bson:"workflowHistory" json:"workflow_history"`
}

type ProspectPatch struct {
	FirstName *string         `json:"first_name,omitempty"`
	LastName  *string         `json:"last_name,omitempty"`
	Email     *string         `json:"email,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
	Status    *ProspectStatus `json:"status,omitempty"`
}

func (p *ProspectPatch) Patch() bson.M {
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
	if p.Status != nil {
		set["status"] = *p.Status
	}
	return set
}
