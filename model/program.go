package model

import "go.mongodb.org/mongo-driver/bson"

// Program is a training plan assigned to an athlete. The assignee (UserID)
// may read it even when it is private; the creator keeps full rights.
type Program struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`
	Localized `bson:",inline"`

	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	DurationWk  int      `bson:"durationWeeks,omitempty" json:"duration_weeks,omitempty"`
	SessionIDs  []string `bson:"sessionIds,omitempty" json:"session_ids,omitempty"`
}

type ProgramPatch struct {
	LocalizedPatch

	Description *string   `json:"description,omitempty"`
	DurationWk  *int      `json:"duration_weeks,omitempty"`
	SessionIDs  *[]string `json:"session_ids,omitempty"`
	UserID      *string   `json:"user_id,omitempty"`
}

func (p *ProgramPatch) Patch() bson.M {
	set := p.LocalizedPatch.Patch()
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.DurationWk != nil {
		set["durationWeeks"] = *p.DurationWk
	}
	if p.SessionIDs != nil {
		set["sessionIds"] = *p.SessionIDs
	}
	if p.UserID != nil {
		set["userId"] = *p.UserID
	}
	return set
}
