package model

import "go.mongodb.org/mongo-driver/bson"

// Note is free-form coach commentary attached to a client.
type Note struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`

	ClientID string `bson:"clientId" json:"client_id" binding:"required"`
	Title    string `bson:"title" json:"title" binding:"required"`
	Body     string `bson:"body,omitempty" json:"body,omitempty"`
}

type NotePatch struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
}

func (p *NotePatch) Patch() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Body != nil {
		set["body"] = *p.Body
	}
	return set
}

// Task is a coach to-do item, optionally attached to a client.
type Task struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`

	ClientID string `bson:"clientId,omitempty" json:"client_id,omitempty"`
	Title    string `bson:"title" json:"title" binding:"required"`
	DueDate  string `bson:"dueDate,omitempty" json:"due_date,omitempty"`
	Done     bool   `bson:"done" json:"done"`
}

type TaskPatch struct {
	Title   *string `json:"title,omitempty"`
	DueDate *string `json:"due_date,omitempty"`
	Done    *bool   `json:"done,omitempty"`
}

func (p *TaskPatch) Patch() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.DueDate != nil {
		set["dueDate"] = *p.DueDate
	}
	if p.Done != nil {
		set["done"] = *p.Done
	}
	return set
}
