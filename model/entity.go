package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visibility controls whether library content is readable by coaches other
// than its creator. Stored uppercase; lowercase input is normalized.
type Visibility string

const (
	VisibilityPrivate Visibility = "PRIVATE"
	VisibilityPublic  Visibility = "PUBLIC"
)

// NormalizeVisibility maps the mixed-case literals found in legacy data onto
// the canonical uppercase values. Anything unrecognized falls back to PRIVATE.
func NormalizeVisibility(v string) Visibility {
	switch v {
	case "PUBLIC", "public":
		return VisibilityPublic
	default:
		return VisibilityPrivate
	}
}

// Base carries the store identity and timestamps shared by every entity.
type Base struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
	DeletedAt *time.Time         `bson:"deletedAt,omitempty" json:"-"`
}

func (b *Base) IDHex() string {
	if b.ID.IsZero() {
		return ""
	}
	return b.ID.Hex()
}

func (b *Base) SetID(id primitive.ObjectID) { b.ID = id }

// Stamp sets creation timestamps on first write.
func (b *Base) Stamp(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// Document is satisfied by every entity through its embedded Base.
type Document interface {
	IDHex() string
	SetID(primitive.ObjectID)
	Stamp(time.Time)
}

// Ownership records who created a resource, who it is assigned to, and how
// widely it may be read. CreatedBy is immutable after creation.
type Ownership struct {
	CreatedBy  string     `bson:"createdBy" json:"created_by"`
	Visibility Visibility `bson:"visibility,omitempty" json:"visibility,omitempty"`
	UserID     string     `bson:"userId,omitempty" json:"user_id,omitempty"`
}

func (o *Ownership) ResourceCreator() string        { return o.CreatedBy }
func (o *Ownership) ResourceVisibility() Visibility { return o.Visibility }
func (o *Ownership) ResourceAssignee() string       { return o.UserID }

func (o *Ownership) SetCreator(userID string)   { o.CreatedBy = userID }
func (o *Ownership) SetVisibility(v Visibility) { o.Visibility = v }

// Localized content keyed by slug+locale; the pair is unique per collection.
type Localized struct {
	Label  string `bson:"label" json:"label" binding:"required"`
	Slug   string `bson:"slug" json:"slug"`
	Locale string `bson:"locale" json:"locale" binding:"required"`
}

func (l *Localized) LabelValue() string  { return l.Label }
func (l *Localized) SetSlug(slug string) { l.Slug = slug }

// Page is the uniform list response shape: 1-based page, limit default 20.
type Page[T any] struct {
	Items []*T  `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
}

// Descriptor describes how one entity type participates in the generic CRUD
// pipeline: its error-code token, collection, and which access-control and
// storage features apply to it.
type Descriptor struct {
	// Entity is the token used in domain error codes, e.g. "MEAL_PLAN".
	Entity string
	// Topic is the event-bus prefix, e.g. "meal_plan".
	Topic      string
	Collection string
	// Shareable entities honor the PUBLIC visibility flag for coach reads.
	Shareable bool
	// Assignable entities carry a userId assignee athletes may read and list.
	Assignable bool
	// Slugged entities derive slug from label and are unique on slug+locale.
	Slugged bool
	// SoftDelete entities are flagged deleted rather than removed.
	SoftDelete bool
	// SearchFields are matched case-insensitively by the q list parameter.
	SearchFields []string
}
