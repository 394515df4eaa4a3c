package model

import "go.mongodb.org/mongo-driver/bson"

// LocalizedPatch carries the fields shared by every library entity patch.
// A label change triggers slug re-derivation in the usecase layer.
type LocalizedPatch struct {
	Label      *string `json:"label,omitempty"`
	Locale     *string `json:"locale,omitempty"`
	Visibility *string `json:"visibility,omitempty"`
}

func (p *LocalizedPatch) Patch() bson.M {
	set := bson.M{}
	if p.Label != nil {
		set["label"] = *p.Label
	}
	if p.Locale != nil {
		set["locale"] = *p.Locale
	}
	if p.Visibility != nil {
		set["visibility"] = NormalizeVisibility(*p.Visibility)
	}
	return set
}

// LabelPatch exposes the pending label so the usecase layer can recompute
// the slug when the label changes.
func (p *LocalizedPatch) LabelPatch() *string { return p.Label }
