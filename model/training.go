package model

import "go.mongodb.org/mongo-driver/bson"

// WorkoutSession is one training session in the exercise library. Public
// sessions are readable by every coach.
type WorkoutSession struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`
	Localized `bson:",inline"`

	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	ExerciseIDs []string `bson:"exerciseIds,omitempty" json:"exercise_ids,omitempty"`
}

type WorkoutSessionPatch struct {
	LocalizedPatch

	Description *string   `json:"description,omitempty"`
	ExerciseIDs *[]string `json:"exercise_ids,omitempty"`
}

func (p *WorkoutSessionPatch) Patch() bson.M {
	set := p.LocalizedPatch.Patch()
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.ExerciseIDs != nil {
		set["exerciseIds"] = *p.ExerciseIDs
	}
	return set
}

// Exercise is a single movement in the library: sets, reps and rest are the
// coach's defaults, overridable per program.
type Exercise struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`
	Localized `bson:",inline"`

	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Sets        int    `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps        int    `bson:"reps,omitempty" json:"reps,omitempty"`
	RestSec     int    `bson:"restSec,omitempty" json:"rest_sec,omitempty"`
	VideoURL    string `bson:"videoUrl,omitempty" json:"video_url,omitempty"`
}

type ExercisePatch struct {
	LocalizedPatch

	Description *string `json:"description,omitempty"`
	Sets        *int    `json:"sets,omitempty"`
	Reps        *int    `json:"reps,omitempty"`
	RestSec     *int    `json:"rest_sec,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
}

func (p *ExercisePatch) Patch() bson.M {
	set := p.LocalizedPatch.Patch()
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Sets != nil {
		set["sets"] = *p.Sets
	}
	if p.Reps != nil {
		set["reps"] = *p.Reps
	}
	if p.RestSec != nil {
		set["restSec"] = *p.RestSec
	}
	if p.VideoURL != nil {
		set["videoUrl"] = *p.VideoURL
	}
	return set
}
