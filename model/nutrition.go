package model

import "go.mongodb.org/mongo-driver/bson"

// Meal is one recipe in the nutrition library.
type Meal struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`
	Localized `bson:",inline"`

	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Calories    int      `bson:"calories,omitempty" json:"calories,omitempty"`
	Ingredients []string `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
}

type MealPatch struct {
	LocalizedPatch

	Description *string   `json:"description,omitempty"`
	Calories    *int      `json:"calories,omitempty"`
	Ingredients *[]string `json:"ingredients,omitempty"`
}

func (p *MealPatch) Patch() bson.M {
	set := p.LocalizedPatch.Patch()
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Calories != nil {
		set["calories"] = *p.Calories
	}
	if p.Ingredients != nil {
		set["ingredients"] = *p.Ingredients
	}
	return set
}

// MealDay groups the meals of a single day.
type MealDay struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`
	Localized `bson:",inline"`

	MealIDs []string `bson:"mealIds,omitempty" json:"meal_ids,omitempty"`
}

type MealDayPatch struct {
	LocalizedPatch

	MealIDs *[]string `json:"meal_ids,omitempty"`
}

func (p *MealDayPatch) Patch() bson.M {
	set := p.LocalizedPatch.Patch()
	if p.MealIDs != nil {
		set["mealIds"] = *p.MealIDs
	}
	return set
}

// MealPlan is a multi-day nutrition plan assigned to an athlete.
type MealPlan struct {
	Base      `bson:",inline"`
	Ownership `bson:",inline"`
	Localized `bson:",inline"`

	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	MealDayIDs  []string `bson:"mealDayIds,omitempty" json:"meal_day_ids,omitempty"`
}

type MealPlanPatch struct {
	LocalizedPatch

	Description *string   `json:"description,omitempty"`
	MealDayIDs  *[]string `json:"meal_day_ids,omitempty"`
	UserID      *string   `json:"user_id,omitempty"`
}

func (p *MealPlanPatch) Patch() bson.M {
	set := p.LocalizedPatch.Patch()
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.MealDayIDs != nil {
		set["mealDayIds"] = *p.MealDayIDs
	}
	if p.UserID != nil {
		set["userId"] = *p.UserID
	}
	return set
}
