package model

// Entity matrix: which access-control and storage features each entity type
// participates in. The generic store, usecase and controller layers are all
// driven by these.
var (
	UserDescriptor = Descriptor{
		Entity:       "USER",
		Topic:        "user",
		Collection:   "users",
		SearchFields: []string{"email", "firstName", "lastName"},
	}

	ClientDescriptor = Descriptor{
		Entity:       "CLIENT",
		Topic:        "client",
		Collection:   "clients",
		SoftDelete:   true,
		SearchFields: []string{"firstName", "lastName", "email"},
	}

	ProspectDescriptor = Descriptor{
		Entity:       "PROSPECT",
		Topic:        "prospect",
		Collection:   "prospects",
		SoftDelete:   true,
		SearchFields: []string{"firstName", "lastName", "email"},
	}

	ProgramDescriptor = Descriptor{
		Entity:       "PROGRAM",
		Topic:        "program",
		Collection:   "programs",
		Shareable:    true,
		Assignable:   true,
		Slugged:      true,
		SearchFields: []string{"label", "slug"},
	}

	SessionDescriptor = Descriptor{
		Entity:       "SESSION",
		Topic:        "session",
		Collection:   "sessions",
		Shareable:    true,
		Slugged:      true,
		SearchFields: []string{"label", "slug"},
	}

	ExerciseDescriptor = Descriptor{
		Entity:       "EXERCISE",
		Topic:        "exercise",
		Collection:   "exercises",
		Shareable:    true,
		Slugged:      true,
		SearchFields: []string{"label", "slug"},
	}

	MealDescriptor = Descriptor{
		Entity:       "MEAL",
		Topic:        "meal",
		Collection:   "meals",
		Shareable:    true,
		Slugged:      true,
		SearchFields: []string{"label", "slug"},
	}

	MealDayDescriptor = Descriptor{
		Entity:       "MEAL_DAY",
		Topic:        "meal_day",
		Collection:   "meal_days",
		Shareable:    true,
		Slugged:      true,
		SearchFields: []string{"label", "slug"},
	}

	MealPlanDescriptor = Descriptor{
		Entity:       "MEAL_PLAN",
		Topic:        "meal_plan",
		Collection:   "meal_plans",
		Shareable:    true,
		Assignable:   true,
		Slugged:      true,
		SearchFields: []string{"label", "slug"},
	}

	NoteDescriptor = Descriptor{
		Entity:       "NOTE",
		Topic:        "note",
		Collection:   "notes",
		SearchFields: []string{"title"},
	}

	TaskDescriptor = Descriptor{
		Entity:       "TASK",
		Topic:        "task",
		Collection:   "tasks",
		SearchFields: []string{"title"},
	}
)
