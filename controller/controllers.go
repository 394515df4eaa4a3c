package controller

import (
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/service"
)

type Controllers struct {
	Auth     *AuthController
	Audit    *AuditController
	User     *EntityController[model.User]
	Client   *EntityController[model.Client]
	Prospect *EntityController[model.Prospect]
	Program  *EntityController[model.Program]
	Session  *EntityController[model.WorkoutSession]
	Exercise *EntityController[model.Exercise]
	Meal     *EntityController[model.Meal]
	MealDay  *EntityController[model.MealDay]
	MealPlan *EntityController[model.MealPlan]
	Note     *EntityController[model.Note]
	Task     *EntityController[model.Task]
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth:  NewAuthController(services.Auth),
		Audit: NewAuditController(services.Audit),
		User: NewEntityController[model.User](services.User, "/users",
			func() service.Patcher { return &model.UserPatch{} }),
		Client: NewEntityController[model.Client](services.Client, "/clients",
			func() service.Patcher { return &model.ClientPatch{} }),
		Prospect: NewEntityController[model.Prospect](services.Prospect, "/prospects",
			func() service.Patcher { return &model.ProspectPatch{} }),
		Program: NewEntityController[model.Program](services.Program, "/programs",
			func() service.Patcher { return &model.ProgramPatch{} }),
		Session: NewEntityController[model.WorkoutSession](services.Session, "/sessions",
			func() service.Patcher { return &model.WorkoutSessionPatch{} }),
		Exercise: NewEntityController[model.Exercise](services.Exercise, "/exercises",
			func() service.Patcher { return &model.ExercisePatch{} }),
		Meal: NewEntityController[model.Meal](services.Meal, "/meals",
			func() service.Patcher { return &model.MealPatch{} }),
		MealDay: NewEntityController[model.MealDay](services.MealDay, "/meal-days",
			func() service.Patcher { return &model.MealDayPatch{} }),
		MealPlan: NewEntityController[model.MealPlan](services.MealPlan, "/meal-plans",
			func() service.Patcher { return &model.MealPlanPatch{} }),
		Note: NewEntityController[model.Note](services.Note, "/notes",
			func() service.Patcher { return &model.NotePatch{} }),
		Task: NewEntityController[model.Task](services.Task, "/tasks",
			func() service.Patcher { return &model.TaskPatch{} }),
	}
}
