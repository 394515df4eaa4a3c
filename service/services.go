package service

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Happykiller/DraftDream-sub004/audit"
	"github.com/Happykiller/DraftDream-sub004/dao"
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/util"
)

// Services bundles every usecase for wiring into the controllers.
type Services struct {
	Auth     IAuthService
	User     IUserService
	Client   ICrudService[model.Client]
	Prospect IProspectService
	Program  ICrudService[model.Program]
	Session  ICrudService[model.WorkoutSession]
	Exercise ICrudService[model.Exercise]
	Meal     ICrudService[model.Meal]
	MealDay  ICrudService[model.MealDay]
	MealPlan ICrudService[model.MealPlan]
	Note     ICrudService[model.Note]
	Task     ICrudService[model.Task]
	Audit    audit.Service
}

func InitializeServices(
	db *mongo.Database,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	authSecret string,
	tokenTTL time.Duration,
) (*Services, error) {
	userStore := dao.NewUserStore(db)

	services := &Services{
		Auth: NewAuthService(userStore, authSecret, tokenTTL),
		User: NewUserService(
			userStore, validationUtil.ValidateUser,
			cacheService, notificationSvc, eventBus, auditService),
		Client: NewCrudService[model.Client](
			model.ClientDescriptor,
			dao.NewMongoStore[model.Client](db, model.ClientDescriptor),
			validationUtil.ValidateClient,
			cacheService, notificationSvc, eventBus, auditService),
		Prospect: NewProspectService(
			dao.NewMongoStore[model.Prospect](db, model.ProspectDescriptor),
			validationUtil.ValidateProspect,
			cacheService, notificationSvc, eventBus, auditService),
		Program: NewCrudService[model.Program](
			model.ProgramDescriptor,
			dao.NewMongoStore[model.Program](db, model.ProgramDescriptor),
			func(p *model.Program) error { return validationUtil.ValidateLocalized(&p.Localized) },
			cacheService, notificationSvc, eventBus, auditService),
		Session: NewCrudService[model.WorkoutSession](
			model.SessionDescriptor,
			dao.NewMongoStore[model.WorkoutSession](db, model.SessionDescriptor),
			func(s *model.WorkoutSession) error { return validationUtil.ValidateLocalized(&s.Localized) },
			cacheService, notificationSvc, eventBus, auditService),
		Exercise: NewCrudService[model.Exercise](
			model.ExerciseDescriptor,
			dao.NewMongoStore[model.Exercise](db, model.ExerciseDescriptor),
			func(e *model.Exercise) error { return validationUtil.ValidateLocalized(&e.Localized) },
			cacheService, notificationSvc, eventBus, auditService),
		Meal: NewCrudService[model.Meal](
			model.MealDescriptor,
			dao.NewMongoStore[model.Meal](db, model.MealDescriptor),
			func(m *model.Meal) error { return validationUtil.ValidateLocalized(&m.Localized) },
			cacheService, notificationSvc, eventBus, auditService),
		MealDay: NewCrudService[model.MealDay](
			model.MealDayDescriptor,
			dao.NewMongoStore[model.MealDay](db, model.MealDayDescriptor),
			func(m *model.MealDay) error { return validationUtil.ValidateLocalized(&m.Localized) },
			cacheService, notificationSvc, eventBus, auditService),
		MealPlan: NewCrudService[model.MealPlan](
			model.MealPlanDescriptor,
			dao.NewMongoStore[model.MealPlan](db, model.MealPlanDescriptor),
			func(m *model.MealPlan) error { return validationUtil.ValidateLocalized(&m.Localized) },
			cacheService, notificationSvc, eventBus, auditService),
		Note: NewCrudService[model.Note](
			model.NoteDescriptor,
			dao.NewMongoStore[model.Note](db, model.NoteDescriptor),
			validationUtil.ValidateNote,
			cacheService, notificationSvc, eventBus, auditService),
		Task: NewCrudService[model.Task](
			model.TaskDescriptor,
			dao.NewMongoStore[model.Task](db, model.TaskDescriptor),
			validationUtil.ValidateTask,
			cacheService, notificationSvc, eventBus, auditService),
		Audit: auditService,
	}

	return services, nil
}
