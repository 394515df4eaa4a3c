package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Happykiller/DraftDream-sub004/audit"
	"github.com/Happykiller/DraftDream-sub004/dao"
	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/util"
)

// IUserService is the account usecase contract.
type IUserService interface {
	ICrudService[model.User]
}

// UserService hashes credentials before the generic pipeline stores them.
type UserService struct {
	*CrudService[model.User]
}

var _ IUserService = &UserService{}

func NewUserService(
	store dao.Store[model.User],
	validate func(*model.User) error,
	cache Cache,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	auditSvc audit.Service,
) *UserService {
	return &UserService{
		CrudService: NewCrudService[model.User](
			model.UserDescriptor, store, validate, cache, notificationSvc, eventBus, auditSvc,
		),
	}
}

// Create hashes the plaintext password; the hash is all that is stored.
// Account creation is admin-only: an account's role feeds straight into the
// access predicate, so an open endpoint would mint admins.
func (s *UserService) Create(ctx context.Context, session model.Session, user *model.User) (*model.User, error) {
	if session.Role != model.RoleAdmin {
		return nil, draft_errors.Forbidden(draft_errors.ActionCreate, model.UserDescriptor.Entity)
	}
	if user.Password == "" {
		return nil, draft_errors.Invalid(model.UserDescriptor.Entity, errors.New("password cannot be empty"))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, draft_errors.Usecase(draft_errors.ActionCreate, model.UserDescriptor.Entity, err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""
	return s.CrudService.Create(ctx, session, user)
}
