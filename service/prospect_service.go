package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Happykiller/DraftDream-sub004/audit"
	"github.com/Happykiller/DraftDream-sub004/authz"
	"github.com/Happykiller/DraftDream-sub004/dao"
	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/util"
)

// IProspectService is the prospect usecase contract: generic CRUD plus the
// status workflow.
type IProspectService interface {
	ICrudService[model.Prospect]
}

// ProspectService layers the status workflow history on top of the generic
// CRUD pipeline. The history is append-only: creation writes the first entry,
// every status change appends one, and nothing ever rewrites old entries.
type ProspectService struct {
	*CrudService[model.Prospect]
}

var _ IProspectService = &ProspectService{}

func NewProspectService(
	store dao.Store[model.Prospect],
	validate func(*model.Prospect) error,
	cache Cache,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	auditSvc audit.Service,
) *ProspectService {
	return &ProspectService{
		CrudService: NewCrudService[model.Prospect](
			model.ProspectDescriptor, store, validate, cache, notificationSvc, eventBus, auditSvc,
		),
	}
}

// Create seeds the workflow history with the initial "create" entry.
func (s *ProspectService) Create(ctx context.Context, session model.Session, prospect *model.Prospect) (*model.Prospect, error) {
	if prospect.Status == "" {
		prospect.Status = model.ProspectLead
	}
	prospect.WorkflowHistory = []model.WorkflowEntry{{Status: "create", Date: time.Now()}}
	return s.CrudService.Create(ctx, session, prospect)
}

// Update appends a workflow entry when the patch moves the prospect to a new
// status. A patch that does not touch status leaves the history alone.
func (s *ProspectService) Update(ctx context.Context, session model.Session, id string, patch Patcher) (*model.Prospect, error) {
	existing, err := s.loadForWrite(ctx, session, id, draft_errors.ActionUpdate, authz.OpWrite)
	if err != nil || existing == nil {
		return nil, err
	}

	set := patch.Patch()
	if len(set) == 0 {
		return existing, nil
	}
	update := bson.M{"$set": set}

	if next, ok := set["status"].(model.ProspectStatus); ok {
		// The history is append-only; an unknown stage would corrupt it
		// for good.
		if !next.Valid() {
			return nil, draft_errors.Invalid(model.ProspectDescriptor.Entity,
				fmt.Errorf("prospect status %q is not a known stage", next))
		}
		if next != existing.Status {
			update["$push"] = bson.M{"workflowHistory": model.WorkflowEntry{
				Status: string(next),
				Date:   time.Now(),
			}}
		}
	}

	return s.applyUpdate(ctx, session, id, update)
}
