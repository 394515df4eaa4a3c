// Package service holds the usecases: every operation runs the same guard —
// resolve access, touch the store, normalize failures to domain error codes.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Happykiller/DraftDream-sub004/audit"
	"github.com/Happykiller/DraftDream-sub004/authz"
	"github.com/Happykiller/DraftDream-sub004/dao"
	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	logger "github.com/Happykiller/DraftDream-sub004/logging"
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/util"
)

// Patcher turns a typed partial-update payload into a Mongo $set document.
// Nil fields stay out of the patch entirely.
type Patcher interface {
	Patch() bson.M
}

// labelPatcher is implemented by library entity patches; a changed label
// re-derives the slug.
type labelPatcher interface {
	LabelPatch() *string
}

// slugged is satisfied by library entities through model.Localized.
type slugged interface {
	LabelValue() string
	SetSlug(string)
}

// ownable is satisfied by every entity through model.Ownership.
type ownable interface {
	authz.Resource
	SetCreator(string)
	SetVisibility(model.Visibility)
}

// Cache is the slice of the Redis cache the usecases need.
type Cache interface {
	Set(ctx context.Context, collection, id string, doc any) error
	Get(ctx context.Context, collection, id string, dest any) (bool, error)
	Delete(ctx context.Context, collection, id string) error
}

// ListQuery carries the caller-supplied list parameters before scoping.
type ListQuery struct {
	Q          string
	Locale     string
	CreatedBy  string
	Visibility string
	UserID     string
	Page       int64
	Limit      int64
}

// ICrudService is the uniform usecase contract for one entity type.
type ICrudService[T any] interface {
	Create(ctx context.Context, session model.Session, doc *T) (*T, error)
	Get(ctx context.Context, session model.Session, id string) (*T, error)
	List(ctx context.Context, session model.Session, query ListQuery) (*model.Page[T], error)
	Update(ctx context.Context, session model.Session, id string, patch Patcher) (*T, error)
	Delete(ctx context.Context, session model.Session, id string) (bool, error)
}

// CrudService is the generic usecase implementation, parameterized by the
// entity's descriptor. Absence and duplicate-key conflicts surface as nil
// results; denials as FORBIDDEN codes; everything else as USECASE codes.
type CrudService[T any] struct {
	desc            model.Descriptor
	store           dao.Store[T]
	validate        func(*T) error
	cache           Cache
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	auditSvc        audit.Service
}

var _ ICrudService[model.Meal] = &CrudService[model.Meal]{}

// NewCrudService wires one entity type into the CRUD pipeline.
func NewCrudService[T any](
	desc model.Descriptor,
	store dao.Store[T],
	validate func(*T) error,
	cache Cache,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	auditSvc audit.Service,
) *CrudService[T] {
	service := &CrudService[T]{
		desc:            desc,
		store:           store,
		validate:        validate,
		cache:           cache,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		auditSvc:        auditSvc,
	}

	if eventBus != nil && notificationSvc != nil {
		eventBus.Subscribe(desc.Topic+".created", service.handleCreated)
		eventBus.Subscribe(desc.Topic+".updated", service.handleUpdated)
		eventBus.Subscribe(desc.Topic+".deleted", service.handleDeleted)
	}

	return service
}

func (s *CrudService[T]) handleCreated(ctx context.Context, event util.Event) error {
	id, _ := event.Payload.(string)
	return s.notificationSvc.NotifyEntityChange(ctx, "created", s.desc.Entity, id)
}

func (s *CrudService[T]) handleUpdated(ctx context.Context, event util.Event) error {
	id, _ := event.Payload.(string)
	return s.notificationSvc.NotifyEntityChange(ctx, "updated", s.desc.Entity, id)
}

func (s *CrudService[T]) handleDeleted(ctx context.Context, event util.Event) error {
	id, _ := event.Payload.(string)
	return s.notificationSvc.NotifyEntityChange(ctx, "deleted", s.desc.Entity, id)
}

// Create derives the ownership fields and inserts the document. A duplicate
// slug+locale pair returns nil, nil: conflict, not an error.
func (s *CrudService[T]) Create(ctx context.Context, session model.Session, doc *T) (*T, error) {
	if s.validate != nil {
		if err := s.validate(doc); err != nil {
			return nil, draft_errors.Invalid(s.desc.Entity, err)
		}
	}

	owned := any(doc).(ownable)
	owned.SetCreator(session.UserID)
	if s.desc.Shareable {
		owned.SetVisibility(model.NormalizeVisibility(string(owned.ResourceVisibility())))
	} else {
		// Non-shareable entities never carry a visibility flag; a PUBLIC
		// value smuggled into the payload would open them to every coach.
		owned.SetVisibility("")
	}
	if s.desc.Slugged {
		content := any(doc).(slugged)
		content.SetSlug(util.Slugify(content.LabelValue()))
	}
	any(doc).(model.Document).Stamp(time.Now())

	created, err := s.store.Create(ctx, doc)
	if err != nil {
		s.logFailure(draft_errors.ActionCreate, err)
		return nil, draft_errors.Usecase(draft_errors.ActionCreate, s.desc.Entity, err)
	}
	if created == nil {
		return nil, nil
	}

	id := any(created).(model.Document).IDHex()
	s.cacheSet(ctx, id, created)
	s.publish(ctx, "created", id)
	s.writeAudit(ctx, session, draft_errors.ActionCreate, id, created)

	return created, nil
}

// Get loads a resource and checks read access. Absence is nil, nil; a denial
// is the entity's GET FORBIDDEN code and is never logged.
func (s *CrudService[T]) Get(ctx context.Context, session model.Session, id string) (*T, error) {
	var doc *T
	if s.cache != nil {
		var cached T
		if ok, err := s.cache.Get(ctx, s.desc.Collection, id, &cached); err == nil && ok {
			doc = &cached
		}
	}

	if doc == nil {
		loaded, err := s.store.Get(ctx, id)
		if err != nil {
			if errors.Is(err, draft_errors.ErrInvalidObjectID) {
				return nil, err
			}
			s.logFailure(draft_errors.ActionGet, err)
			return nil, draft_errors.Usecase(draft_errors.ActionGet, s.desc.Entity, err)
		}
		if loaded == nil {
			return nil, nil
		}
		doc = loaded
		s.cacheSet(ctx, id, doc)
	}

	if !authz.CanAccess(session, any(doc).(authz.Resource), authz.OpRead) {
		return nil, draft_errors.Forbidden(draft_errors.ActionGet, s.desc.Entity)
	}
	return doc, nil
}

// List runs a scoped, paginated query. Scoping happens in the filter itself,
// before the query, so totals match the readable set.
func (s *CrudService[T]) List(ctx context.Context, session model.Session, query ListQuery) (*model.Page[T], error) {
	scope, err := authz.ScopeFor(session, s.desc, query.CreatedBy)
	if err != nil {
		return nil, err
	}

	page, err := s.store.List(ctx, dao.ListOptions{
		Q:          query.Q,
		Locale:     query.Locale,
		Visibility: model.Visibility(query.Visibility),
		UserID:     query.UserID,
		Scope:      scope,
		Page:       query.Page,
		Limit:      query.Limit,
	})
	if err != nil {
		s.logFailure(draft_errors.ActionList, err)
		return nil, draft_errors.Usecase(draft_errors.ActionList, s.desc.Entity, err)
	}
	return page, nil
}

// Update is the load-then-check-then-act guard around a partial update.
func (s *CrudService[T]) Update(ctx context.Context, session model.Session, id string, patch Patcher) (*T, error) {
	existing, err := s.loadForWrite(ctx, session, id, draft_errors.ActionUpdate, authz.OpWrite)
	if err != nil || existing == nil {
		return nil, err
	}

	set := patch.Patch()
	if len(set) == 0 {
		// An empty patch is a no-op, not a store round-trip: Mongo rejects
		// an empty $set.
		return existing, nil
	}
	if s.desc.Slugged {
		if lp, ok := patch.(labelPatcher); ok && lp.LabelPatch() != nil {
			if *lp.LabelPatch() != any(existing).(slugged).LabelValue() {
				set["slug"] = util.Slugify(*lp.LabelPatch())
			}
		}
	}

	return s.applyUpdate(ctx, session, id, bson.M{"$set": set})
}

// Delete removes the resource after the guard. Deleting a missing id is
// false with no error and no denial: not-found is not forbidden.
func (s *CrudService[T]) Delete(ctx context.Context, session model.Session, id string) (bool, error) {
	existing, err := s.loadForWrite(ctx, session, id, draft_errors.ActionDelete, authz.OpDelete)
	if err != nil || existing == nil {
		return false, err
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logFailure(draft_errors.ActionDelete, err)
		return false, draft_errors.Usecase(draft_errors.ActionDelete, s.desc.Entity, err)
	}
	if deleted {
		s.cacheDelete(ctx, id)
		s.publish(ctx, "deleted", id)
		s.writeAudit(ctx, session, draft_errors.ActionDelete, id, nil)
	}
	return deleted, nil
}

// loadForWrite resolves the resource and evaluates the access predicate for
// a mutation. nil, nil means not found; the caller maps that to nil/false.
func (s *CrudService[T]) loadForWrite(ctx context.Context, session model.Session, id, action string, op authz.Operation) (*T, error) {
	existing, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, draft_errors.ErrInvalidObjectID) {
			return nil, err
		}
		s.logFailure(action, err)
		return nil, draft_errors.Usecase(action, s.desc.Entity, err)
	}
	if existing == nil {
		return nil, nil
	}
	if !authz.CanAccess(session, any(existing).(authz.Resource), op) {
		return nil, draft_errors.Forbidden(action, s.desc.Entity)
	}
	return existing, nil
}

// applyUpdate performs the store mutation plus the cache/event/audit side
// effects. A nil result is either "gone" or a duplicate-key conflict.
func (s *CrudService[T]) applyUpdate(ctx context.Context, session model.Session, id string, update bson.M) (*T, error) {
	if set, ok := update["$set"].(bson.M); ok {
		// Every mutation refreshes updatedAt; list ordering depends on it.
		set["updatedAt"] = time.Now()
	}

	updated, err := s.store.Update(ctx, id, update)
	if err != nil {
		s.logFailure(draft_errors.ActionUpdate, err)
		return nil, draft_errors.Usecase(draft_errors.ActionUpdate, s.desc.Entity, err)
	}
	if updated == nil {
		return nil, nil
	}

	s.cacheSet(ctx, id, updated)
	s.publish(ctx, "updated", id)
	s.writeAudit(ctx, session, draft_errors.ActionUpdate, id, update)

	return updated, nil
}

func (s *CrudService[T]) publish(ctx context.Context, change, id string) {
	if s.eventBus != nil {
		s.eventBus.PublishEntityChange(ctx, s.desc.Topic, change, id)
	}
}

func (s *CrudService[T]) cacheSet(ctx context.Context, id string, doc *T) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, s.desc.Collection, id, doc); err != nil {
		logger.Warn("Failed to cache document",
			zap.Error(err),
			zap.String("collection", s.desc.Collection),
			zap.String("id", id))
	}
}

func (s *CrudService[T]) cacheDelete(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.desc.Collection, id); err != nil {
		logger.Warn("Failed to evict document from cache",
			zap.Error(err),
			zap.String("collection", s.desc.Collection),
			zap.String("id", id))
	}
}

func (s *CrudService[T]) writeAudit(ctx context.Context, session model.Session, action, resourceID string, details any) {
	if s.auditSvc == nil {
		return
	}
	var raw json.RawMessage
	if details != nil {
		raw, _ = json.Marshal(details)
	}
	entry := audit.Entry{
		Timestamp:     time.Now(),
		RequestID:     util.RequestIDFromContext(ctx),
		ActorID:       session.UserID,
		Action:        action,
		Entity:        s.desc.Entity,
		ResourceID:    resourceID,
		ChangeDetails: raw,
	}
	if err := s.auditSvc.LogMutation(ctx, entry); err != nil {
		logger.Warn("Failed to write audit entry",
			zap.Error(err),
			zap.String("entity", s.desc.Entity),
			zap.String("resourceID", resourceID))
	}
}

// logFailure emits the structured usecase failure line. Denials never pass
// through here.
func (s *CrudService[T]) logFailure(action string, err error) {
	logger.Error(fmt.Sprintf("%s#execute => %v", usecaseTag(action, s.desc.Entity), err))
}

// usecaseTag renders "CREATE" + "MEAL_PLAN" as "CreateMealPlanUsecase".
func usecaseTag(action, entity string) string {
	return camel(action) + camel(entity) + "Usecase"
}

func camel(token string) string {
	parts := strings.Split(strings.ToLower(token), "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}
