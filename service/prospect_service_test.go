package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/service"
	"github.com/Happykiller/DraftDream-sub004/test/mock"
)

func newProspectService(store *mock.MockStore[model.Prospect]) *service.ProspectService {
	return service.NewProspectService(store, nil, nil, nil, nil, nil)
}

func TestProspectServiceCreate(t *testing.T) {
	ctx := context.Background()
	coach := model.Session{UserID: "coach-1", Role: model.RoleCoach}

	t.Run("SeedsWorkflowHistory", func(t *testing.T) {
		store := new(mock.MockStore[model.Prospect])
		svc := newProspectService(store)

		prospect := &model.Prospect{FirstName: "Lea", LastName: "Martin"}
		store.On("Create", testify_mock.Anything, prospect).Return(prospect, nil)

		created, err := svc.Create(ctx, coach, prospect)
		assert.NoError(t, err)
		assert.Equal(t, model.ProspectLead, created.Status)
		assert.Len(t, created.WorkflowHistory, 1)
		assert.Equal(t, "create", created.WorkflowHistory[0].Status)
		assert.False(t, created.WorkflowHistory[0].Date.IsZero())
	})

	t.Run("KeepsExplicitStatus", func(t *testing.T) {
		store := new(mock.MockStore[model.Prospect])
		svc := newProspectService(store)

		prospect := &model.Prospect{FirstName: "Lea", LastName: "Martin", Status: model.ProspectContacted}
		store.On("Create", testify_mock.Anything, prospect).Return(prospect, nil)

		created, err := svc.Create(ctx, coach, prospect)
		assert.NoError(t, err)
		assert.Equal(t, model.ProspectContacted, created.Status)
	})
}

func TestProspectServiceUpdate(t *testing.T) {
	ctx := context.Background()
	coach := model.Session{UserID: "coach-1", Role: model.RoleCoach}

	existing := &model.Prospect{Status: model.ProspectLead}
	existing.CreatedBy = "coach-1"

	t.Run("StatusChangeAppendsHistory", func(t *testing.T) {
		store := new(mock.MockStore[model.Prospect])
		svc := newProspectService(store)
		store.On("Get", testify_mock.Anything, "66b1").Return(existing, nil)

		var seen bson.M
		store.On("Update", testify_mock.Anything, "66b1", testify_mock.Anything).
			Run(func(args testify_mock.Arguments) {
				seen = args.Get(2).(bson.M)
			}).
			Return(existing, nil)

		status := model.ProspectContacted
		_, err := svc.Update(ctx, coach, "66b1", &model.ProspectPatch{Status: &status})
		assert.NoError(t, err)

		push, ok := seen["$push"].(bson.M)
		assert.True(t, ok)
		entry := push["workflowHistory"].(model.WorkflowEntry)
		assert.Equal(t, "CONTACTED", entry.Status)
		assert.False(t, entry.Date.IsZero())
	})

	t.Run("SameStatusLeavesHistoryAlone", func(t *testing.T) {
		store := new(mock.MockStore[model.Prospect])
		svc := newProspectService(store)
		store.On("Get", testify_mock.Anything, "66b1").Return(existing, nil)

		var seen bson.M
		store.On("Update", testify_mock.Anything, "66b1", testify_mock.Anything).
			Run(func(args testify_mock.Arguments) {
				seen = args.Get(2).(bson.M)
			}).
			Return(existing, nil)

		status := model.ProspectLead
		_, err := svc.Update(ctx, coach, "66b1", &model.ProspectPatch{Status: &status})
		assert.NoError(t, err)
		assert.NotContains(t, seen, "$push")
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		store := new(mock.MockStore[model.Prospect])
		svc := newProspectService(store)
		store.On("Get", testify_mock.Anything, "66b1").Return(existing, nil)

		status := model.ProspectStatus("ARCHIVED")
		_, err := svc.Update(ctx, coach, "66b1", &model.ProspectPatch{Status: &status})
		assert.Equal(t, "INVALID_PROSPECT_DATA", draft_errors.Code(err))
		store.AssertNotCalled(t, "Update")
	})

	t.Run("EmptyPatchIsNoOp", func(t *testing.T) {
		store := new(mock.MockStore[model.Prospect])
		svc := newProspectService(store)
		store.On("Get", testify_mock.Anything, "66b1").Return(existing, nil)

		updated, err := svc.Update(ctx, coach, "66b1", &model.ProspectPatch{})
		assert.NoError(t, err)
		assert.Equal(t, existing, updated)
		store.AssertNotCalled(t, "Update")
	})

	t.Run("NonStatusPatchLeavesHistoryAlone", func(t *testing.T) {
		store := new(mock.MockStore[model.Prospect])
		svc := newProspectService(store)
		store.On("Get", testify_mock.Anything, "66b1").Return(existing, nil)

		var seen bson.M
		store.On("Update", testify_mock.Anything, "66b1", testify_mock.Anything).
			Run(func(args testify_mock.Arguments) {
				seen = args.Get(2).(bson.M)
			}).
			Return(existing, nil)

		phone := "+33612345678"
		_, err := svc.Update(ctx, coach, "66b1", &model.ProspectPatch{Phone: &phone})
		assert.NoError(t, err)
		assert.NotContains(t, seen, "$push")
		assert.Equal(t, "+33612345678", seen["$set"].(bson.M)["phone"])
	})
}
