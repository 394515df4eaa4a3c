package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Happykiller/DraftDream-sub004/authz"
	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	"github.com/Happykiller/DraftDream-sub004/model"
)

func TestScopeFor(t *testing.T) {
	admin := model.Session{UserID: "admin-1", Role: model.RoleAdmin}
	coach := model.Session{UserID: "coach-1", Role: model.RoleCoach}
	athlete := model.Session{UserID: "athlete-1", Role: model.RoleAthlete}

	t.Run("AdminUnrestricted", func(t *testing.T) {
		scope, err := authz.ScopeFor(admin, model.MealDescriptor, "")
		assert.NoError(t, err)
		assert.True(t, scope.Unrestricted())
	})

	t.Run("AdminNarrowedByExplicitCreator", func(t *testing.T) {
		scope, err := authz.ScopeFor(admin, model.MealDescriptor, "coach-2")
		assert.NoError(t, err)
		assert.Equal(t, "coach-2", scope.CreatedBy)
		assert.False(t, scope.AllowPublic)
	})

	t.Run("CoachSeesOwnPlusPublicForShareable", func(t *testing.T) {
		scope, err := authz.ScopeFor(coach, model.ExerciseDescriptor, "")
		assert.NoError(t, err)
		assert.Equal(t, "coach-1", scope.CreatedBy)
		assert.True(t, scope.AllowPublic)
	})

	t.Run("CoachSeesOnlyOwnForNonShareable", func(t *testing.T) {
		scope, err := authz.ScopeFor(coach, model.ClientDescriptor, "")
		assert.NoError(t, err)
		assert.Equal(t, "coach-1", scope.CreatedBy)
		assert.False(t, scope.AllowPublic)
	})

	t.Run("CoachExplicitOwnCreatorExcludesShared", func(t *testing.T) {
		scope, err := authz.ScopeFor(coach, model.ExerciseDescriptor, "coach-1")
		assert.NoError(t, err)
		assert.Equal(t, "coach-1", scope.CreatedBy)
		assert.False(t, scope.AllowPublic)
	})

	t.Run("CoachForeignCreatorRejected", func(t *testing.T) {
		_, err := authz.ScopeFor(coach, model.ExerciseDescriptor, "coach-2")
		assert.Error(t, err)
		assert.Equal(t, "LIST_EXERCISE_FORBIDDEN", draft_errors.Code(err))
	})

	t.Run("AthleteScopedToAssignments", func(t *testing.T) {
		scope, err := authz.ScopeFor(athlete, model.ProgramDescriptor, "")
		assert.NoError(t, err)
		assert.Equal(t, "athlete-1", scope.Assignee)
		assert.Empty(t, scope.CreatedBy)
	})

	t.Run("AthleteDeniedOnNonAssignable", func(t *testing.T) {
		_, err := authz.ScopeFor(athlete, model.MealDescriptor, "")
		assert.Error(t, err)
		assert.Equal(t, "LIST_MEAL_FORBIDDEN", draft_errors.Code(err))
	})

	t.Run("UnknownRoleDenied", func(t *testing.T) {
		_, err := authz.ScopeFor(model.Session{UserID: "x", Role: "GUEST"}, model.MealDescriptor, "")
		assert.Error(t, err)
		assert.True(t, draft_errors.IsForbidden(err))
	})
}
