package dao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Happykiller/DraftDream-sub004/authz"
	"github.com/Happykiller/DraftDream-sub004/dao"
	"github.com/Happykiller/DraftDream-sub004/model"
)

func TestListOptionsNormalize(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		opts := dao.ListOptions{}
		opts.Normalize()
		assert.Equal(t, int64(1), opts.Page)
		assert.Equal(t, dao.DefaultLimit, opts.Limit)
	})

	t.Run("CapsLimit", func(t *testing.T) {
		opts := dao.ListOptions{Page: 3, Limit: 5000}
		opts.Normalize()
		assert.Equal(t, int64(3), opts.Page)
		assert.Equal(t, dao.MaxLimit, opts.Limit)
	})

	t.Run("NegativePage", func(t *testing.T) {
		opts := dao.ListOptions{Page: -2, Limit: 10}
		opts.Normalize()
		assert.Equal(t, int64(1), opts.Page)
		assert.Equal(t, int64(10), opts.Limit)
	})
}

func TestBuildListFilter(t *testing.T) {
	t.Run("UnrestrictedScope", func(t *testing.T) {
		filter := dao.BuildListFilter(model.MealDescriptor, dao.ListOptions{})
		assert.Equal(t, bson.M{}, filter)
	})

	t.Run("SoftDeleteExcluded", func(t *testing.T) {
		filter := dao.BuildListFilter(model.ClientDescriptor, dao.ListOptions{})
		assert.Equal(t, bson.M{"$exists": false}, filter["deletedAt"])
	})

	t.Run("CreatorOnlyScope", func(t *testing.T) {
		filter := dao.BuildListFilter(model.MealDescriptor, dao.ListOptions{
			Scope: authz.Scope{CreatedBy: "coach-1"},
		})
		assert.Equal(t, "coach-1", filter["createdBy"])
		assert.NotContains(t, filter, "$or")
	})

	t.Run("CreatorOrPublicScope", func(t *testing.T) {
		filter := dao.BuildListFilter(model.MealDescriptor, dao.ListOptions{
			Scope: authz.Scope{CreatedBy: "coach-1", AllowPublic: true},
		})
		assert.Equal(t, []bson.M{
			{"createdBy": "coach-1"},
			{"visibility": model.VisibilityPublic},
		}, filter["$or"])
	})

	t.Run("AssigneeScope", func(t *testing.T) {
		filter := dao.BuildListFilter(model.ProgramDescriptor, dao.ListOptions{
			Scope: authz.Scope{Assignee: "athlete-1"},
		})
		assert.Equal(t, "athlete-1", filter["userId"])
	})

	t.Run("ExplicitAssigneeFilter", func(t *testing.T) {
		filter := dao.BuildListFilter(model.ProgramDescriptor, dao.ListOptions{
			UserID: "athlete-1",
		})
		assert.Equal(t, "athlete-1", filter["userId"])
	})

	t.Run("ScopeAssigneeNotWidenedByFilter", func(t *testing.T) {
		filter := dao.BuildListFilter(model.ProgramDescriptor, dao.ListOptions{
			UserID: "athlete-2",
			Scope:  authz.Scope{Assignee: "athlete-1"},
		})
		assert.Equal(t, "athlete-1", filter["userId"])
	})

	t.Run("LocaleAndVisibilityFilters", func(t *testing.T) {
		filter := dao.BuildListFilter(model.MealDescriptor, dao.ListOptions{
			Locale:     "fr",
			Visibility: "public",
		})
		assert.Equal(t, "fr", filter["locale"])
		assert.Equal(t, model.VisibilityPublic, filter["visibility"])
	})

	t.Run("SearchRegexIsEscapedAndCaseInsensitive", func(t *testing.T) {
		filter := dao.BuildListFilter(model.MealDescriptor, dao.ListOptions{Q: "riz (complet)"})
		or, ok := filter["$or"].([]bson.M)
		assert.True(t, ok)
		assert.Len(t, or, len(model.MealDescriptor.SearchFields))

		re, ok := or[0]["label"].(primitive.Regex)
		assert.True(t, ok)
		assert.Equal(t, `riz \(complet\)`, re.Pattern)
		assert.Equal(t, "i", re.Options)
	})

	t.Run("ScopeAndSearchNestUnderAnd", func(t *testing.T) {
		filter := dao.BuildListFilter(model.MealDescriptor, dao.ListOptions{
			Q:     "poulet",
			Scope: authz.Scope{CreatedBy: "coach-1", AllowPublic: true},
		})
		assert.NotContains(t, filter, "$or")

		and, ok := filter["$and"].([]bson.M)
		assert.True(t, ok)
		assert.Len(t, and, 2)
		assert.Contains(t, and[0], "$or")
		assert.Contains(t, and[1], "$or")
	})
}
