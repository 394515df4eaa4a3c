package dao

import (
	"regexp"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Happykiller/DraftDream-sub004/model"
)

// BuildListFilter assembles the Mongo filter for a scoped list query. The
// access scope is part of the filter itself, not a post-filter, so the
// reported total matches what the session may actually read.
func BuildListFilter(desc model.Descriptor, opts ListOptions) bson.M {
	filter := bson.M{}

	if desc.SoftDelete {
		filter["deletedAt"] = bson.M{"$exists": false}
	}

	scope := opts.Scope
	switch {
	case scope.CreatedBy != "" && scope.AllowPublic:
		filter["$or"] = []bson.M{
			{"createdBy": scope.CreatedBy},
			{"visibility": model.VisibilityPublic},
		}
	case scope.CreatedBy != "":
		filter["createdBy"] = scope.CreatedBy
	}
	if scope.Assignee != "" {
		filter["userId"] = scope.Assignee
	} else if opts.UserID != "" {
		// Explicit assignee filter; the scope's own assignee pin, when
		// present, is never widened by a caller parameter.
		filter["userId"] = opts.UserID
	}

	if opts.Locale != "" {
		filter["locale"] = opts.Locale
	}
	if opts.Visibility != "" {
		filter["visibility"] = model.NormalizeVisibility(string(opts.Visibility))
	}

	if opts.Q != "" && len(desc.SearchFields) > 0 {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(opts.Q), Options: "i"}
		search := lo.Map(desc.SearchFields, func(field string, _ int) bson.M {
			return bson.M{field: re}
		})
		if or, ok := filter["$or"]; ok {
			// Both the scope and the search need an $or; nest them.
			delete(filter, "$or")
			filter["$and"] = []bson.M{{"$or": or}, {"$or": search}}
		} else {
			filter["$or"] = search
		}
	}

	return filter
}
