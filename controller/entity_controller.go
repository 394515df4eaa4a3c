package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Happykiller/DraftDream-sub004/service"
	"github.com/Happykiller/DraftDream-sub004/util"
	helper_util "github.com/Happykiller/DraftDream-sub004/util/helper"
)

// EntityController is the uniform REST surface over one entity's usecases.
// Per the API contract, absence and conflicts are null results (HTTP 200),
// while denials carry their domain code (HTTP 403).
type EntityController[T any] struct {
	service  service.ICrudService[T]
	path     string
	newPatch func() service.Patcher
}

func NewEntityController[T any](svc service.ICrudService[T], path string, newPatch func() service.Patcher) *EntityController[T] {
	return &EntityController[T]{
		service:  svc,
		path:     path,
		newPatch: newPatch,
	}
}

// RegisterRoutes registers the API routes
func (ec *EntityController[T]) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(ec.path)
	{
		group.POST("", ec.Create)
		group.GET("", ec.List)
		group.GET("/:id", ec.Get)
		group.PUT("/:id", ec.Update)
		group.DELETE("/:id", ec.Delete)
	}
}

// Create endpoint
func (ec *EntityController[T]) Create(c *gin.Context) {
	session, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	doc := new(T)
	if err := c.ShouldBindJSON(doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	created, err := ec.service.Create(c, session, doc)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	if created == nil {
		// Unique-key conflict: a null result, not an error.
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Get endpoint
func (ec *EntityController[T]) Get(c *gin.Context) {
	session, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	doc, err := ec.service.Get(c, session, c.Param("id"))
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	// Absent resources are null results, distinguishable from denials.
	c.JSON(http.StatusOK, doc)
}

// List endpoint
func (ec *EntityController[T]) List(c *gin.Context) {
	session, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	page, limit, err := helper_util.GetPaginationParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
		return
	}

	result, err := ec.service.List(c, session, service.ListQuery{
		Q:          c.Query("q"),
		Locale:     c.Query("locale"),
		CreatedBy:  c.Query("created_by"),
		Visibility: c.Query("visibility"),
		UserID:     c.Query("user_id"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Update endpoint
func (ec *EntityController[T]) Update(c *gin.Context) {
	session, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	patch := ec.newPatch()
	if err := c.ShouldBindJSON(patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	updated, err := ec.service.Update(c, session, c.Param("id"), patch)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	// nil covers both "gone" and "slug conflict"; either way, null result.
	c.JSON(http.StatusOK, updated)
}

// Delete endpoint
func (ec *EntityController[T]) Delete(c *gin.Context) {
	session, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	deleted, err := ec.service.Delete(c, session, c.Param("id"))
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
