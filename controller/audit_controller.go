package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Happykiller/DraftDream-sub004/audit"
	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/util"
	helper_util "github.com/Happykiller/DraftDream-sub004/util/helper"
)

// AuditController exposes the mutation trail to admins.
type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{auditService: auditService}
}

func (ac *AuditController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit", ac.Query)
}

// Query endpoint
func (ac *AuditController) Query(c *gin.Context) {
	session, err := util.SessionFromContext(c)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}
	if session.Role != model.RoleAdmin {
		util.RespondWithDomainError(c, draft_errors.Forbidden(draft_errors.ActionList, "AUDIT"))
		return
	}

	from := time.Now().Add(-24 * time.Hour)
	to := time.Now()
	if raw := c.Query("from"); raw != "" {
		if from, err = helper_util.ParseTime(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from timestamp"})
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = helper_util.ParseTime(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to timestamp"})
			return
		}
	}

	entries, err := ac.auditService.QueryEntries(c, from, to, c.Query("actor"), c.Query("entity"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit trail", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": entries})
}
