package util

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	logger "github.com/Happykiller/DraftDream-sub004/logging"
	"github.com/Happykiller/DraftDream-sub004/model"
)

const sessionKey = "session"

// RequestIDKey is where the request-id middleware stores its uuid; it doubles
// as the context key services read it back with.
const RequestIDKey = "requestID"

// RequestIDFromContext returns the request id, or empty outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// RespondWithError logs and reports a transport-level failure (bad payload,
// rate limiting, internal errors). Do not use it for access denials.
func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithDomainError maps a domain error to its HTTP shape. Denials are
// expected user behavior: they are returned, never logged.
func RespondWithDomainError(c *gin.Context, err error) {
	code := draft_errors.Code(err)
	switch {
	case draft_errors.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": code})
	case code == draft_errors.ErrUnauthenticated.Code,
		code == draft_errors.ErrInvalidCredentials.Code:
		c.JSON(http.StatusUnauthorized, gin.H{"error": code})
	case code == draft_errors.ErrUserNotFound.Code:
		c.JSON(http.StatusNotFound, gin.H{"error": code})
	case strings.HasPrefix(code, "INVALID_"):
		c.JSON(http.StatusBadRequest, gin.H{"error": code})
	case code != "":
		// Usecase failures were already logged where they happened.
		c.JSON(http.StatusInternalServerError, gin.H{"error": code})
	default:
		RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// SetSession stores the authenticated session for the request.
func SetSession(c *gin.Context, session model.Session) {
	c.Set(sessionKey, session)
}

// SessionFromContext returns the session placed by the auth middleware. A
// missing or partial session means the middleware was bypassed; callers must
// treat that as unauthenticated, never as an access decision.
func SessionFromContext(c *gin.Context) (model.Session, error) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return model.Session{}, draft_errors.ErrUnauthenticated
	}
	session, ok := value.(model.Session)
	if !ok || !session.Complete() {
		return model.Session{}, draft_errors.ErrUnauthenticated
	}
	return session, nil
}
