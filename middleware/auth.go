package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	"github.com/Happykiller/DraftDream-sub004/service"
	"github.com/Happykiller/DraftDream-sub004/util"
)

// AuthRequired verifies the bearer token and installs the session for the
// request. A missing or partial principal is rejected here, immediately:
// nothing downstream ever sees a session without both a user id and a role.
func AuthRequired(auth service.IAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": draft_errors.ErrUnauthenticated.Code})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		session, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": draft_errors.ErrUnauthenticated.Code})
			c.Abort()
			return
		}

		util.SetSession(c, session)
		c.Next()
	}
}
