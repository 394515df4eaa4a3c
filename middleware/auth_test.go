package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	"github.com/Happykiller/DraftDream-sub004/middleware"
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/test/mock"
	"github.com/Happykiller/DraftDream-sub004/util"
)

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	auth := new(mock.MockAuthService)

	router := gin.New()
	router.Use(middleware.AuthRequired(auth))
	router.GET("/whoami", func(c *gin.Context) {
		session, err := util.SessionFromContext(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}
		c.JSON(http.StatusOK, session)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
	})

	t.Run("InvalidToken", func(t *testing.T) {
		auth.On("ParseToken", "bad-token").
			Return(model.Session{}, draft_errors.ErrUnauthenticated).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		auth.On("ParseToken", "good-token").
			Return(model.Session{UserID: "coach-1", Role: model.RoleCoach}, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "coach-1")
	})

	auth.AssertExpectations(t)
}
