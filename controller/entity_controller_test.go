package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/Happykiller/DraftDream-sub004/controller"
	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	logger "github.com/Happykiller/DraftDream-sub004/logging"
	"github.com/Happykiller/DraftDream-sub004/model"
	"github.com/Happykiller/DraftDream-sub004/service"
	"github.com/Happykiller/DraftDream-sub004/test/mock"
	"github.com/Happykiller/DraftDream-sub004/util"
)

func TestMain(m *testing.M) {
	logger.InitLogger(filepath.Join(os.TempDir(), "draftdream-test-logs"))
	defer logger.Sync()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupMealRouter(svc service.ICrudService[model.Meal], session model.Session) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if session.Complete() {
			util.SetSession(c, session)
		}
		c.Next()
	})
	ec := controller.NewEntityController[model.Meal](svc, "/meals",
		func() service.Patcher { return &model.MealPatch{} })
	ec.RegisterRoutes(router.Group("/"))
	return router
}

func TestEntityController(t *testing.T) {
	coach := model.Session{UserID: "coach-1", Role: model.RoleCoach}

	t.Run("Create_Success", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, coach)

		meal := &model.Meal{}
		meal.Label = "Full Body"
		meal.Locale = "fr"
		svc.On("Create", testify_mock.Anything, coach, testify_mock.Anything).Return(meal, nil)

		body := strings.NewReader(`{"label":"Full Body","locale":"fr"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/meals", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Create_Conflict_NullResult", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, coach)

		svc.On("Create", testify_mock.Anything, coach, testify_mock.Anything).Return(nil, nil)

		body := strings.NewReader(`{"label":"Full Body","locale":"fr"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/meals", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
	})

	t.Run("Create_MissingSession_Unauthorized", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, model.Session{})

		body := strings.NewReader(`{"label":"Full Body","locale":"fr"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/meals", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("Get_Forbidden", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, coach)

		svc.On("Get", testify_mock.Anything, coach, "66b1").
			Return(nil, draft_errors.Forbidden(draft_errors.ActionGet, "MEAL"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/meals/66b1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "GET_MEAL_FORBIDDEN")
	})

	t.Run("Get_Absent_NullResult", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, coach)

		svc.On("Get", testify_mock.Anything, coach, "66b1").Return(nil, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/meals/66b1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
	})

	t.Run("List_PassesQueryParams", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, coach)

		var seen service.ListQuery
		svc.On("List", testify_mock.Anything, coach, testify_mock.Anything).
			Run(func(args testify_mock.Arguments) {
				seen = args.Get(2).(service.ListQuery)
			}).
			Return(&model.Page[model.Meal]{Items: []*model.Meal{}, Page: 2, Limit: 5}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/meals?q=riz&locale=fr&user_id=athlete-1&page=2&limit=5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "riz", seen.Q)
		assert.Equal(t, "fr", seen.Locale)
		assert.Equal(t, "athlete-1", seen.UserID)
		assert.Equal(t, int64(2), seen.Page)
		assert.Equal(t, int64(5), seen.Limit)

		var page model.Page[model.Meal]
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.NotNil(t, page.Items)
	})

	t.Run("List_Forbidden", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, model.Session{UserID: "athlete-1", Role: model.RoleAthlete})

		svc.On("List", testify_mock.Anything, testify_mock.Anything, testify_mock.Anything).
			Return(nil, draft_errors.Forbidden(draft_errors.ActionList, "MEAL"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/meals", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "LIST_MEAL_FORBIDDEN")
	})

	t.Run("Update_Success", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, coach)

		meal := &model.Meal{}
		meal.Label = "Haut du Corps"
		svc.On("Update", testify_mock.Anything, coach, "66b1", testify_mock.Anything).Return(meal, nil)

		body := strings.NewReader(`{"label":"Haut du Corps"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/meals/66b1", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Haut du Corps")
	})

	t.Run("Update_UsecaseFailure", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, coach)

		svc.On("Update", testify_mock.Anything, coach, "66b1", testify_mock.Anything).
			Return(nil, draft_errors.Usecase(draft_errors.ActionUpdate, "MEAL", assert.AnError))

		body := strings.NewReader(`{"label":"Haut du Corps"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/meals/66b1", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "UPDATE_MEAL_USECASE")
	})

	t.Run("Delete_ReportsResult", func(t *testing.T) {
		svc := new(mock.MockCrudService[model.Meal])
		router := setupMealRouter(svc, coach)

		svc.On("Delete", testify_mock.Anything, coach, "66b1").Return(false, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/meals/66b1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":false`)
	})
}
