package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Happykiller/DraftDream-sub004/controller"
	"github.com/Happykiller/DraftDream-sub004/middleware"
	"github.com/Happykiller/DraftDream-sub004/service"
)

func SetupRouter(
	controllers *controller.Controllers,
	authService service.IAuthService,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	controllers.Auth.RegisterRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(authService))

	controllers.User.RegisterRoutes(protected)
	controllers.Client.RegisterRoutes(protected)
	controllers.Prospect.RegisterRoutes(protected)
	controllers.Program.RegisterRoutes(protected)
	controllers.Session.RegisterRoutes(protected)
	controllers.Exercise.RegisterRoutes(protected)
	controllers.Meal.RegisterRoutes(protected)
	controllers.MealDay.RegisterRoutes(protected)
	controllers.MealPlan.RegisterRoutes(protected)
	controllers.Note.RegisterRoutes(protected)
	controllers.Task.RegisterRoutes(protected)
	controllers.Audit.RegisterRoutes(protected)

	return router
}
