package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Happykiller/DraftDream-sub004/service"
	"github.com/Happykiller/DraftDream-sub004/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers the public authentication routes.
func (ac *AuthController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", ac.Login)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials payload"})
		return
	}

	token, user, err := ac.authService.Login(c, req.Email, req.Password)
	if err != nil {
		util.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
