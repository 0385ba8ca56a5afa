package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"tour-backend/services"
	"tour-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(authSvc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: authSvc}
}

type registerPayload struct {
	FullName string `form:"full_name" json:"full_name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type loginPayload struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Register (POST /api/auth/register)
func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	customer, err := ctrl.AuthSvc.Register(payload.FullName, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "email already registered")
			return
		}
		log.Printf("Register error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to register")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

// Login (POST /api/auth/login) opens a session and returns its token.
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBind(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	session, customer, err := ctrl.AuthSvc.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		log.Printf("Login error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
		"customer": gin.H{
			"id":        customer.ID,
			"full_name": customer.FullName,
			"email":     customer.Email,
		},
	})
}

// Logout (POST /api/auth/logout) drops the session if one is presented.
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}
	}

	if token != "" {
		if err := ctrl.AuthSvc.Logout(token); err != nil {
			log.Printf("Logout error: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": utils.Flash(utils.FlashInfo, "Logged out.")})
}
