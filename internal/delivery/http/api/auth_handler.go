package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/delivery/http/middleware"
	"hrms-backend/internal/delivery/http/response"
	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler mounts the login endpoints under each role prefix and the
// authenticated "me" endpoints on the role groups.
func NewAuthHandler(root *gin.RouterGroup, superadmin, hr, client *gin.RouterGroup, loginLimiter gin.HandlerFunc, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	root.POST("/superadmin/login", loginLimiter, handler.LoginSuperAdmin)
	root.POST("/hr/login", loginLimiter, handler.LoginHR)
	root.POST("/client/login", loginLimiter, handler.LoginClient)

	superadmin.GET("/me", handler.MeSuperAdmin)
	hr.GET("/me", handler.MeHR)
	client.GET("/me", handler.MeClient)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) LoginSuperAdmin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err, "Email and password are required"))
		return
	}

	result, err := h.authUC.LoginSuperAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *AuthHandler) LoginHR(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err, "Email and password are required"))
		return
	}

	result, err := h.authUC.LoginHR(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *AuthHandler) LoginClient(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err, "Email and password are required"))
		return
	}

	result, err := h.authUC.LoginClient(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *AuthHandler) MeSuperAdmin(c *gin.Context) {
	admin, ok := middleware.SuperAdminFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized: User not found"))
		return
	}
	response.JSON(c, http.StatusOK, admin)
}

func (h *AuthHandler) MeHR(c *gin.Context) {
	hr, ok := middleware.HRFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized: User not found"))
		return
	}
	response.JSON(c, http.StatusOK, hr)
}

func (h *AuthHandler) MeClient(c *gin.Context) {
	client, ok := middleware.ClientFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized: User not found"))
		return
	}
	response.JSON(c, http.StatusOK, client)
}
