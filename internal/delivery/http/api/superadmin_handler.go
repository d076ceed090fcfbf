package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/delivery/http/middleware"
	"hrms-backend/internal/delivery/http/response"
	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"
)

type SuperAdminHandler struct {
	superAdminUC domain.SuperAdminUsecase
}

// NewSuperAdminHandler mounts the account management endpoints. The group is
// expected to already carry the superadmin auth gate.
func NewSuperAdminHandler(group *gin.RouterGroup, superAdminUC domain.SuperAdminUsecase) {
	handler := &SuperAdminHandler{superAdminUC: superAdminUC}

	group.GET("/data", handler.Dashboard)
	group.POST("/hrs", handler.CreateHR)
	group.POST("/clients", handler.CreateClient)
	group.POST("/assign", handler.AssignClient)
	group.PUT("/:accountType/:id", handler.UpdateAccount)
	group.DELETE("/:accountType/:id", handler.DeleteAccount)
}

func (h *SuperAdminHandler) Dashboard(c *gin.Context) {
	admin, ok := middleware.SuperAdminFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized: User not found"))
		return
	}

	data, err := h.superAdminUC.Dashboard(c.Request.Context(), admin)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, data)
}

func (h *SuperAdminHandler) CreateHR(c *gin.Context) {
	var req domain.CreateHRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err, "Invalid request body"))
		return
	}

	hr, err := h.superAdminUC.CreateHR(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "HR account created successfully",
		"hr":      hr,
	})
}

func (h *SuperAdminHandler) CreateClient(c *gin.Context) {
	var req domain.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err, "Invalid request body"))
		return
	}

	client, err := h.superAdminUC.CreateClient(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Client account created successfully",
		"client":  client,
	})
}

type assignClientRequest struct {
	HRID     string `json:"hrId"`
	ClientID string `json:"clientId"`
}

func (h *SuperAdminHandler) AssignClient(c *gin.Context) {
	var req assignClientRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.HRID == "" || req.ClientID == "" {
		c.Error(apperror.BadRequest("hrId and clientId are required"))
		return
	}

	if err := h.superAdminUC.AssignClientToHR(c.Request.Context(), req.HRID, req.ClientID); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Client assigned successfully")
}

func (h *SuperAdminHandler) UpdateAccount(c *gin.Context) {
	accountType := c.Param("accountType")
	id := c.Param("id")

	var patch domain.AccountPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	updated, err := h.superAdminUC.UpdateAccount(c.Request.Context(), accountType, id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Account updated successfully",
		"account": updated,
	})
}

func (h *SuperAdminHandler) DeleteAccount(c *gin.Context) {
	accountType := c.Param("accountType")
	id := c.Param("id")

	if err := h.superAdminUC.DeleteAccount(c.Request.Context(), accountType, id); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Account deleted successfully")
}
