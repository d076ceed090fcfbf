package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/delivery/http/middleware"
	"hrms-backend/internal/delivery/http/response"
	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"
)

type ClientHandler struct {
	clientUC domain.ClientUsecase
}

// NewClientHandler mounts the client portal endpoints. The group is expected
// to already carry the client auth gate.
func NewClientHandler(group *gin.RouterGroup, clientUC domain.ClientUsecase) {
	handler := &ClientHandler{clientUC: clientUC}

	group.GET("/jobs", handler.Jobs)
	group.GET("/jobs/:jobId/candidates", handler.CandidatesForJob)
	group.PATCH("/candidates/:candidateId/status", handler.UpdateCandidateStatus)
	group.PUT("/candidates/:candidateId/remarks", handler.UpdateCandidateRemarks)
}

func (h *ClientHandler) caller(c *gin.Context) (*domain.Client, bool) {
	client, ok := middleware.ClientFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized: User not found"))
		return nil, false
	}
	return client, true
}

func (h *ClientHandler) Jobs(c *gin.Context) {
	client, ok := h.caller(c)
	if !ok {
		return
	}

	jobs, err := h.clientUC.Jobs(c.Request.Context(), client)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

func (h *ClientHandler) CandidatesForJob(c *gin.Context) {
	client, ok := h.caller(c)
	if !ok {
		return
	}

	candidates, err := h.clientUC.CandidatesForJob(c.Request.Context(), client, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, candidates)
}

func (h *ClientHandler) UpdateCandidateStatus(c *gin.Context) {
	client, ok := h.caller(c)
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.Error(apperror.BadRequest("Status is required"))
		return
	}

	candidate, err := h.clientUC.UpdateCandidateStatus(c.Request.Context(), client, c.Param("candidateId"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message":   "Candidate status updated",
		"candidate": candidate,
	})
}

type remarksUpdateRequest struct {
	Remarks string `json:"remarks"`
}

func (h *ClientHandler) UpdateCandidateRemarks(c *gin.Context) {
	client, ok := h.caller(c)
	if !ok {
		return
	}

	var req remarksUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	candidate, err := h.clientUC.UpdateCandidateRemarks(c.Request.Context(), client, c.Param("candidateId"), req.Remarks)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message":   "Candidate remarks updated",
		"candidate": candidate,
	})
}
