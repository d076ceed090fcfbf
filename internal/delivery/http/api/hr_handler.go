package api

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"hrms-backend/config"
	"hrms-backend/internal/delivery/http/middleware"
	"hrms-backend/internal/delivery/http/response"
	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"
)

type HRHandler struct {
	hrUC domain.HRUsecase
	cfg  *config.Config
}

// NewHRHandler mounts the HR endpoints. The group is expected to already carry
// the HR auth gate; managerOnly restricts the manager subset on top of it.
func NewHRHandler(group *gin.RouterGroup, managerOnly gin.HandlerFunc, hrUC domain.HRUsecase, cfg *config.Config) {
	handler := &HRHandler{hrUC: hrUC, cfg: cfg}

	group.GET("/assigned-clients", handler.AssignedClients)
	group.GET("/clients/:clientId/jobs", handler.JobsByClient)

	group.POST("/candidates", handler.CreateCandidate)
	group.PUT("/candidates/:candidateId", handler.UpdateCandidate)
	group.PATCH("/candidates/:candidateId/status", handler.UpdateCandidateStatus)
	group.GET("/jobs/:jobId/candidates", handler.CandidatesByJob)
	group.GET("/jobs/:jobId/search", handler.SearchCandidatesInJob)

	manager := group.Group("", managerOnly)
	{
		manager.GET("/all-clients", handler.AllClients)
		manager.GET("/all-hrs", handler.AllHRs)
		manager.GET("/all-recruiters", handler.AllRecruiters)
		manager.POST("/assign-recruiter", handler.AssignRecruiter)

		manager.POST("/jobs", handler.CreateJob)
		manager.GET("/jobs", handler.AllJobs)
		manager.PUT("/jobs/:jobId", handler.UpdateJob)
		manager.DELETE("/jobs/:jobId", handler.DeleteJob)

		manager.GET("/all-candidates", handler.AllCandidates)
		manager.GET("/search-candidates", handler.SearchCandidates)
	}
}

func (h *HRHandler) caller(c *gin.Context) (*domain.HR, bool) {
	hr, ok := middleware.HRFromContext(c)
	if !ok {
		c.Error(apperror.Unauthorized("Unauthorized: User not found"))
		return nil, false
	}
	return hr, true
}

func (h *HRHandler) AssignedClients(c *gin.Context) {
	hr, ok := h.caller(c)
	if !ok {
		return
	}

	clients, err := h.hrUC.AssignedClients(c.Request.Context(), hr)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, clients)
}

func (h *HRHandler) AllClients(c *gin.Context) {
	clients, err := h.hrUC.AllClients(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, clients)
}

func (h *HRHandler) AllHRs(c *gin.Context) {
	hrs, err := h.hrUC.AllHRs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, hrs)
}

func (h *HRHandler) AllRecruiters(c *gin.Context) {
	recruiters, err := h.hrUC.AllRecruiters(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, recruiters)
}

type assignRecruiterRequest struct {
	RecruiterID string `json:"recruiterId"`
	ClientID    string `json:"clientId"`
}

func (h *HRHandler) AssignRecruiter(c *gin.Context) {
	var req assignRecruiterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecruiterID == "" || req.ClientID == "" {
		c.Error(apperror.BadRequest("recruiterId and clientId are required"))
		return
	}

	name, err := h.hrUC.AssignClientToRecruiter(c.Request.Context(), req.RecruiterID, req.ClientID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Client successfully assigned to "+name+".")
}

func (h *HRHandler) JobsByClient(c *gin.Context) {
	hr, ok := h.caller(c)
	if !ok {
		return
	}

	jobs, err := h.hrUC.JobsByClient(c.Request.Context(), hr, c.Param("clientId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

func (h *HRHandler) AllJobs(c *gin.Context) {
	hr, ok := h.caller(c)
	if !ok {
		return
	}

	jobs, err := h.hrUC.AllJobs(c.Request.Context(), hr)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, jobs)
}

func (h *HRHandler) CreateJob(c *gin.Context) {
	var req domain.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err, "Missing required fields."))
		return
	}

	job, err := h.hrUC.CreateJob(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Job created successfully",
		"job":     job,
	})
}

func (h *HRHandler) UpdateJob(c *gin.Context) {
	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	job, err := h.hrUC.UpdateJob(c.Request.Context(), c.Param("jobId"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"job":     job,
	})
}

func (h *HRHandler) DeleteJob(c *gin.Context) {
	if err := h.hrUC.DeleteJob(c.Request.Context(), c.Param("jobId")); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Job deleted successfully")
}

func (h *HRHandler) CreateCandidate(c *gin.Context) {
	hr, ok := h.caller(c)
	if !ok {
		return
	}

	req, err := h.bindCandidateRequest(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.hrUC.CreateCandidate(c.Request.Context(), hr, *req)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message":   "Candidate created successfully",
		"candidate": candidate,
	})
}

// bindCandidateRequest accepts both multipart form submissions carrying a
// resume file and plain JSON bodies.
func (h *HRHandler) bindCandidateRequest(c *gin.Context) (*domain.CreateCandidateRequest, error) {
	contentType := c.ContentType()
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req domain.CreateCandidateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, bindError(err, "Missing required fields")
		}
		return &req, nil
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.UploadMaxBytes)
	if err := c.Request.ParseMultipartForm(h.cfg.UploadMaxBytes); err != nil {
		return nil, apperror.BadRequest("File too large. Maximum size is 5MB.")
	}

	req := domain.CreateCandidateRequest{
		FirstName:          c.PostForm("firstName"),
		LastName:           c.PostForm("lastName"),
		Email:              c.PostForm("email"),
		Phone:              c.PostForm("phone"),
		JobTitle:           c.PostForm("jobTitle"),
		ClientID:           c.PostForm("clientId"),
		TotalExperience:    formFloat(c, "totalExperience"),
		RelevantExperience: formFloat(c, "relevantExperience"),
		CurrentCTC:         formFloat(c, "currentCtc"),
		ExpectedCTC:        formFloat(c, "expectedCtc"),
		CurrentLocation:    c.PostForm("currentLocation"),
		PreferredLocation:  c.PostForm("preferredLocation"),
		NoticePeriod:       formFloat(c, "noticePeriod"),
		CurrentCompany:     c.PostForm("currentCompany"),
		Source:             c.PostForm("source"),
		Status:             domain.CandidateStatus(c.PostForm("status")),
		Remarks:            c.PostForm("remarks"),
	}

	// Form submissions bypass ShouldBindJSON, so run the same binding
	// validators over the assembled struct.
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return nil, bindError(err, "Missing required fields")
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return &req, nil // resume attachment is optional
	}
	filename := uuid.NewString() + filepath.Ext(file.Filename)
	dest := filepath.Join(h.cfg.UploadDir, filename)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		return nil, apperror.Internal(err)
	}
	req.ResumeURL = "/uploads/resumes/" + filename
	return &req, nil
}

func formFloat(c *gin.Context, key string) float64 {
	val := c.PostForm(key)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}

func (h *HRHandler) UpdateCandidate(c *gin.Context) {
	hr, ok := h.caller(c)
	if !ok {
		return
	}

	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	candidate, err := h.hrUC.UpdateCandidate(c.Request.Context(), hr, c.Param("candidateId"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message":   "Candidate updated successfully",
		"candidate": candidate,
	})
}

type statusUpdateRequest struct {
	Status domain.CandidateStatus `json:"status"`
}

func (h *HRHandler) UpdateCandidateStatus(c *gin.Context) {
	hr, ok := h.caller(c)
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.Error(apperror.BadRequest("Status is required"))
		return
	}

	candidate, err := h.hrUC.UpdateCandidateStatus(c.Request.Context(), hr, c.Param("candidateId"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"message":   "Candidate status updated",
		"candidate": candidate,
	})
}

func (h *HRHandler) AllCandidates(c *gin.Context) {
	page, limit := queryPagination(c)
	status := domain.CandidateStatus(c.Query("status"))

	result, err := h.hrUC.AllCandidates(c.Request.Context(), page, limit, status)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *HRHandler) CandidatesByJob(c *gin.Context) {
	hr, ok := h.caller(c)
	if !ok {
		return
	}

	page, limit := queryPagination(c)
	status := domain.CandidateStatus(c.Query("status"))

	result, err := h.hrUC.CandidatesByJob(c.Request.Context(), hr, c.Param("jobId"), page, limit, status)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *HRHandler) SearchCandidates(c *gin.Context) {
	results, err := h.hrUC.SearchCandidates(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, results)
}

func (h *HRHandler) SearchCandidatesInJob(c *gin.Context) {
	hr, ok := h.caller(c)
	if !ok {
		return
	}

	status := domain.CandidateStatus(c.Query("status"))
	results, err := h.hrUC.SearchCandidatesInJob(c.Request.Context(), hr, c.Param("jobId"), c.Query("q"), status)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, results)
}

func queryPagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
