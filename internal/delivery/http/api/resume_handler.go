package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hrms-backend/config"
	"hrms-backend/internal/delivery/http/response"
	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"
	"hrms-backend/pkg/textextract"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
	cfg      *config.Config
}

// NewResumeHandler mounts the public resume parsing endpoint.
func NewResumeHandler(group *gin.RouterGroup, resumeUC domain.ResumeUsecase, cfg *config.Config) {
	handler := &ResumeHandler{resumeUC: resumeUC, cfg: cfg}

	group.POST("/upload-resume", handler.UploadResume)
}

func (h *ResumeHandler) UploadResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.UploadMaxBytes)

	file, err := c.FormFile("resume")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.Error(apperror.BadRequest("File too large. Maximum size is 5MB."))
			return
		}
		c.Error(apperror.BadRequest("No resume file uploaded."))
		return
	}
	if file.Size > h.cfg.UploadMaxBytes {
		c.Error(apperror.BadRequest("File too large. Maximum size is 5MB."))
		return
	}

	// Spool to disk for the extractors, then remove regardless of outcome.
	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer os.Remove(tmpPath)

	text, err := h.resumeUC.ExtractText(tmpPath, resumeMimeType(file.Filename, file.Header.Get("Content-Type")))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message":       "Resume parsed successfully",
		"extractedText": text,
	})
}

// resumeMimeType trusts the declared content type when present and falls back
// to the file extension.
func resumeMimeType(filename, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return textextract.MimePDF
	case ".docx":
		return textextract.MimeDOCX
	case ".doc":
		return textextract.MimeDOC
	case ".txt":
		return textextract.MimeTXT
	case ".rtf":
		return textextract.MimeRTF
	default:
		return declared
	}
}
