package usecase

import (
	"errors"
	"strings"

	"hrms-backend/internal/domain"
	"hrms-backend/pkg/apperror"
	"hrms-backend/pkg/textextract"
)

type resumeUsecase struct{}

func NewResumeUsecase() domain.ResumeUsecase {
	return &resumeUsecase{}
}

func (u *resumeUsecase) ExtractText(path, mimeType string) (string, error) {
	text, err := textextract.FromFile(path, mimeType)
	if err != nil {
		if errors.Is(err, textextract.ErrLegacyDoc) {
			return "", apperror.BadRequest("Classic .doc files are not supported. Please save as .docx or .pdf.")
		}
		if errors.Is(err, textextract.ErrUnsupportedType) {
			return "", apperror.BadRequest("Unsupported file type.")
		}
		return "", apperror.New(500, "Failed to parse resume", err)
	}

	if strings.TrimSpace(text) == "" {
		return "", apperror.New(500, "Could not extract text from the resume.", nil)
	}
	return text, nil
}
