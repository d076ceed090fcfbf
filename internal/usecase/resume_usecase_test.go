package usecase_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms-backend/internal/usecase"
	"hrms-backend/pkg/apperror"
	"hrms-backend/pkg/textextract"
)

func TestExtractText(t *testing.T) {
	uc := usecase.NewResumeUsecase()

	t.Run("Plain text passes through", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.txt")
		require.NoError(t, os.WriteFile(path, []byte("Jane Doe, Engineer"), 0o644))

		text, err := uc.ExtractText(path, textextract.MimeTXT)
		require.NoError(t, err)
		assert.Contains(t, text, "Jane Doe")
	})

	t.Run("Classic doc uploads get an actionable message", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.doc")
		require.NoError(t, os.WriteFile(path, []byte("blob"), 0o644))

		_, err := uc.ExtractText(path, textextract.MimeDOC)
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "save as .docx or .pdf")
	})

	t.Run("Whitespace-only extraction is a server error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.txt")
		require.NoError(t, os.WriteFile(path, []byte("   \n\t "), 0o644))

		_, err := uc.ExtractText(path, textextract.MimeTXT)
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})
}
