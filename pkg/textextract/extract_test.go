package textextract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms-backend/pkg/textextract"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromFilePlainText(t *testing.T) {
	path := writeTemp(t, "resume.txt", "Jane Doe\n10 years of Go")

	text, err := textextract.FromFile(path, textextract.MimeTXT)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
}

func TestFromFileRTFReadRaw(t *testing.T) {
	path := writeTemp(t, "resume.rtf", `{\rtf1 Jane Doe}`)

	text, err := textextract.FromFile(path, textextract.MimeRTF)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
}

func TestFromFileLegacyDoc(t *testing.T) {
	path := writeTemp(t, "resume.doc", "binary blob")

	_, err := textextract.FromFile(path, textextract.MimeDOC)
	assert.ErrorIs(t, err, textextract.ErrLegacyDoc)
}

func TestFromFileUnsupportedType(t *testing.T) {
	path := writeTemp(t, "resume.png", "not a resume")

	_, err := textextract.FromFile(path, "image/png")
	assert.ErrorIs(t, err, textextract.ErrUnsupportedType)
}
