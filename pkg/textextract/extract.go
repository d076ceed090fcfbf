package textextract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"
	fitz "github.com/gen2brain/go-fitz"
)

var (
	// ErrLegacyDoc is returned for OLE-era .doc uploads, which none of the
	// bundled extractors can read reliably.
	ErrLegacyDoc = errors.New("classic .doc files are not supported")

	// ErrUnsupportedType is returned for any other file type.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// MIME types accepted for resume uploads.
const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
	MimeRTF  = "application/rtf"
	MimeTXT  = "text/plain"
)

// FromFile extracts plain text from a resume on disk, dispatching on the
// upload's MIME type.
func FromFile(path, mimeType string) (string, error) {
	switch mimeType {
	case MimePDF:
		return fromPDF(path)
	case MimeDOCX:
		return fromDOCX(path)
	case MimeTXT, MimeRTF:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case MimeDOC:
		return "", ErrLegacyDoc
	default:
		return "", ErrUnsupportedType
	}
}

func fromPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func fromDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			sb.WriteString(block.String())
			sb.WriteString("\n")
		case *docx.Table:
			sb.WriteString(block.String())
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
