package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxFileSize is the default resume size ceiling.
const MaxFileSize = 5 * 1024 * 1024

var (
	ErrNoFile              = errors.New("no resume file selected")
	ErrNotPDF              = errors.New("please upload a PDF file only")
	ErrTooLarge            = errors.New("file size must be less than 5MB")
	ErrEmptyJobDescription = errors.New("please provide a job description")
)

// Analysis is the user-supplied input for one analysis request.
type Analysis struct {
	ResumePath     string
	JobDescription string
	JobRole        string

	// MaxFileSize overrides the default ceiling when > 0.
	MaxFileSize int64
}

// Validate checks the input client-side. It fails fast with a
// distinct error per problem so no request is issued for bad input.
func (a Analysis) Validate() error {
	if err := ValidateResume(a.ResumePath, a.maxSize()); err != nil {
		return err
	}
	if strings.TrimSpace(a.JobDescription) == "" {
		return ErrEmptyJobDescription
	}
	return nil
}

func (a Analysis) maxSize() int64 {
	if a.MaxFileSize > 0 {
		return a.MaxFileSize
	}
	return MaxFileSize
}

// ValidateResume rejects missing files, non-PDF files, and files over
// the size ceiling. The PDF check goes beyond the extension: the file
// must start with the PDF magic and parse as a document.
func ValidateResume(path string, maxSize int64) error {
	if strings.TrimSpace(path) == "" {
		return ErrNoFile
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoFile, path)
	}
	if info.IsDir() {
		return ErrNotPDF
	}
	if info.Size() > maxSize {
		return ErrTooLarge
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return ErrNotPDF
	}

	f, _, err := pdf.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotPDF, err)
	}
	f.Close()

	return nil
}

// FormatSize renders a byte count the way the upload UI does
// ("1.5 MB", "820 KB").
func FormatSize(bytes int64) string {
	const unit = 1024
	switch {
	case bytes >= unit*unit:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(unit*unit))
	case bytes >= unit:
		return fmt.Sprintf("%.2f KB", float64(bytes)/unit)
	default:
		return fmt.Sprintf("%d Bytes", bytes)
	}
}
