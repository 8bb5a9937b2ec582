package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

func writeTestPDF(t *testing.T, path string) {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 20, "Go Python SQL")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("write test pdf: %v", err)
	}
}

func TestValidateResumeAccepts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	writeTestPDF(t, path)

	if err := ValidateResume(path, MaxFileSize); err != nil {
		t.Fatalf("valid resume rejected: %v", err)
	}
}

func TestValidateResumeRejections(t *testing.T) {
	dir := t.TempDir()

	goodPDF := filepath.Join(dir, "resume.pdf")
	writeTestPDF(t, goodPDF)

	textFile := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(textFile, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	fakePDF := filepath.Join(dir, "fake.pdf")
	if err := os.WriteFile(fakePDF, []byte("not really a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		maxSize int64
		want    error
	}{
		{"missing path", "", MaxFileSize, ErrNoFile},
		{"nonexistent file", filepath.Join(dir, "nope.pdf"), MaxFileSize, ErrNoFile},
		{"wrong extension", textFile, MaxFileSize, ErrNotPDF},
		{"pdf extension but not a pdf", fakePDF, MaxFileSize, ErrNotPDF},
		{"over size ceiling", goodPDF, 16, ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume(tt.path, tt.maxSize)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAnalysisValidateEmptyJobDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	writeTestPDF(t, path)

	in := Analysis{ResumePath: path, JobDescription: "   \n\t"}
	if err := in.Validate(); !errors.Is(err, ErrEmptyJobDescription) {
		t.Errorf("expected ErrEmptyJobDescription, got %v", err)
	}

	in.JobDescription = "Looking for a Go developer"
	if err := in.Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d): expected %q, got %q", tt.bytes, tt.want, got)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		password string
		want     PasswordStrength
	}{
		{"abc", PasswordWeak},
		{"abcdef", PasswordWeak},
		{"abcdefgh", PasswordWeak},
		{"abcdefg1", PasswordMedium},
		{"Abcdefg1", PasswordStrong},
		{"Abcdef1!", PasswordStrong},
	}

	for _, tt := range tests {
		if got := CheckPassword(tt.password); got != tt.want {
			t.Errorf("CheckPassword(%q): expected %s, got %s", tt.password, tt.want, got)
		}
	}
}
