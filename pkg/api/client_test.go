package api

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSendsMultipartAndAuth(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotJD   string
		gotRole string
		gotFile string
		gotName string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotJD = r.FormValue("job_description")
		gotRole = r.FormValue("job_role")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		gotFile = string(data)
		gotName = header.Filename

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"match_score": 85,
			"readiness_level": "Interview Ready",
			"fully_matched": ["Python", {"name": "SQL"}],
			"estimated_days_to_ready": 5
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	result, err := client.Analyze(AnalyzeRequest{
		FileName:       "resume.pdf",
		File:           strings.NewReader("%PDF-1.4 fake"),
		JobDescription: "Go developer",
		JobRole:        "  Backend Engineer  ",
	}, "tok123")
	require.NoError(t, err)

	assert.Equal(t, "/analyze/", gotPath)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.Equal(t, "Go developer", gotJD)
	assert.Equal(t, "Backend Engineer", gotRole)
	assert.Equal(t, "%PDF-1.4 fake", gotFile)
	assert.Equal(t, "resume.pdf", gotName)

	assert.Equal(t, float64(85), result.MatchScore)
	assert.Equal(t, "Interview Ready", result.ReadinessLevel)
	require.Len(t, result.FullyMatched, 2)
	assert.Equal(t, "Python", result.FullyMatched[0].Display())
	assert.Equal(t, "SQL", result.FullyMatched[1].Display())
}

func TestAnalyzeAnonymousOmitsAuthHeader(t *testing.T) {
	var sawAuthHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Write([]byte(`{"match_score": 50, "readiness_level": "Moderate - Needs Improvement"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Analyze(AnalyzeRequest{
		FileName:       "resume.pdf",
		File:           strings.NewReader("pdf"),
		JobDescription: "JD",
	}, "")
	require.NoError(t, err)
	assert.False(t, sawAuthHeader, "anonymous analyze must not send Authorization")
}

func TestAnalyzeNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	result, err := client.Analyze(AnalyzeRequest{
		FileName:       "resume.pdf",
		File:           strings.NewReader("pdf"),
		JobDescription: "JD",
	}, "")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "status 500")
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/login/", r.URL.Path)
		if r.URL.Query().Get("email") == "a@b.co" && r.URL.Query().Get("password") == "p@ss Word1" {
			w.Write([]byte(`{"access_token": "jwt-token"}`))
			return
		}
		http.Error(w, `{"detail": "invalid"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)

	token, err := client.Login("a@b.co", "p@ss Word1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	_, err = client.Login("a@b.co", "wrong")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestRegister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register/", r.URL.Path)
		if r.URL.Query().Get("email") == "taken@b.co" {
			http.Error(w, `{"detail": "exists"}`, http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	assert.NoError(t, client.Register("new@b.co", "Password1!"))
	assert.Error(t, client.Register("taken@b.co", "Password1!"))
}

func TestHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`[
			{"id": 1, "resume_name": "resume.pdf", "match_score": 85, "estimated_days": 5},
			{"id": 2, "resume_name": "cv.pdf", "match_score": 40, "estimated_days": 30}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	entries, err := client.History("tok")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "resume.pdf", entries[0].ResumeName)
	assert.Equal(t, float64(40), entries[1].MatchScore)
}

func TestHistoryNonArrayBodyIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detail": "unexpected shape"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	entries, err := client.History("tok")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteHistory(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	require.NoError(t, client.DeleteHistory("tok", 7))
	assert.Equal(t, "/history/7", gotPath)
	assert.Equal(t, "DELETE", gotMethod)
}

func TestGenerateReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate-report/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "85", r.FormValue("match_score"))
		assert.Equal(t, "Interview Ready", r.FormValue("readiness"))
		assert.Equal(t, "Kubernetes, Terraform", r.FormValue("missing_skills"))
		assert.Equal(t, "12", r.FormValue("days"))
		w.Write([]byte("%PDF-1.4 report"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	data, err := client.GenerateReport("tok", ReportSummary{
		MatchScore:    85,
		Readiness:     "Interview Ready",
		MissingSkills: "Kubernetes, Terraform",
		Days:          12,
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 report", string(data))
}
