package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/skilllens/skilllens-cli/pkg/model"
)

// ErrInvalidCredentials is returned by Login when the service rejects
// the email/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Client talks to the SkillLens analysis service.
type Client struct {
	baseURL string
	client  *http.Client

	// Analysis uploads can take as long as the server needs; the user
	// waits on the spinner rather than a client-side deadline.
	uploadClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: timeout},
		uploadClient: &http.Client{},
	}
}

// AnalyzeRequest carries one resume upload plus the job description.
type AnalyzeRequest struct {
	FileName       string
	File           io.Reader
	JobDescription string
	JobRole        string
}

// Analyze submits the multipart analysis request. Token may be empty;
// the endpoint supports anonymous analysis.
func (c *Client) Analyze(req AnalyzeRequest, token string) (*model.AnalysisResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", req.FileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, req.File); err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	if err := mw.WriteField("job_description", req.JobDescription); err != nil {
		return nil, err
	}
	if role := strings.TrimSpace(req.JobRole); role != "" {
		if err := mw.WriteField("job_role", role); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/analyze/", &body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	setBearer(httpReq, token)

	resp, err := c.uploadClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analysis failed (status %d): %s", resp.StatusCode, string(respBytes))
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	return &result, nil
}

// Login exchanges credentials for a bearer token. The service takes
// the credentials as query parameters.
func (c *Client) Login(email, password string) (string, error) {
	resp, err := c.client.Post(c.authURL("/login/", email, password), "", nil)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(respBytes, &loginResp); err == nil &&
		resp.StatusCode == http.StatusOK && loginResp.AccessToken != "" {
		return loginResp.AccessToken, nil
	}
	return "", ErrInvalidCredentials
}

func (c *Client) Register(email, password string) error {
	resp, err := c.client.Post(c.authURL("/register/", email, password), "", nil)
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("registration failed (status %d): %s", resp.StatusCode, string(respBytes))
	}
	return nil
}

// History lists the caller's stored analyses. A body that is not a
// JSON array is treated as an empty history.
func (c *Client) History(token string) ([]model.HistoryEntry, error) {
	req, err := http.NewRequest("GET", c.baseURL+"/history/", nil)
	if err != nil {
		return nil, err
	}
	setBearer(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history failed (status %d): %s", resp.StatusCode, string(respBytes))
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal(respBytes, &entries); err != nil {
		return []model.HistoryEntry{}, nil
	}
	return entries, nil
}

func (c *Client) DeleteHistory(token string, id int) error {
	req, err := http.NewRequest("DELETE", fmt.Sprintf("%s/history/%d", c.baseURL, id), nil)
	if err != nil {
		return err
	}
	setBearer(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delete failed (status %d)", resp.StatusCode)
	}
	return nil
}

// ReportSummary is the server-side report payload: a flattened
// summary of one analysis.
type ReportSummary struct {
	MatchScore    float64
	Readiness     string
	MissingSkills string
	Days          int
}

// GenerateReport asks the service to render a PDF report and returns
// the raw document bytes.
func (c *Client) GenerateReport(token string, summary ReportSummary) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"match_score":    strconv.FormatFloat(summary.MatchScore, 'f', -1, 64),
		"readiness":      summary.Readiness,
		"missing_skills": summary.MissingSkills,
		"days":           strconv.Itoa(summary.Days),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.baseURL+"/generate-report/", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setBearer(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("report request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("report generation failed (status %d): %s", resp.StatusCode, string(respBytes))
	}
	return respBytes, nil
}

func (c *Client) authURL(path, email, password string) string {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)
	return c.baseURL + path + "?" + q.Encode()
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
