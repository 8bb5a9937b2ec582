package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skilllens/skilllens-cli/pkg/model"
)

// ErrNoSession is returned by operations that require a stored token.
var ErrNoSession = errors.New("not logged in")

// ErrNoResult is returned when no analysis snapshot has been stored.
var ErrNoResult = errors.New("no analysis result available")

const (
	tokenFile    = "token"
	snapshotFile = "last_analysis.json"
)

// Store persists the session token and the most recent analysis
// result under a single state directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *Store) SetToken(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	return writeAtomic(filepath.Join(s.dir, tokenFile), []byte(token+"\n"), 0o600)
}

func (s *Store) ClearToken() error {
	err := os.Remove(filepath.Join(s.dir, tokenFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Identity is what the token claims about its owner. The claims are
// read without signature verification; they are display-only.
type Identity struct {
	Email     string
	ExpiresAt time.Time
}

func (s *Store) Identity() (*Identity, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNoSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}

	id := &Identity{}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	} else if sub, ok := claims["sub"].(string); ok {
		id.Email = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, nil
}

// Snapshot is the persisted form of one successful analysis, the
// CLI's equivalent of the result kept on screen between actions.
type Snapshot struct {
	ResumeName string                `json:"resume_name"`
	JobRole    string                `json:"job_role,omitempty"`
	SavedAt    time.Time             `json:"saved_at"`
	Result     *model.AnalysisResult `json:"result"`
}

func (s *Store) SaveResult(snap *Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(s.dir, snapshotFile), data, 0o600)
}

func (s *Store) LoadResult() (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, snapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoResult
		}
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("read analysis snapshot: %w", err)
	}
	if snap.Result == nil {
		return nil, ErrNoResult
	}
	return &snap, nil
}

func (s *Store) ClearResult() error {
	err := os.Remove(filepath.Join(s.dir, snapshotFile))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// writeAtomic writes via a temp file and rename so a crash never
// leaves a half-written token or snapshot.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
