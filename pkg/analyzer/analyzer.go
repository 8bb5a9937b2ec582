package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skilllens/skilllens-cli/pkg/api"
	"github.com/skilllens/skilllens-cli/pkg/input"
	"github.com/skilllens/skilllens-cli/pkg/model"
	"github.com/skilllens/skilllens-cli/pkg/progress"
	"github.com/skilllens/skilllens-cli/pkg/session"
)

// HighScoreThreshold is the match score above which the result earns
// a celebration.
const HighScoreThreshold = 80

// Analyzer runs one analysis end to end: validate input, submit the
// upload, persist the result, refresh history for logged-in users.
type Analyzer struct {
	client *api.Client
	store  *session.Store
}

func New(client *api.Client, store *session.Store) *Analyzer {
	return &Analyzer{client: client, store: store}
}

// Outcome is everything a successful analysis produced.
type Outcome struct {
	Result        *model.AnalysisResult
	Snapshot      *session.Snapshot
	Celebrate     bool
	Authenticated bool

	// History holds the refreshed list when the analysis ran
	// authenticated; nil otherwise.
	History []model.HistoryEntry
}

// Analyze validates the input and submits it. Validation failures
// return before any network traffic. onProgress, when non-nil,
// receives the cycling progress captions while the request is
// pending. On any failure the previously stored result is untouched.
func (a *Analyzer) Analyze(in input.Analysis, onProgress func(string)) (*Outcome, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(in.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	token := a.store.Token()

	var cycler *progress.Cycler
	if onProgress != nil {
		cycler = progress.StartCycler(onProgress)
	}

	result, err := a.client.Analyze(api.AnalyzeRequest{
		FileName:       filepath.Base(in.ResumePath),
		File:           f,
		JobDescription: in.JobDescription,
		JobRole:        in.JobRole,
	}, token)
	if cycler != nil {
		cycler.Stop()
	}
	if err != nil {
		return nil, err
	}

	snap := &session.Snapshot{
		ResumeName: filepath.Base(in.ResumePath),
		JobRole:    strings.TrimSpace(in.JobRole),
		SavedAt:    time.Now(),
		Result:     result,
	}
	if err := a.store.SaveResult(snap); err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}

	outcome := &Outcome{
		Result:        result,
		Snapshot:      snap,
		Celebrate:     ShouldCelebrate(result.MatchScore),
		Authenticated: token != "",
	}
	if token != "" {
		// A failed refresh does not fail the analysis.
		if entries, err := a.client.History(token); err == nil {
			outcome.History = entries
		}
	}
	return outcome, nil
}

// ShouldCelebrate reports whether a score clears the celebration bar.
func ShouldCelebrate(score float64) bool {
	return score > HighScoreThreshold
}
