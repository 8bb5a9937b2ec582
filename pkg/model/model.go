package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnalysisResult is the report returned by POST /analyze/. Field names
// mirror the wire form. Optional sections decode to nil slices.
type AnalysisResult struct {
	MatchScore           float64       `json:"match_score"`
	ReadinessLevel       string        `json:"readiness_level"`
	FullyMatched         []Skill       `json:"fully_matched,omitempty"`
	PartiallyMatched     []Skill       `json:"partially_matched,omitempty"`
	FullyMissing         []Skill       `json:"fully_missing,omitempty"`
	ResumeSkills         []Skill       `json:"resume_skills,omitempty"`
	Suggestions          []Suggestion  `json:"suggestions,omitempty"`
	Roadmap              []RoadmapStep `json:"roadmap,omitempty"`
	EstimatedDaysToReady int           `json:"estimated_days_to_ready"`
}

type HistoryEntry struct {
	ID            int     `json:"id"`
	ResumeName    string  `json:"resume_name"`
	MatchScore    float64 `json:"match_score"`
	EstimatedDays int     `json:"estimated_days"`
}

type SkillKind int

const (
	SkillPlain SkillKind = iota
	SkillStructured
)

// Skill arrives on the wire either as a bare string or as an object
// carrying a "name" and/or "skill" field. Every consumer goes through
// Display instead of touching the fields directly.
type Skill struct {
	Kind SkillKind
	Text string // plain form
	Name string // structured form
	Alt  string // structured "skill" field

	raw json.RawMessage
}

func PlainSkill(text string) Skill {
	return Skill{Kind: SkillPlain, Text: text}
}

func (s *Skill) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Skill{Kind: SkillPlain, Text: str}
		return nil
	}

	var obj struct {
		Name  string `json:"name"`
		Skill string `json:"skill"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("skill entry: %w", err)
	}
	*s = Skill{
		Kind: SkillStructured,
		Name: obj.Name,
		Alt:  obj.Skill,
		raw:  append(json.RawMessage(nil), data...),
	}
	return nil
}

func (s Skill) MarshalJSON() ([]byte, error) {
	if s.Kind == SkillPlain {
		return json.Marshal(s.Text)
	}
	if len(s.raw) > 0 {
		return s.raw, nil
	}
	obj := map[string]string{}
	if s.Name != "" {
		obj["name"] = s.Name
	}
	if s.Alt != "" {
		obj["skill"] = s.Alt
	}
	return json.Marshal(obj)
}

// Display normalizes either form to text: name, then skill, then the
// raw JSON as a last resort.
func (s Skill) Display() string {
	switch {
	case s.Kind == SkillPlain:
		return s.Text
	case s.Name != "":
		return s.Name
	case s.Alt != "":
		return s.Alt
	default:
		return string(s.raw)
	}
}

// DisplayList maps skills to their display text, preserving order.
func DisplayList(skills []Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = s.Display()
	}
	return out
}

// JoinSkills comma-joins display names, or returns "None" for an
// empty list (report table convention).
func JoinSkills(skills []Skill) string {
	if len(skills) == 0 {
		return "None"
	}
	return strings.Join(DisplayList(skills), ", ")
}

// RoadmapStep is either a verbatim string or a structured step with a
// skill, an estimated duration, and sub-tasks.
type RoadmapStep struct {
	Verbatim     string   `json:"-"`
	Skill        string   `json:"skill"`
	DurationDays int      `json:"duration_days"`
	Tasks        []string `json:"tasks"`

	raw json.RawMessage
}

func (r *RoadmapStep) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*r = RoadmapStep{Verbatim: str}
		return nil
	}

	type alias RoadmapStep
	var step alias
	if err := json.Unmarshal(data, &step); err != nil {
		return fmt.Errorf("roadmap entry: %w", err)
	}
	*r = RoadmapStep(step)
	r.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (r RoadmapStep) MarshalJSON() ([]byte, error) {
	if r.Verbatim != "" {
		return json.Marshal(r.Verbatim)
	}
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	type alias RoadmapStep
	return json.Marshal(alias(r))
}

// Display renders "skill (N days) - task1, task2" for structured
// steps and the verbatim text otherwise.
func (r RoadmapStep) Display() string {
	if r.Verbatim != "" {
		return r.Verbatim
	}
	if r.Skill == "" {
		return string(r.raw)
	}

	var b strings.Builder
	b.WriteString(r.Skill)
	if r.DurationDays > 0 {
		fmt.Fprintf(&b, " (%d days)", r.DurationDays)
	}
	if len(r.Tasks) > 0 {
		b.WriteString(" - ")
		b.WriteString(strings.Join(r.Tasks, ", "))
	}
	return b.String()
}

// Suggestion is either a bare string or an object whose text lives
// under "text", "suggestion", or "message".
type Suggestion struct {
	Text string

	raw json.RawMessage
}

func (s *Suggestion) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Suggestion{Text: str}
		return nil
	}

	var obj struct {
		Text       string `json:"text"`
		Suggestion string `json:"suggestion"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("suggestion entry: %w", err)
	}
	text := obj.Text
	if text == "" {
		text = obj.Suggestion
	}
	if text == "" {
		text = obj.Message
	}
	*s = Suggestion{Text: text, raw: append(json.RawMessage(nil), data...)}
	return nil
}

func (s Suggestion) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}
	return json.Marshal(s.Text)
}

func (s Suggestion) Display() string {
	if s.Text != "" {
		return s.Text
	}
	return string(s.raw)
}
