package typingcore

import (
	"github.com/gofrs/uuid"

	"github.com/dskaw/typingcore/engine"
)

// Attempt is the output record produced exactly once when an engine
// session reports completion. It carries enough of the policy that was in
// effect to reproduce the session, plus caller-supplied identity and
// timing, since the core does not measure time itself.
type Attempt struct {
	ID               string `yaml:"id" json:"id"`
	FilePath         string `yaml:"filePath" json:"filePath"`
	FileName         string `yaml:"fileName" json:"fileName"`
	SegmentIndex     int    `yaml:"segmentIndex" json:"segmentIndex"`
	SegmentStartLine int    `yaml:"segmentStartLine" json:"segmentStartLine"`
	SegmentEndLine   int    `yaml:"segmentEndLine" json:"segmentEndLine"`

	LinesPerSegment int `yaml:"linesPerSegment" json:"linesPerSegment"`
	TabWidth        int `yaml:"tabWidth" json:"tabWidth"`
	SlackN          int `yaml:"slackN" json:"slackN"`

	TypeableChars   int `yaml:"typeableChars" json:"typeableChars"`
	TypedKeystrokes int `yaml:"typedKeystrokes" json:"typedKeystrokes"`
	Incorrect       int `yaml:"incorrect" json:"incorrect"`
	Collateral      int `yaml:"collateral" json:"collateral"`
	Backspaces      int `yaml:"backspaces" json:"backspaces"`
	CorrectChars    int `yaml:"correctChars" json:"correctChars"`

	StartAtMs  int64 `yaml:"startAtMs" json:"startAtMs"`
	EndAtMs    int64 `yaml:"endAtMs" json:"endAtMs"`
	DurationMs int64 `yaml:"durationMs" json:"durationMs"`

	WPM                float64 `yaml:"wpm" json:"wpm"`
	UnproductivePercent float64 `yaml:"unproductivePercent" json:"unproductivePercent"`
}

// NewAttemptID generates the random identifier assigned to a newly
// assembled Attempt.
func NewAttemptID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// AssembleAttempt builds an Attempt from a completed engine session, the
// segment location it ran over, and caller-supplied identity and timing.
// durationMs is clamped to be non-negative, matching endAtMs - startAtMs
// never going backwards in the output record.
func AssembleAttempt(s *engine.State, opts Options, filePath, fileName string, segmentIndex, segmentStartLine, segmentEndLine int, startAtMs, endAtMs int64) Attempt {
	duration := endAtMs - startAtMs
	if duration < 0 {
		duration = 0
	}

	a := Attempt{
		ID:               NewAttemptID(),
		FilePath:         filePath,
		FileName:         fileName,
		SegmentIndex:     segmentIndex,
		SegmentStartLine: segmentStartLine,
		SegmentEndLine:   segmentEndLine,

		LinesPerSegment: opts.LinesPerSegment,
		TabWidth:        opts.TabWidth,
		SlackN:          opts.SlackN,

		TypeableChars:   s.TypeableChars(),
		TypedKeystrokes: s.TypedKeystrokes(),
		Incorrect:       s.Incorrect(),
		Collateral:      s.Collateral(),
		Backspaces:      s.Backspaces(),
		CorrectChars:    s.CorrectChars(),

		StartAtMs:  startAtMs,
		EndAtMs:    endAtMs,
		DurationMs: duration,
	}
	a.WPM = WPM(a.CorrectChars, a.DurationMs)
	a.UnproductivePercent = UnproductivePercent(a.TypedKeystrokes, a.Incorrect, a.Collateral, a.Backspaces)
	return a
}
