package typingcore

// Options holds the policy values configurable across normalization,
// segmentation, and the typing engine. Out-of-range numeric fields are
// silently coerced to the nearest valid value by Coerced; invalid values
// are never surfaced as errors, per the configuration-domain error policy.
type Options struct {
	LinesPerSegment int
	TabWidth        int
	SlackN          int
	MaxSegmentChars int
	IncludeComments bool

	SkipLeadingIndentation          bool
	TrimTrailingWhitespace          bool
	AutoSkipBlankLines              bool
	AllowWhitespaceAdvanceToNewline bool
}

// DefaultOptions returns the values a fresh practice session starts with.
func DefaultOptions() Options {
	return Options{
		LinesPerSegment:        40,
		TabWidth:               4,
		SlackN:                 10,
		MaxSegmentChars:        2000,
		IncludeComments:        true,
		SkipLeadingIndentation: true,
		TrimTrailingWhitespace: true,
		AutoSkipBlankLines:     true,
	}
}

// Coerced clamps every numeric field to the range the core accepts,
// leaving boolean fields untouched.
func (o Options) Coerced() Options {
	o.LinesPerSegment = clamp(o.LinesPerSegment, 1, 5000)
	o.TabWidth = clamp(o.TabWidth, 0, 16)
	o.SlackN = clamp(o.SlackN, 0, 50)
	o.MaxSegmentChars = clamp(o.MaxSegmentChars, 500, 500000)
	return o
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
