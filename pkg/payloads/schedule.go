// Package payloads defines the value types of the PAM recording schedule
// DSL: a versioned envelope holding exactly one pattern variant, selected by
// a pattern_type discriminator. Values are treated as immutable once
// constructed and compare structurally via Equal.
package payloads

// Schedule is the root object of the DSL. Exactly one of the payload fields
// is non-nil, and its json key equals PatternType. Construct through New to
// keep that invariant; a hand-built Schedule can be checked with Validate.
type Schedule struct {
	Version     string             `json:"version"`
	PatternType PatternType        `json:"pattern_type"`
	Continuous  *ContinuousPattern `json:"continuous,omitempty"`
	Scheduled   *ScheduledPattern  `json:"scheduled,omitempty"`
	Triggered   *TriggeredPattern  `json:"triggered,omitempty"`
}

// New builds a Schedule from a version string, a pattern tag and the
// matching variant value. The variant may be passed as a pointer to any of
// the pattern types; its runtime kind must match the tag. Passing a nil
// variant for the continuous tag yields an empty continuous payload, since
// that variant has no required fields. Any violation is reported as
// ErrInvalidPattern and nothing is stored.
func New(version string, patternType PatternType, pattern any) (*Schedule, error) {
	if version == "" {
		return nil, ErrInvalidPattern.WithDetailf("version must not be empty")
	}
	if !patternType.Valid() {
		return nil, ErrInvalidPattern.WithDetailf("unknown pattern type %q", string(patternType))
	}

	s := &Schedule{Version: version, PatternType: patternType}

	switch p := pattern.(type) {
	case nil:
		if patternType != PatternContinuous {
			return nil, ErrInvalidPattern.WithDetailf("pattern type %q requires a payload", string(patternType))
		}
		s.Continuous = &ContinuousPattern{}
	case *ContinuousPattern:
		s.Continuous = p
	case ContinuousPattern:
		s.Continuous = &p
	case *ScheduledPattern:
		s.Scheduled = p
	case ScheduledPattern:
		s.Scheduled = &p
	case *TriggeredPattern:
		s.Triggered = p
	case TriggeredPattern:
		s.Triggered = &p
	default:
		return nil, ErrInvalidPattern.WithDetailf("unsupported pattern value of type %T", pattern)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Pattern returns the active variant as *ContinuousPattern,
// *ScheduledPattern or *TriggeredPattern, or nil when the field selected by
// the tag is unset. Callers branch on PatternType to recover the concrete
// type. The nil pointers are never boxed, so the result compares equal to
// plain nil.
func (s *Schedule) Pattern() any {
	switch s.PatternType {
	case PatternContinuous:
		if s.Continuous != nil {
			return s.Continuous
		}
	case PatternScheduled:
		if s.Scheduled != nil {
			return s.Scheduled
		}
	case PatternTriggered:
		if s.Triggered != nil {
			return s.Triggered
		}
	}
	return nil
}

// Validate checks the envelope invariants: a non-empty version, a known
// tag, exactly one populated payload, and that the payload matches the tag.
// Pattern internals with their own discriminators (triggers) are validated
// recursively.
func (s *Schedule) Validate() error {
	if s == nil {
		return ErrInvalidPattern.WithDetailf("schedule must not be nil")
	}
	if s.Version == "" {
		return ErrInvalidPattern.WithDetailf("version must not be empty")
	}
	if !s.PatternType.Valid() {
		return ErrInvalidPattern.WithDetailf("unknown pattern type %q", string(s.PatternType))
	}

	populated := 0
	if s.Continuous != nil {
		populated++
	}
	if s.Scheduled != nil {
		populated++
	}
	if s.Triggered != nil {
		populated++
	}
	if populated != 1 {
		return ErrInvalidPattern.WithDetailf("schedule must carry exactly one pattern payload, has %d", populated)
	}
	var matched bool
	switch s.PatternType {
	case PatternContinuous:
		matched = s.Continuous != nil
	case PatternScheduled:
		matched = s.Scheduled != nil
	case PatternTriggered:
		matched = s.Triggered != nil
	}
	if !matched {
		return ErrInvalidPattern.WithDetailf("pattern type %q does not match the populated payload", string(s.PatternType))
	}

	if s.Triggered != nil {
		for i, trigger := range s.Triggered.Triggers {
			if err := trigger.Validate(); err != nil {
				return ErrInvalidPattern.WithDetailf("triggers[%d]: %v", i, err)
			}
		}
	}
	if s.Scheduled != nil {
		for i, window := range s.Scheduled.Windows {
			if !window.WindowType.Valid() {
				return ErrInvalidPattern.WithDetailf("windows[%d]: unknown window type %q", i, string(window.WindowType))
			}
		}
	}
	return nil
}

// Equal reports structural equality: same version, same tag, and equal
// field values on the active pattern.
func (s *Schedule) Equal(o *Schedule) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Version == o.Version &&
		s.PatternType == o.PatternType &&
		s.Continuous.Equal(o.Continuous) &&
		s.Scheduled.Equal(o.Scheduled) &&
		s.Triggered.Equal(o.Triggered)
}
