package payloads

// PatternType is the discriminator selecting which scheduling strategy a
// schedule uses. Exactly one payload field, named after the tag, is
// populated on the envelope.
type PatternType string

const (
	PatternContinuous PatternType = "continuous"
	PatternScheduled  PatternType = "scheduled"
	PatternTriggered  PatternType = "triggered"
)

// PatternTypes returns the enumerated tag set in a stable order.
func PatternTypes() []PatternType {
	return []PatternType{PatternContinuous, PatternScheduled, PatternTriggered}
}

func (p PatternType) Valid() bool {
	switch p {
	case PatternContinuous, PatternScheduled, PatternTriggered:
		return true
	}
	return false
}

func (p PatternType) String() string {
	return string(p)
}

// ContinuousPattern records without interruption. Both bounds are optional
// ISO 8601 datetime strings: a nil StartAt starts immediately, a nil EndAt
// records until stopped. The variant therefore has zero required fields and
// an empty payload (or an absent payload key) is valid.
type ContinuousPattern struct {
	StartAt *string `json:"start_at,omitempty"`
	EndAt   *string `json:"end_at,omitempty"`
}

func (c *ContinuousPattern) Equal(o *ContinuousPattern) bool {
	if c == nil || o == nil {
		return c == o
	}
	return ptrEqual(c.StartAt, o.StartAt) && ptrEqual(c.EndAt, o.EndAt)
}

// Cycle is the duty cycle applied inside active windows: record for
// RecordSeconds, then sleep for SleepSeconds.
type Cycle struct {
	RecordSeconds int `json:"record_seconds"`
	SleepSeconds  int `json:"sleep_seconds"`
}

// WindowType distinguishes clock-time windows from solar-relative ones.
type WindowType string

const (
	WindowFixed WindowType = "fixed"
	WindowSolar WindowType = "solar"
)

func (w WindowType) Valid() bool {
	return w == WindowFixed || w == WindowSolar
}

// Window is a recurring time window during which a scheduled pattern is
// active. Start and End are "HH:MM" for fixed windows or solar offsets such
// as "sunrise-10m"/"sunset+10m" for solar windows. Nil DaysOfWeek applies to
// every day, nil Months to every month.
type Window struct {
	WindowType WindowType `json:"window_type"`
	Start      string     `json:"start"`
	End        string     `json:"end"`
	DaysOfWeek []string   `json:"days_of_week,omitempty"`
	Months     []int      `json:"months,omitempty"`
}

func (w Window) Equal(o Window) bool {
	if w.WindowType != o.WindowType || w.Start != o.Start || w.End != o.End {
		return false
	}
	if len(w.DaysOfWeek) != len(o.DaysOfWeek) || len(w.Months) != len(o.Months) {
		return false
	}
	for i := range w.DaysOfWeek {
		if w.DaysOfWeek[i] != o.DaysOfWeek[i] {
			return false
		}
	}
	for i := range w.Months {
		if w.Months[i] != o.Months[i] {
			return false
		}
	}
	return true
}

// ScheduledPattern records on a duty cycle inside one or more time windows.
// Timezone is an optional IANA zone name such as "Asia/Tokyo"; nil leaves
// the interpretation to the device (UTC or local time).
type ScheduledPattern struct {
	Windows  []Window `json:"windows"`
	Cycle    Cycle    `json:"cycle"`
	Timezone *string  `json:"timezone,omitempty"`
}

func (s *ScheduledPattern) Equal(o *ScheduledPattern) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.Cycle != o.Cycle || !ptrEqual(s.Timezone, o.Timezone) {
		return false
	}
	if len(s.Windows) != len(o.Windows) {
		return false
	}
	for i := range s.Windows {
		if !s.Windows[i].Equal(o.Windows[i]) {
			return false
		}
	}
	return true
}
