package payloads

// TriggerType is the discriminator selecting which trigger configuration a
// Trigger carries. It mirrors the envelope's pattern_type dispatch one level
// down: the sub-payload named by the tag must be populated.
type TriggerType string

const (
	TriggerSensor TriggerType = "sensor"
	TriggerAudio  TriggerType = "audio"
	TriggerEvent  TriggerType = "event"
)

func (t TriggerType) Valid() bool {
	switch t {
	case TriggerSensor, TriggerAudio, TriggerEvent:
		return true
	}
	return false
}

func (t TriggerType) String() string {
	return string(t)
}

// SensorTrigger starts recording when a sensor reading crosses a threshold.
// Kind names the reading (e.g. "temperature_c", "light_lux", "battery_v")
// and Op is one of ">", ">=", "<", "<=".
type SensorTrigger struct {
	Kind      string  `json:"kind"`
	Op        string  `json:"op"`
	Threshold float64 `json:"threshold"`
}

// AudioTrigger starts recording when an on-device classifier detects
// ClassLabel with at least MinConfidence (0.0 to 1.0). The wire key for the
// label is "class".
type AudioTrigger struct {
	ClassLabel    string  `json:"class"`
	MinConfidence float64 `json:"min_confidence"`
}

// EventTrigger starts recording OffsetSeconds after the named abstract
// event (e.g. "rain_stopped"). A zero offset fires at the event itself.
type EventTrigger struct {
	Name          string `json:"name"`
	OffsetSeconds int    `json:"offset_seconds"`
}

// Trigger is a single trigger configuration: a type tag plus exactly one
// matching sub-payload.
type Trigger struct {
	TriggerType TriggerType    `json:"trigger_type"`
	Sensor      *SensorTrigger `json:"sensor,omitempty"`
	Audio       *AudioTrigger  `json:"audio,omitempty"`
	Event       *EventTrigger  `json:"event,omitempty"`
}

// Validate checks that the sub-payload named by TriggerType is present and
// that no foreign sub-payload is attached.
func (t Trigger) Validate() error {
	if !t.TriggerType.Valid() {
		return ErrInvalidPattern.WithDetailf("unknown trigger type %q", string(t.TriggerType))
	}

	populated := 0
	if t.Sensor != nil {
		populated++
	}
	if t.Audio != nil {
		populated++
	}
	if t.Event != nil {
		populated++
	}
	if populated != 1 {
		return ErrInvalidPattern.WithDetailf("trigger must carry exactly one payload, has %d", populated)
	}

	switch t.TriggerType {
	case TriggerSensor:
		if t.Sensor == nil {
			return ErrInvalidPattern.WithDetailf("trigger type %q requires a sensor payload", string(t.TriggerType))
		}
	case TriggerAudio:
		if t.Audio == nil {
			return ErrInvalidPattern.WithDetailf("trigger type %q requires an audio payload", string(t.TriggerType))
		}
	case TriggerEvent:
		if t.Event == nil {
			return ErrInvalidPattern.WithDetailf("trigger type %q requires an event payload", string(t.TriggerType))
		}
	}
	return nil
}

func (t Trigger) Equal(o Trigger) bool {
	return t.TriggerType == o.TriggerType &&
		ptrEqual(t.Sensor, o.Sensor) &&
		ptrEqual(t.Audio, o.Audio) &&
		ptrEqual(t.Event, o.Event)
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// TriggeredPattern records when any of its triggers fires. MaxDuration
// optionally caps a single triggered recording in seconds.
type TriggeredPattern struct {
	Triggers    []Trigger `json:"triggers"`
	MaxDuration *int      `json:"max_duration,omitempty"`
}

func (t *TriggeredPattern) Equal(o *TriggeredPattern) bool {
	if t == nil || o == nil {
		return t == o
	}
	if !ptrEqual(t.MaxDuration, o.MaxDuration) {
		return false
	}
	if len(t.Triggers) != len(o.Triggers) {
		return false
	}
	for i := range t.Triggers {
		if !t.Triggers[i].Equal(o.Triggers[i]) {
			return false
		}
	}
	return true
}
