package payloads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNew(t *testing.T) {
	t.Run("continuous with explicit payload", func(t *testing.T) {
		s, err := New("0.1.0", PatternContinuous, &ContinuousPattern{StartAt: strPtr("2025-06-01T00:00:00Z")})
		require.NoError(t, err)
		assert.Equal(t, "0.1.0", s.Version)
		assert.Equal(t, PatternContinuous, s.PatternType)
		require.NotNil(t, s.Continuous)
		assert.Equal(t, "2025-06-01T00:00:00Z", *s.Continuous.StartAt)
		assert.Nil(t, s.Scheduled)
		assert.Nil(t, s.Triggered)
	})

	t.Run("continuous accepts nil payload", func(t *testing.T) {
		s, err := New("0.1.0", PatternContinuous, nil)
		require.NoError(t, err)
		require.NotNil(t, s.Continuous)
		assert.Nil(t, s.Continuous.StartAt)
		assert.Nil(t, s.Continuous.EndAt)
	})

	t.Run("variant may be passed by value", func(t *testing.T) {
		s, err := New("0.1.0", PatternContinuous, ContinuousPattern{})
		require.NoError(t, err)
		require.NotNil(t, s.Continuous)
	})

	t.Run("scheduled", func(t *testing.T) {
		s, err := New("0.1.0", PatternScheduled, &ScheduledPattern{
			Windows: []Window{{WindowType: WindowFixed, Start: "06:00", End: "09:00"}},
			Cycle:   Cycle{RecordSeconds: 60, SleepSeconds: 240},
		})
		require.NoError(t, err)
		assert.Equal(t, PatternScheduled, s.PatternType)
		require.NotNil(t, s.Scheduled)
	})

	t.Run("empty version is rejected", func(t *testing.T) {
		_, err := New("", PatternContinuous, nil)
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("unknown tag is rejected", func(t *testing.T) {
		_, err := New("0.1.0", PatternType("bogus"), nil)
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("mismatched tag and payload is rejected", func(t *testing.T) {
		_, err := New("0.1.0", PatternContinuous, &TriggeredPattern{})
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("nil payload for a variant with required fields is rejected", func(t *testing.T) {
		_, err := New("0.1.0", PatternScheduled, nil)
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("unsupported payload type is rejected", func(t *testing.T) {
		_, err := New("0.1.0", PatternContinuous, 42)
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("trigger without its sub-payload is rejected", func(t *testing.T) {
		_, err := New("0.1.0", PatternTriggered, &TriggeredPattern{
			Triggers: []Trigger{{TriggerType: TriggerSensor}},
		})
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("trigger with a foreign sub-payload is rejected", func(t *testing.T) {
		_, err := New("0.1.0", PatternTriggered, &TriggeredPattern{
			Triggers: []Trigger{{
				TriggerType: TriggerSensor,
				Sensor:      &SensorTrigger{Kind: "temperature_c", Op: ">", Threshold: 20},
				Audio:       &AudioTrigger{ClassLabel: "bird", MinConfidence: 0.8},
			}},
		})
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("unknown window type is rejected", func(t *testing.T) {
		_, err := New("0.1.0", PatternScheduled, &ScheduledPattern{
			Windows: []Window{{WindowType: WindowType("lunar"), Start: "06:00", End: "09:00"}},
			Cycle:   Cycle{RecordSeconds: 60, SleepSeconds: 240},
		})
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})
}

func TestValidate(t *testing.T) {
	t.Run("two populated payloads", func(t *testing.T) {
		s := &Schedule{
			Version:     "0.1.0",
			PatternType: PatternContinuous,
			Continuous:  &ContinuousPattern{},
			Triggered:   &TriggeredPattern{},
		}
		assert.ErrorIs(t, s.Validate(), ErrInvalidPattern)
	})

	t.Run("payload under the wrong key", func(t *testing.T) {
		s := &Schedule{
			Version:     "0.1.0",
			PatternType: PatternContinuous,
			Scheduled:   &ScheduledPattern{},
		}
		assert.ErrorIs(t, s.Validate(), ErrInvalidPattern)
	})

	t.Run("wrong key for every tag", func(t *testing.T) {
		cases := map[PatternType]*Schedule{
			PatternContinuous: {Version: "0.1.0", PatternType: PatternContinuous, Triggered: &TriggeredPattern{}},
			PatternScheduled:  {Version: "0.1.0", PatternType: PatternScheduled, Continuous: &ContinuousPattern{}},
			PatternTriggered:  {Version: "0.1.0", PatternType: PatternTriggered, Scheduled: &ScheduledPattern{}},
		}
		for tag, s := range cases {
			assert.ErrorIs(t, s.Validate(), ErrInvalidPattern, "tag %q", tag)
		}
	})

	t.Run("nil schedule", func(t *testing.T) {
		var s *Schedule
		assert.ErrorIs(t, s.Validate(), ErrInvalidPattern)
	})

	t.Run("valid hand-built schedule", func(t *testing.T) {
		s := &Schedule{
			Version:     "0.1.0",
			PatternType: PatternContinuous,
			Continuous:  &ContinuousPattern{},
		}
		assert.NoError(t, s.Validate())
	})
}

func TestPattern(t *testing.T) {
	continuous, err := New("0.1.0", PatternContinuous, nil)
	require.NoError(t, err)
	assert.Same(t, continuous.Continuous, continuous.Pattern())

	triggered, err := New("0.1.0", PatternTriggered, &TriggeredPattern{
		Triggers: []Trigger{{
			TriggerType: TriggerEvent,
			Event:       &EventTrigger{Name: "rain_stopped"},
		}},
	})
	require.NoError(t, err)

	switch p := triggered.Pattern().(type) {
	case *TriggeredPattern:
		require.Len(t, p.Triggers, 1)
		assert.Equal(t, "rain_stopped", p.Triggers[0].Event.Name)
	default:
		t.Fatalf("unexpected pattern type %T", p)
	}

	t.Run("unset selected payload yields plain nil", func(t *testing.T) {
		s := &Schedule{
			Version:     "0.1.0",
			PatternType: PatternContinuous,
			Scheduled:   &ScheduledPattern{},
		}
		// A boxed (*ContinuousPattern)(nil) would make this comparison fail.
		assert.True(t, s.Pattern() == nil)
	})
}

func TestEqual(t *testing.T) {
	scheduled := func() *Schedule {
		return &Schedule{
			Version:     "0.1.0",
			PatternType: PatternScheduled,
			Scheduled: &ScheduledPattern{
				Windows: []Window{{
					WindowType: WindowSolar,
					Start:      "sunrise-10m",
					End:        "sunset+10m",
					DaysOfWeek: []string{"Mon", "Tue"},
					Months:     []int{4, 5, 6},
				}},
				Cycle:    Cycle{RecordSeconds: 60, SleepSeconds: 240},
				Timezone: strPtr("Asia/Tokyo"),
			},
		}
	}

	t.Run("equal values", func(t *testing.T) {
		assert.True(t, scheduled().Equal(scheduled()))
	})

	t.Run("different version", func(t *testing.T) {
		other := scheduled()
		other.Version = "0.2.0"
		assert.False(t, scheduled().Equal(other))
	})

	t.Run("different nested field", func(t *testing.T) {
		other := scheduled()
		other.Scheduled.Windows[0].Start = "sunrise"
		assert.False(t, scheduled().Equal(other))
	})

	t.Run("different optional pointer", func(t *testing.T) {
		other := scheduled()
		other.Scheduled.Timezone = nil
		assert.False(t, scheduled().Equal(other))
	})

	t.Run("pointer identity is irrelevant", func(t *testing.T) {
		a := &Schedule{Version: "0.1.0", PatternType: PatternContinuous, Continuous: &ContinuousPattern{StartAt: strPtr("2025-06-01T00:00:00Z")}}
		b := &Schedule{Version: "0.1.0", PatternType: PatternContinuous, Continuous: &ContinuousPattern{StartAt: strPtr("2025-06-01T00:00:00Z")}}
		assert.True(t, a.Equal(b))
	})

	t.Run("triggered max duration", func(t *testing.T) {
		a := &Schedule{Version: "0.1.0", PatternType: PatternTriggered, Triggered: &TriggeredPattern{MaxDuration: intPtr(300)}}
		b := &Schedule{Version: "0.1.0", PatternType: PatternTriggered, Triggered: &TriggeredPattern{MaxDuration: intPtr(600)}}
		assert.False(t, a.Equal(b))
	})

	t.Run("nil receiver or argument", func(t *testing.T) {
		var nilSchedule *Schedule
		assert.True(t, nilSchedule.Equal(nil))
		assert.False(t, scheduled().Equal(nil))
	})
}
