package codec

import (
	"math"

	"github.com/mitchellh/mapstructure"

	"github.com/0kam/pamsched/internal/common/core"
	"github.com/0kam/pamsched/pkg/payloads"
)

// The accessors below walk the generic JSON document and translate every
// defect into a sentinel error carrying the dotted path of the offending
// field. JSON null is treated as an absent value: required fields reject it,
// optional fields ignore it (the DSL historically serialized unset optionals
// as nulls).

func getString(raw map[string]any, path *core.FieldPath, key string) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", payloads.ErrMissingField.WithField(path.Key(key).Build())
	}
	s, ok := v.(string)
	if !ok {
		return "", payloads.ErrTypeMismatch.WithDetailf("%s must be a string, got %T", path.Key(key).Build(), v)
	}
	return s, nil
}

func optString(raw map[string]any, path *core.FieldPath, key string) (*string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, payloads.ErrTypeMismatch.WithDetailf("%s must be a string, got %T", path.Key(key).Build(), v)
	}
	return &s, nil
}

// JSON has no integer type, so integral values arrive as float64. A
// fractional part is a type mismatch, not a rounding opportunity.
func toInt(v any, fieldPath string) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, payloads.ErrTypeMismatch.WithDetailf("%s must be an integer, got %v", fieldPath, n)
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, payloads.ErrTypeMismatch.WithDetailf("%s must be an integer, got %T", fieldPath, v)
	}
}

func getInt(raw map[string]any, path *core.FieldPath, key string) (int, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, payloads.ErrMissingField.WithField(path.Key(key).Build())
	}
	return toInt(v, path.Key(key).Build())
}

func optInt(raw map[string]any, path *core.FieldPath, key string) (*int, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	n, err := toInt(v, path.Key(key).Build())
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func getFloat(raw map[string]any, path *core.FieldPath, key string) (float64, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, payloads.ErrMissingField.WithField(path.Key(key).Build())
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, payloads.ErrTypeMismatch.WithDetailf("%s must be a number, got %T", path.Key(key).Build(), v)
	}
}

func getObject(raw map[string]any, path *core.FieldPath, key string) (map[string]any, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, payloads.ErrMissingField.WithField(path.Key(key).Build())
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, payloads.ErrTypeMismatch.WithDetailf("%s must be an object, got %T", path.Key(key).Build(), v)
	}
	return m, nil
}

func getArray(raw map[string]any, path *core.FieldPath, key string) ([]any, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, payloads.ErrMissingField.WithField(path.Key(key).Build())
	}
	a, ok := v.([]any)
	if !ok {
		return nil, payloads.ErrTypeMismatch.WithDetailf("%s must be an array, got %T", path.Key(key).Build(), v)
	}
	return a, nil
}

func optStringArray(raw map[string]any, path *core.FieldPath, key string) error {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	a, ok := v.([]any)
	if !ok {
		return payloads.ErrTypeMismatch.WithDetailf("%s must be an array, got %T", path.Key(key).Build(), v)
	}
	for i, e := range a {
		if _, ok := e.(string); !ok {
			return payloads.ErrTypeMismatch.WithDetailf("%s must be a string, got %T", path.Key(key).Index(i).Build(), e)
		}
	}
	return nil
}

func optIntArray(raw map[string]any, path *core.FieldPath, key string) error {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil
	}
	a, ok := v.([]any)
	if !ok {
		return payloads.ErrTypeMismatch.WithDetailf("%s must be an array, got %T", path.Key(key).Build(), v)
	}
	for i, e := range a {
		if _, err := toInt(e, path.Key(key).Index(i).Build()); err != nil {
			return err
		}
	}
	return nil
}

// checkKnownKeys rejects keys outside the allowed set. Only called in
// strict mode; the default is to ignore extras for forward compatibility.
func checkKnownKeys(raw map[string]any, path *core.FieldPath, allowed ...string) error {
	for key := range raw {
		known := false
		for _, a := range allowed {
			if key == a {
				known = true
				break
			}
		}
		if !known {
			return payloads.ErrUnknownField.WithField(path.Key(key).Build())
		}
	}
	return nil
}

// decodePayload mechanically converts a validated JSON object into a typed
// variant struct. Shape and type checking happened before this point, so a
// decode failure here means a validator missed a case.
func decodePayload(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return payloads.ErrTypeMismatch.WithDetailf("%v", err)
	}
	return nil
}

// decodeContinuous accepts a nil payload: the variant has no required
// fields, so the payload key may be absent entirely.
func (s *Service) decodeContinuous(path *core.FieldPath, raw map[string]any) (any, error) {
	pattern := &payloads.ContinuousPattern{}
	if raw == nil {
		return pattern, nil
	}
	if s.strict {
		if err := checkKnownKeys(raw, path, "start_at", "end_at"); err != nil {
			return nil, err
		}
	}
	if _, err := optString(raw, path, "start_at"); err != nil {
		return nil, err
	}
	if _, err := optString(raw, path, "end_at"); err != nil {
		return nil, err
	}
	if err := decodePayload(raw, pattern); err != nil {
		return nil, err
	}
	return pattern, nil
}

func (s *Service) decodeScheduled(path *core.FieldPath, raw map[string]any) (any, error) {
	if raw == nil {
		return nil, payloads.ErrMissingField.WithField(path.Build())
	}
	if s.strict {
		if err := checkKnownKeys(raw, path, "windows", "cycle", "timezone"); err != nil {
			return nil, err
		}
	}

	cycleRaw, err := getObject(raw, path, "cycle")
	if err != nil {
		return nil, err
	}
	if err := s.validateCycle(path.Key("cycle"), cycleRaw); err != nil {
		return nil, err
	}

	windowsRaw, err := getArray(raw, path, "windows")
	if err != nil {
		return nil, err
	}
	for i, w := range windowsRaw {
		windowPath := path.Key("windows").Index(i)
		windowRaw, ok := w.(map[string]any)
		if !ok {
			return nil, payloads.ErrTypeMismatch.WithDetailf("%s must be an object, got %T", windowPath.Build(), w)
		}
		if err := s.validateWindow(windowPath, windowRaw); err != nil {
			return nil, err
		}
	}

	if _, err := optString(raw, path, "timezone"); err != nil {
		return nil, err
	}

	pattern := &payloads.ScheduledPattern{}
	if err := decodePayload(raw, pattern); err != nil {
		return nil, err
	}
	if pattern.Windows == nil {
		pattern.Windows = []payloads.Window{}
	}
	return pattern, nil
}

func (s *Service) validateCycle(path *core.FieldPath, raw map[string]any) error {
	if s.strict {
		if err := checkKnownKeys(raw, path, "record_seconds", "sleep_seconds"); err != nil {
			return err
		}
	}
	if _, err := getInt(raw, path, "record_seconds"); err != nil {
		return err
	}
	if _, err := getInt(raw, path, "sleep_seconds"); err != nil {
		return err
	}
	return nil
}

func (s *Service) validateWindow(path *core.FieldPath, raw map[string]any) error {
	if s.strict {
		if err := checkKnownKeys(raw, path, "window_type", "start", "end", "days_of_week", "months"); err != nil {
			return err
		}
	}
	windowType, err := getString(raw, path, "window_type")
	if err != nil {
		return err
	}
	if !payloads.WindowType(windowType).Valid() {
		return payloads.ErrInvalidPattern.WithDetailf("%s: unknown window type %q", path.Key("window_type").Build(), windowType)
	}
	if _, err := getString(raw, path, "start"); err != nil {
		return err
	}
	if _, err := getString(raw, path, "end"); err != nil {
		return err
	}
	if err := optStringArray(raw, path, "days_of_week"); err != nil {
		return err
	}
	return optIntArray(raw, path, "months")
}

func (s *Service) decodeTriggered(path *core.FieldPath, raw map[string]any) (any, error) {
	if raw == nil {
		return nil, payloads.ErrMissingField.WithField(path.Build())
	}
	if s.strict {
		if err := checkKnownKeys(raw, path, "triggers", "max_duration"); err != nil {
			return nil, err
		}
	}

	triggersRaw, err := getArray(raw, path, "triggers")
	if err != nil {
		return nil, err
	}
	for i, tr := range triggersRaw {
		triggerPath := path.Key("triggers").Index(i)
		triggerRaw, ok := tr.(map[string]any)
		if !ok {
			return nil, payloads.ErrTypeMismatch.WithDetailf("%s must be an object, got %T", triggerPath.Build(), tr)
		}
		if err := s.validateTrigger(triggerPath, triggerRaw); err != nil {
			return nil, err
		}
	}

	if _, err := optInt(raw, path, "max_duration"); err != nil {
		return nil, err
	}

	pattern := &payloads.TriggeredPattern{}
	if err := decodePayload(raw, pattern); err != nil {
		return nil, err
	}
	if pattern.Triggers == nil {
		pattern.Triggers = []payloads.Trigger{}
	}
	return pattern, nil
}

// validateTrigger mirrors the envelope's discriminator rule one level down:
// the sub-payload named by trigger_type must be present and well-typed.
func (s *Service) validateTrigger(path *core.FieldPath, raw map[string]any) error {
	triggerType, err := getString(raw, path, "trigger_type")
	if err != nil {
		return err
	}
	tag := payloads.TriggerType(triggerType)
	if !tag.Valid() {
		return payloads.ErrInvalidPattern.WithDetailf("%s: unknown trigger type %q", path.Key("trigger_type").Build(), triggerType)
	}
	if s.strict {
		if err := checkKnownKeys(raw, path, "trigger_type", string(tag)); err != nil {
			return err
		}
	}

	sub, err := getObject(raw, path, string(tag))
	if err != nil {
		return err
	}
	subPath := path.Key(string(tag))

	switch tag {
	case payloads.TriggerSensor:
		if s.strict {
			if err := checkKnownKeys(sub, subPath, "kind", "op", "threshold"); err != nil {
				return err
			}
		}
		if _, err := getString(sub, subPath, "kind"); err != nil {
			return err
		}
		op, err := getString(sub, subPath, "op")
		if err != nil {
			return err
		}
		switch op {
		case ">", ">=", "<", "<=":
		default:
			return payloads.ErrInvalidPattern.WithDetailf("%s: unknown comparison operator %q", subPath.Key("op").Build(), op)
		}
		if _, err := getFloat(sub, subPath, "threshold"); err != nil {
			return err
		}
	case payloads.TriggerAudio:
		if s.strict {
			if err := checkKnownKeys(sub, subPath, "class", "min_confidence"); err != nil {
				return err
			}
		}
		if _, err := getString(sub, subPath, "class"); err != nil {
			return err
		}
		if _, err := getFloat(sub, subPath, "min_confidence"); err != nil {
			return err
		}
	case payloads.TriggerEvent:
		if s.strict {
			if err := checkKnownKeys(sub, subPath, "name", "offset_seconds"); err != nil {
				return err
			}
		}
		if _, err := getString(sub, subPath, "name"); err != nil {
			return err
		}
		if _, err := optInt(sub, subPath, "offset_seconds"); err != nil {
			return err
		}
	}
	return nil
}
