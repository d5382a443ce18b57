package library

import "github.com/0kam/pamsched/pkg/payloads"

// Codec converts between the JSON wire representation of a recording
// schedule and the typed model. Parsing is a single-pass validation
// pipeline: any defect in the input fails immediately with one of the
// payloads sentinel errors and no partial schedule is ever returned.
type Codec interface {
	// Parse decodes and validates a JSON document.
	Parse(text string) (*payloads.Schedule, error)
	// ParseMap validates an already-decoded generic JSON object.
	ParseMap(doc map[string]any) (*payloads.Schedule, error)

	// Serialize emits the canonical JSON text for a schedule: exactly the
	// keys version, pattern_type and the one payload key named after
	// pattern_type.
	Serialize(schedule *payloads.Schedule) (string, error)
	// SerializeMap emits the same document as a generic JSON object.
	SerializeMap(schedule *payloads.Schedule) (map[string]any, error)
}
