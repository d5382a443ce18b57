package library

// Schema exposes the published JSON Schema document describing the schedule
// wire format. The document is a passive contract for external validators
// and code generators; the codec does not execute it.
type Schema interface {
	// Document returns the JSON Schema text.
	Document() string
	// Version returns the DSL revision the schema describes.
	Version() string
}
