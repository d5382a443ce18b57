package payloads

import "fmt"

// Error is the sentinel type for schedule DSL failures. Each constant is a
// distinct failure class that callers match with errors.Is; call sites
// annotate the sentinel with the offending field path via WithField or with
// free-form detail via WithDetailf, both of which wrap the sentinel so the
// class survives the annotation.
type Error string

const (
	// ErrSyntax reports input text that is not well-formed JSON.
	ErrSyntax Error = "malformed JSON"

	// ErrMissingField reports an absent required key, including a required
	// key present with an empty value where the DSL forbids one (version).
	ErrMissingField Error = "missing required field"

	// ErrTypeMismatch reports a present field holding the wrong JSON type.
	ErrTypeMismatch Error = "field has wrong type"

	// ErrUnknownPatternType reports a pattern_type string outside the
	// enumerated tag set.
	ErrUnknownPatternType Error = "unknown pattern type"

	// ErrUnknownField reports a key the DSL does not define. Only surfaced
	// when the codec runs in strict mode; the default is to ignore extras
	// for forward compatibility.
	ErrUnknownField Error = "unknown field"

	// ErrInvalidPattern reports a structural mismatch between a discriminator
	// tag and its payload, detected at construction time.
	ErrInvalidPattern Error = "invalid pattern"
)

func (e Error) Error() string {
	return string(e)
}

// WithField returns e annotated with the dotted path of the offending field.
func (e Error) WithField(path string) error {
	return fmt.Errorf("%w: %s", e, path)
}

// WithDetailf returns e annotated with a formatted detail message.
func (e Error) WithDetailf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{error(e)}, args...)...)
}
