// Package schema ships the published JSON Schema for the schedule wire
// format. External tooling validates or generates code against this
// document; the codec itself never executes it, the contract tests in the
// codec package keep the two in step.
package schema

import (
	_ "embed"

	"github.com/0kam/pamsched/pkg/services/library"
)

//go:embed schedule.schema.json
var document string

// DSLVersion is the DSL revision the embedded schema describes.
const DSLVersion = "0.1.0"

type Service struct{}

func New() library.Schema {
	return &Service{}
}

func (s *Service) Document() string {
	return document
}

func (s *Service) Version() string {
	return DSLVersion
}
