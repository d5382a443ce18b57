// Package codec implements the parse/serialize pair converting between JSON
// text and the typed schedule model. Parsing is a single-pass pipeline:
// decode, envelope checks, tag dispatch through a registration table,
// variant validation, construction. Each stage either advances or fails
// terminally with one of the payloads sentinel errors.
package codec

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/0kam/pamsched/internal/common/core"
	"github.com/0kam/pamsched/internal/common/logger"
	"github.com/0kam/pamsched/pkg/config"
	"github.com/0kam/pamsched/pkg/payloads"
	"github.com/0kam/pamsched/pkg/services/library"
)

// decodeFunc validates and decodes one pattern variant's payload. raw is
// nil when the payload key is absent from the document; variants with
// required fields reject that, zero-field variants accept it.
type decodeFunc func(path *core.FieldPath, raw map[string]any) (any, error)

type Service struct {
	strict   bool
	log      *logger.Logger
	decoders map[payloads.PatternType]decodeFunc
}

// New builds a codec service. New pattern variants plug in by adding an
// entry to the decoder table; dispatch never inspects payload shapes itself.
func New(cfg *config.Config, log *logger.Logger) library.Codec {
	s := &Service{
		strict: cfg != nil && cfg.Strict,
		log:    log,
	}
	s.decoders = map[payloads.PatternType]decodeFunc{
		payloads.PatternContinuous: s.decodeContinuous,
		payloads.PatternScheduled:  s.decodeScheduled,
		payloads.PatternTriggered:  s.decodeTriggered,
	}
	return s
}

func (s *Service) Parse(text string) (*payloads.Schedule, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		s.log.WithError(err).Debug("Rejected schedule document")
		return nil, payloads.ErrSyntax.WithDetailf("%v", err)
	}
	return s.ParseMap(doc)
}

func (s *Service) ParseMap(doc map[string]any) (*payloads.Schedule, error) {
	schedule, err := s.parseMap(doc)
	if err != nil {
		s.log.WithError(err).Debug("Rejected schedule document")
		return nil, err
	}
	s.log.Debug("Parsed schedule",
		zap.String("version", schedule.Version),
		zap.String("patternType", schedule.PatternType.String()))
	return schedule, nil
}

func (s *Service) parseMap(doc map[string]any) (*payloads.Schedule, error) {
	if doc == nil {
		return nil, payloads.ErrSyntax.WithDetailf("document is not a JSON object")
	}

	root := core.NewFieldPath()

	version, err := getString(doc, root, "version")
	if err != nil {
		return nil, err
	}
	if version == "" {
		return nil, payloads.ErrMissingField.WithDetailf("version must not be empty")
	}

	tagValue, err := getString(doc, root, "pattern_type")
	if err != nil {
		return nil, err
	}
	tag := payloads.PatternType(tagValue)
	decode, ok := s.decoders[tag]
	if !ok {
		return nil, payloads.ErrUnknownPatternType.WithDetailf("%q", tagValue)
	}

	// A payload under a variant key other than the active tag is a
	// structural defect, not an ignorable extra.
	for _, other := range payloads.PatternTypes() {
		if other == tag {
			continue
		}
		if _, present := doc[string(other)]; present {
			return nil, payloads.ErrInvalidPattern.WithDetailf("payload key %q does not match pattern type %q", string(other), tagValue)
		}
	}

	if s.strict {
		if err := checkKnownKeys(doc, root, "version", "pattern_type", string(tag)); err != nil {
			return nil, err
		}
	}

	var payloadRaw map[string]any
	if v, present := doc[string(tag)]; present && v != nil {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, payloads.ErrTypeMismatch.WithDetailf("%s must be an object, got %T", string(tag), v)
		}
		payloadRaw = m
	}

	pattern, err := decode(root.Key(string(tag)), payloadRaw)
	if err != nil {
		return nil, err
	}

	return payloads.New(version, tag, pattern)
}

func (s *Service) Serialize(schedule *payloads.Schedule) (string, error) {
	if err := schedule.Validate(); err != nil {
		s.log.WithError(err).Debug("Refused to serialize schedule")
		return "", err
	}

	out, err := json.Marshal(schedule)
	if err != nil {
		return "", payloads.ErrInvalidPattern.WithDetailf("%v", err)
	}
	return string(out), nil
}

func (s *Service) SerializeMap(schedule *payloads.Schedule) (map[string]any, error) {
	text, err := s.Serialize(schedule)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, payloads.ErrSyntax.WithDetailf("%v", err)
	}
	return doc, nil
}
