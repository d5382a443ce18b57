/*
Package pamsched is a minimal library for PAM (passive acoustic monitoring)
recording schedules: a small JSON DSL describing when a recorder should be
active, a typed model for it, and the codec converting between the two.

Loads and Dumps are the package-level entry points; New builds a client with
explicit configuration when strictness or logging need to differ from the
defaults.
*/
package pamsched

import (
	"sync"

	"github.com/subosito/gotenv"

	"github.com/0kam/pamsched/internal/common/logger"
	"github.com/0kam/pamsched/pkg/config"
	"github.com/0kam/pamsched/pkg/payloads"
	"github.com/0kam/pamsched/pkg/services/codec"
	"github.com/0kam/pamsched/pkg/services/library"
	"github.com/0kam/pamsched/pkg/services/schema"
)

// Aliases so that callers constructing schedules programmatically only need
// this package.
type (
	Schedule          = payloads.Schedule
	PatternType       = payloads.PatternType
	ContinuousPattern = payloads.ContinuousPattern
	ScheduledPattern  = payloads.ScheduledPattern
	TriggeredPattern  = payloads.TriggeredPattern
	Window            = payloads.Window
	WindowType        = payloads.WindowType
	Cycle             = payloads.Cycle
	Trigger           = payloads.Trigger
	TriggerType       = payloads.TriggerType
	SensorTrigger     = payloads.SensorTrigger
	AudioTrigger      = payloads.AudioTrigger
	EventTrigger      = payloads.EventTrigger
)

const (
	PatternContinuous = payloads.PatternContinuous
	PatternScheduled  = payloads.PatternScheduled
	PatternTriggered  = payloads.PatternTriggered

	TriggerSensor = payloads.TriggerSensor
	TriggerAudio  = payloads.TriggerAudio
	TriggerEvent  = payloads.TriggerEvent

	ErrSyntax             = payloads.ErrSyntax
	ErrMissingField       = payloads.ErrMissingField
	ErrTypeMismatch       = payloads.ErrTypeMismatch
	ErrUnknownPatternType = payloads.ErrUnknownPatternType
	ErrUnknownField       = payloads.ErrUnknownField
	ErrInvalidPattern     = payloads.ErrInvalidPattern
)

// NewSchedule builds a schedule from its parts, failing fast when the
// pattern value does not match the tag.
func NewSchedule(version string, patternType PatternType, pattern any) (*Schedule, error) {
	return payloads.New(version, patternType, pattern)
}

type Client struct {
	codecService  library.Codec
	schemaService library.Schema
	log           *logger.Logger
}

// Load the .env file in the root of the project, to make it easier to
// configure strict mode without setting machine-wide environment variables.
func init() {
	_ = gotenv.Load()
}

func New(cfg *config.Config) (library.Library, error) {
	log, err := logger.New(cfg != nil && cfg.Development)
	if err != nil {
		return nil, err
	}

	return &Client{
		codecService:  codec.New(cfg, log),
		schemaService: schema.New(),
		log:           log,
	}, nil
}

func (c *Client) Codec() library.Codec {
	return c.codecService
}

func (c *Client) Schema() library.Schema {
	return c.schemaService
}

// The package-level entry points share one lazily-built client configured
// from the environment. It is created at most once.
var (
	defaultInitOnce sync.Once
	defaultClient   library.Library
	defaultInitErr  error
)

func defaultLibrary() (library.Library, error) {
	defaultInitOnce.Do(func() {
		cfg, err := config.New()
		if err != nil {
			defaultInitErr = err
			return
		}
		defaultClient, defaultInitErr = New(cfg)
	})
	return defaultClient, defaultInitErr
}

// Loads parses a JSON schedule document.
func Loads(text string) (*Schedule, error) {
	lib, err := defaultLibrary()
	if err != nil {
		return nil, err
	}
	return lib.Codec().Parse(text)
}

// LoadsMap parses an already-decoded generic JSON object.
func LoadsMap(doc map[string]any) (*Schedule, error) {
	lib, err := defaultLibrary()
	if err != nil {
		return nil, err
	}
	return lib.Codec().ParseMap(doc)
}

// Dumps serializes a schedule into a JSON-compatible generic object.
func Dumps(schedule *Schedule) (map[string]any, error) {
	lib, err := defaultLibrary()
	if err != nil {
		return nil, err
	}
	return lib.Codec().SerializeMap(schedule)
}

// DumpsText serializes a schedule into JSON text.
func DumpsText(schedule *Schedule) (string, error) {
	lib, err := defaultLibrary()
	if err != nil {
		return "", err
	}
	return lib.Codec().Serialize(schedule)
}
