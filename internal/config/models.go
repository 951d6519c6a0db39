package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/muurk/kwfinder/internal/keyword"
)

// CurrentVersion is the only settings file version understood by this build
const CurrentVersion = 1

// Output formats accepted by Output.Format
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatJSON     = "json"
)

// Settings represents the entire user configuration file.
type Settings struct {
	Version  int              `yaml:"version"`
	Provider ProviderSettings `yaml:"provider"`
	Output   OutputSettings   `yaml:"output"`
	Logging  LoggingSettings  `yaml:"logging"`
}

// ProviderSettings configures the suggestion provider.
type ProviderSettings struct {
	LatencyMS int            `yaml:"latency_ms"`          // Simulated lookup delay in milliseconds
	Templates []TemplateSpec `yaml:"templates,omitempty"` // Empty means the built-in templates
}

// TemplateSpec is one suggestion template as written in the settings file.
// Pattern uses {{.First}} and {{.Second}} for the seed keywords.
type TemplateSpec struct {
	Pattern     string `yaml:"pattern"`
	Volume      int    `yaml:"volume"`
	Competition string `yaml:"competition"`    // Low, Medium or High
	Role        string `yaml:"role,omitempty"` // Primary, Secondary or empty
}

// OutputSettings controls non-interactive output.
type OutputSettings struct {
	Format string `yaml:"format"` // detailed, compact or json
}

// LoggingSettings controls the logger.
type LoggingSettings struct {
	Level string `yaml:"level"` // debug, info, warn, error; empty = silent
	File  string `yaml:"file"`  // Log file path; empty = stderr
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Provider: ProviderSettings{
			LatencyMS: int(keyword.DefaultLatency / time.Millisecond),
		},
		Output: OutputSettings{
			Format: FormatDetailed,
		},
	}
}

// DefaultTemplateSpecs returns the built-in templates in settings file form
func DefaultTemplateSpecs() []TemplateSpec {
	defaults := keyword.DefaultTemplates()
	specs := make([]TemplateSpec, 0, len(defaults))
	for _, t := range defaults {
		role := ""
		if t.Role != keyword.RoleNone {
			role = t.Role.String()
		}
		specs = append(specs, TemplateSpec{
			Pattern:     t.Pattern,
			Volume:      t.Volume,
			Competition: t.Competition.String(),
			Role:        role,
		})
	}
	return specs
}

// Latency returns the provider delay as a duration
func (s *Settings) Latency() time.Duration {
	return time.Duration(s.Provider.LatencyMS) * time.Millisecond
}

// Templates parses the configured templates, falling back to the built-in ones
func (s *Settings) Templates() ([]keyword.Template, error) {
	if len(s.Provider.Templates) == 0 {
		return keyword.DefaultTemplates(), nil
	}

	templates := make([]keyword.Template, 0, len(s.Provider.Templates))
	for i, spec := range s.Provider.Templates {
		t, err := spec.Parse()
		if err != nil {
			return nil, fmt.Errorf("provider.templates[%d]: %w", i, err)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// Parse converts the spec into a keyword.Template
func (t TemplateSpec) Parse() (keyword.Template, error) {
	competition, err := keyword.ParseCompetition(t.Competition)
	if err != nil {
		return keyword.Template{}, err
	}
	role, err := keyword.ParseRole(t.Role)
	if err != nil {
		return keyword.Template{}, err
	}
	return keyword.NewTemplate(t.Pattern, t.Volume, competition, role)
}

// NewProvider builds the mock suggestion provider described by the settings
func (s *Settings) NewProvider() (*keyword.MockProvider, error) {
	templates, err := s.Templates()
	if err != nil {
		return nil, err
	}
	return &keyword.MockProvider{
		Templates: templates,
		Latency:   s.Latency(),
	}, nil
}

// Validate checks the settings for values the application cannot use.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}

	if s.Provider.LatencyMS < 0 {
		return fmt.Errorf("provider.latency_ms must not be negative, got %d", s.Provider.LatencyMS)
	}

	templates, err := s.Templates()
	if err != nil {
		return err
	}
	primaries := 0
	for _, t := range templates {
		if t.Role == keyword.RolePrimary {
			primaries++
		}
	}
	if primaries > 1 {
		return fmt.Errorf("provider.templates: at most one Primary template allowed, got %d", primaries)
	}

	switch s.Output.Format {
	case FormatDetailed, FormatCompact, FormatJSON:
	default:
		return fmt.Errorf("output.format must be one of %s, got %q",
			strings.Join([]string{FormatDetailed, FormatCompact, FormatJSON}, ", "), s.Output.Format)
	}

	switch strings.ToLower(strings.TrimSpace(s.Logging.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", s.Logging.Level)
	}

	return nil
}
