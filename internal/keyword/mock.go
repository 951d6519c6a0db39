package keyword

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"
)

// DefaultLatency is the simulated lookup delay of the mock provider.
const DefaultLatency = 2000 * time.Millisecond

// Template describes one suggestion produced by MockProvider.
// Pattern is a text/template with {{.First}} and {{.Second}} for the seeds.
type Template struct {
	Pattern     string
	Volume      int
	Competition Competition
	Role        Role

	tmpl *template.Template
}

// NewTemplate parses a suggestion template
func NewTemplate(pattern string, volume int, competition Competition, role Role) (Template, error) {
	if strings.TrimSpace(pattern) == "" {
		return Template{}, fmt.Errorf("template pattern cannot be empty")
	}
	if volume < 0 {
		return Template{}, fmt.Errorf("template %q: volume must not be negative, got %d", pattern, volume)
	}

	tmpl, err := template.New("suggestion").Option("missingkey=error").Parse(pattern)
	if err != nil {
		return Template{}, NewTemplateError(pattern, err)
	}

	return Template{
		Pattern:     pattern,
		Volume:      volume,
		Competition: competition,
		Role:        role,
		tmpl:        tmpl,
	}, nil
}

// mustTemplate is used for the built-in templates only
func mustTemplate(pattern string, volume int, competition Competition, role Role) Template {
	t, err := NewTemplate(pattern, volume, competition, role)
	if err != nil {
		panic(err)
	}
	return t
}

// Expand renders the template for the given seeds
func (t Template) Expand(seeds Seeds) (Suggestion, error) {
	tmpl := t.tmpl
	if tmpl == nil {
		parsed, err := template.New("suggestion").Option("missingkey=error").Parse(t.Pattern)
		if err != nil {
			return Suggestion{}, NewTemplateError(t.Pattern, err)
		}
		tmpl = parsed
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, seeds); err != nil {
		return Suggestion{}, NewTemplateError(t.Pattern, err)
	}

	return Suggestion{
		Text:        b.String(),
		Volume:      t.Volume,
		Competition: t.Competition,
		Role:        t.Role,
	}, nil
}

// DefaultTemplates returns the built-in suggestion templates:
// one Primary, two Secondary and five unranked suggestions.
func DefaultTemplates() []Template {
	return []Template{
		mustTemplate("{{.First}} services", 12500, CompetitionMedium, RolePrimary),
		mustTemplate("best {{.First}} for {{.Second}}", 8200, CompetitionLow, RoleSecondary),
		mustTemplate("{{.First}} {{.Second}} guide", 6700, CompetitionLow, RoleSecondary),
		mustTemplate("affordable {{.First}}", 5400, CompetitionMedium, RoleNone),
		mustTemplate("{{.First}} vs {{.Second}}", 4800, CompetitionHigh, RoleNone),
		mustTemplate("{{.Second}} with {{.First}}", 3900, CompetitionMedium, RoleNone),
		mustTemplate("how to use {{.First}} for {{.Second}}", 3200, CompetitionLow, RoleNone),
		mustTemplate("{{.First}} tips", 2800, CompetitionMedium, RoleNone),
	}
}

// MockProvider returns deterministic suggestions expanded from templates
// after a fixed delay.
type MockProvider struct {
	Templates []Template
	Latency   time.Duration

	// Err, when set, is returned after the delay instead of suggestions.
	Err error
}

// NewMockProvider creates a mock provider with the default templates and latency
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Templates: DefaultTemplates(),
		Latency:   DefaultLatency,
	}
}

// Name implements Provider
func (p *MockProvider) Name() string {
	return "mock"
}

// Suggest implements Provider
func (p *MockProvider) Suggest(ctx context.Context, seeds Seeds) ([]Suggestion, error) {
	if p.Latency > 0 {
		timer := time.NewTimer(p.Latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.Err != nil {
		return nil, p.Err
	}

	suggestions := make([]Suggestion, 0, len(p.Templates))
	for _, t := range p.Templates {
		s, err := t.Expand(seeds)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, s)
	}

	return suggestions, nil
}
