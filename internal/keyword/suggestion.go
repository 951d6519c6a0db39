package keyword

import (
	"fmt"
	"strings"
)

// Slot identifies one of the two seed keyword fields.
type Slot int

const (
	SlotFirst  Slot = iota // Seed Keyword 1
	SlotSecond             // Seed Keyword 2
)

// Slots lists every slot in display order
var Slots = []Slot{SlotFirst, SlotSecond}

// String returns the 1-based label used in the UI
func (s Slot) String() string {
	switch s {
	case SlotFirst:
		return "Seed Keyword 1"
	case SlotSecond:
		return "Seed Keyword 2"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// Seeds holds the two seed keywords entered by the user.
type Seeds struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// Get returns the text of the given slot
func (s Seeds) Get(slot Slot) string {
	if slot == SlotSecond {
		return s.Second
	}
	return s.First
}

// With returns a copy of the seeds with the given slot replaced
func (s Seeds) With(slot Slot, text string) Seeds {
	if slot == SlotSecond {
		s.Second = text
	} else {
		s.First = text
	}
	return s
}

// List returns the seeds as an ordered slice
func (s Seeds) List() []string {
	return []string{s.First, s.Second}
}

// String joins the seeds the way the review screen shows them
func (s Seeds) String() string {
	return strings.Join(s.List(), ", ")
}

// Competition is the estimated difficulty of ranking for a keyword.
type Competition int

const (
	CompetitionLow Competition = iota
	CompetitionMedium
	CompetitionHigh
)

// String returns the display name of the competition level
func (c Competition) String() string {
	switch c {
	case CompetitionLow:
		return "Low"
	case CompetitionMedium:
		return "Medium"
	case CompetitionHigh:
		return "High"
	default:
		return fmt.Sprintf("Competition(%d)", int(c))
	}
}

// MarshalText encodes the competition level by name
func (c Competition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a competition level by name
func (c *Competition) UnmarshalText(text []byte) error {
	parsed, err := ParseCompetition(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCompetition parses "low", "medium" or "high" (case-insensitive)
func ParseCompetition(s string) (Competition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return CompetitionLow, nil
	case "medium":
		return CompetitionMedium, nil
	case "high":
		return CompetitionHigh, nil
	default:
		return CompetitionLow, fmt.Errorf("unknown competition level %q (use Low, Medium or High)", s)
	}
}

// Role marks a suggestion as the main or a supporting recommendation.
type Role int

const (
	RoleNone Role = iota
	RolePrimary
	RoleSecondary
)

// String returns the display name of the role
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "None"
	case RolePrimary:
		return "Primary"
	case RoleSecondary:
		return "Secondary"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// MarshalText encodes the role by name
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a role by name
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRole parses "primary", "secondary", "none" or "" (case-insensitive)
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RoleNone, nil
	case "primary":
		return RolePrimary, nil
	case "secondary":
		return RoleSecondary, nil
	default:
		return RoleNone, fmt.Errorf("unknown role %q (use Primary, Secondary or None)", s)
	}
}

// Suggestion is a candidate keyword returned by a provider.
type Suggestion struct {
	Text        string      `json:"text"`
	Volume      int         `json:"volume"` // Estimated monthly searches
	Competition Competition `json:"competition"`
	Role        Role        `json:"role"`
}

// Selected reports whether the suggestion is part of the confirmed set
func (s Suggestion) Selected() bool {
	return s.Role != RoleNone
}

// FilterSelected returns the Primary and Secondary suggestions in their original order
func FilterSelected(suggestions []Suggestion) []Suggestion {
	var selected []Suggestion
	for _, s := range suggestions {
		if s.Selected() {
			selected = append(selected, s)
		}
	}
	return selected
}
