package color

import (
	"github.com/deckforge/deckforge/pkg/errors"
)

// Role identifies one of the five required color roles in a palette.
type Role string

// The five color roles every brand palette carries.
const (
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleNeutral    Role = "neutral"
	RoleBackground Role = "background"
	RoleAccent     Role = "accent"
)

// Roles lists all palette roles in canonical order.
var Roles = []Role{RolePrimary, RoleSecondary, RoleNeutral, RoleBackground, RoleAccent}

// Palette holds the five role colors as "#RRGGBB" hex strings.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Neutral    string `json:"neutral"`
	Background string `json:"background"`
	Accent     string `json:"accent"`
}

// Get returns the color for a role.
func (p Palette) Get(r Role) string {
	switch r {
	case RolePrimary:
		return p.Primary
	case RoleSecondary:
		return p.Secondary
	case RoleNeutral:
		return p.Neutral
	case RoleBackground:
		return p.Background
	case RoleAccent:
		return p.Accent
	}
	return ""
}

// Set assigns the color for a role.
func (p *Palette) Set(r Role, hex string) {
	switch r {
	case RolePrimary:
		p.Primary = hex
	case RoleSecondary:
		p.Secondary = hex
	case RoleNeutral:
		p.Neutral = hex
	case RoleBackground:
		p.Background = hex
	case RoleAccent:
		p.Accent = hex
	}
}

// Validate checks that every role parses as a 6-digit hex color.
func (p Palette) Validate() error {
	for _, r := range Roles {
		if err := errors.ValidateHexColor(p.Get(r)); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidColorFormat, err, "role %s", r)
		}
	}
	return nil
}

// Locks marks palette roles that must be copied verbatim from the current
// palette after generation. Locking is a final override step, not an input
// constraint on generation.
type Locks struct {
	Primary    bool `json:"primary,omitempty"`
	Secondary  bool `json:"secondary,omitempty"`
	Neutral    bool `json:"neutral,omitempty"`
	Background bool `json:"background,omitempty"`
	Accent     bool `json:"accent,omitempty"`
}

// Locked reports whether a role is locked.
func (l Locks) Locked(r Role) bool {
	switch r {
	case RolePrimary:
		return l.Primary
	case RoleSecondary:
		return l.Secondary
	case RoleNeutral:
		return l.Neutral
	case RoleBackground:
		return l.Background
	case RoleAccent:
		return l.Accent
	}
	return false
}

// applyLocks copies locked roles verbatim from current over generated.
func applyLocks(generated Palette, current *Palette, locks Locks) Palette {
	if current == nil {
		return generated
	}
	for _, r := range Roles {
		if locks.Locked(r) {
			generated.Set(r, current.Get(r))
		}
	}
	return generated
}
