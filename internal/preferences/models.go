// Package preferences provides persisted dashboard preferences.
package preferences

import (
	"errors"
	"time"
)

// ErrPreferenceNotFound is returned when a preference key has no stored value.
var ErrPreferenceNotFound = errors.New("preference not found")

// ErrInvalidTheme is returned when a theme value is not dark or light.
var ErrInvalidTheme = errors.New("theme must be dark or light")

// Preference keys.
const (
	// KeyTheme holds the dashboard colour theme.
	KeyTheme = "theme"
)

// Theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultTheme is served until a theme has been persisted.
const DefaultTheme = ThemeDark

// Preference is a single persisted key/value pair.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// ValidTheme reports whether v is an accepted theme value.
func ValidTheme(v string) bool {
	return v == ThemeDark || v == ThemeLight
}
