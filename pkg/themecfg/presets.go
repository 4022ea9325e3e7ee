package themecfg

import (
	"fmt"
	"slices"
	"strings"

	"github.com/filetug/ftexplorer/pkg/explorer"
)

const (
	PresetDefault = "default"
	PresetEmpty   = "empty"
	PresetLight   = "light"
	PresetDark    = "dark"
)

var presets = map[string]func() explorer.Theme{
	PresetDefault: explorer.DefaultTheme,
	PresetEmpty:   explorer.NewTheme,
	PresetLight:   explorer.LightTheme,
	PresetDark:    explorer.DarkTheme,
}

// Preset returns the named built-in theme; an empty name is the default.
func Preset(name string) (explorer.Theme, error) {
	if name == "" {
		name = PresetDefault
	}
	newTheme, ok := presets[strings.ToLower(name)]
	if !ok {
		return explorer.NewTheme(), fmt.Errorf("unknown preset %q, expected one of %s",
			name, strings.Join(PresetNames(), ", "))
	}
	return newTheme(), nil
}

// PresetNames lists the built-in presets in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
