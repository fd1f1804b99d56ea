// Package lipgloss provides theme implementations using the Lipgloss styling
// library.
package lipgloss

import "github.com/fwojciec/codemotion"

// Compile-time interface verification.
var _ codemotion.Theme = (*Theme)(nil)

// Theme implements codemotion.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles codemotion.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() codemotion.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: codemotion.Styles{
			Tag:         codemotion.ColorPair{Foreground: "#f38ba8"}, // Red
			Text:        codemotion.ColorPair{Foreground: "#cdd6f4"}, // Near white
			Attribute:   codemotion.ColorPair{Foreground: "#fab387"}, // Peach
			String:      codemotion.ColorPair{Foreground: "#a6e3a1"}, // Green
			Keyword:     codemotion.ColorPair{Foreground: "#cba6f7"}, // Mauve
			Operator:    codemotion.ColorPair{Foreground: "#94e2d5"}, // Teal
			Punctuation: codemotion.ColorPair{Foreground: "#9399b2"}, // Overlay gray
			Number:      codemotion.ColorPair{Foreground: "#f9e2af"}, // Yellow
			Comment:     codemotion.ColorPair{Foreground: "#6c7086"}, // Muted gray
			Whitespace:  codemotion.ColorPair{},

			Added: codemotion.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000", // Very dark green - token colors stay readable
			},
			Highlighted: codemotion.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f9e2af", // Yellow
			},
			LineNumber: codemotion.ColorPair{Foreground: "#6c7086"}, // Muted gray
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: codemotion.Styles{
			Tag:         codemotion.ColorPair{Foreground: "#d20f39"},
			Text:        codemotion.ColorPair{Foreground: "#4c4f69"},
			Attribute:   codemotion.ColorPair{Foreground: "#fe640b"},
			String:      codemotion.ColorPair{Foreground: "#40a02b"},
			Keyword:     codemotion.ColorPair{Foreground: "#8839ef"},
			Operator:    codemotion.ColorPair{Foreground: "#179299"},
			Punctuation: codemotion.ColorPair{Foreground: "#6c6f85"},
			Number:      codemotion.ColorPair{Foreground: "#df8e1d"},
			Comment:     codemotion.ColorPair{Foreground: "#9ca0b0"},
			Whitespace:  codemotion.ColorPair{},

			Added: codemotion.ColorPair{
				Foreground: "#40a02b",
				Background: "#ccffcc",
			},
			Highlighted: codemotion.ColorPair{
				Foreground: "#4c4f69",
				Background: "#f9e2af",
			},
			LineNumber: codemotion.ColorPair{Foreground: "#9ca0b0"},
		},
	}
}
