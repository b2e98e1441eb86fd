package askline

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors used when writing prompts.
type ColorScheme struct {
	Name   string `json:"name"`
	Prompt Color  `json:"prompt"` // Prompt text
	Hint   Color  `json:"hint"`   // Expanded retry hints (option lists, y/n)
	Error  Color  `json:"error"`  // Rejection text, for hosts that print it
}

// Color represents an RGB color with optional formatting. The zero Color
// renders text unstyled.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with a green prompt and gray hints
var ThemeDefault = &ColorScheme{
	Name:   "default",
	Prompt: Color{R: 0, G: 255, B: 0, Bold: true},
	Hint:   Color{R: 128, G: 128, B: 128, Bold: false},
	Error:  Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeDark is a dark theme with a light blue prompt
var ThemeDark = &ColorScheme{
	Name:   "Dark",
	Prompt: Color{R: 102, G: 217, B: 239, Bold: true},
	Hint:   Color{R: 98, G: 114, B: 164, Bold: false},
	Error:  Color{R: 255, G: 121, B: 198, Bold: true},
}

// ThemeLight is a light theme with a blue prompt and muted hints
var ThemeLight = &ColorScheme{
	Name:   "Light",
	Prompt: Color{R: 0, G: 119, B: 187, Bold: true},
	Hint:   Color{R: 149, G: 157, B: 165, Bold: false},
	Error:  Color{R: 215, G: 58, B: 73, Bold: true},
}

// ThemeNoColor disables styling entirely; all text is written as-is.
var ThemeNoColor = &ColorScheme{
	Name: "NoColor",
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

func (c Color) isZero() bool {
	return c == Color{}
}

// paint wraps text in the color's escape sequence. The prompt text itself
// stays contiguous and verbatim inside the styling.
func (c Color) paint(text string) string {
	if c.isZero() {
		return text
	}
	return c.ToANSI() + text + Reset()
}

func (s *ColorScheme) paintPrompt(text string) string {
	if s == nil {
		return text
	}
	return s.Prompt.paint(text)
}

func (s *ColorScheme) paintHint(text string) string {
	if s == nil {
		return text
	}
	return s.Hint.paint(text)
}
