package askline

import (
	"os"
	"testing"

	"github.com/mattn/go-isatty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		t.Skip("stdin is a real terminal; New would take over the tty")
	}

	asker, err := New()
	require.NoError(t, err)
	require.NotNil(t, asker)
	assert.NotNil(t, asker.terminal, "New must always bind a terminal")
	assert.NoError(t, asker.Close())
	assert.NoError(t, asker.Close(), "Close should be safe to call twice")
}

func TestNewWithTerminal(t *testing.T) {
	t.Parallel()

	terminal := newMockTerminal("ok")
	asker := NewWithTerminal(terminal, WithColorScheme(ThemeDark))

	require.Same(t, terminal, asker.terminal.(*mockTerminal))
	assert.Equal(t, ThemeDark, asker.scheme)

	require.NoError(t, asker.Close())
	assert.True(t, terminal.closed, "Close must propagate to the terminal")
}

func TestColorSchemeStyling(t *testing.T) {
	t.Parallel()

	t.Run("themed prompt is wrapped in ANSI codes", func(t *testing.T) {
		t.Parallel()

		terminal := newMockTerminal("hi")
		asker := NewWithTerminal(terminal, WithColorScheme(ThemeDefault))

		_, err := asker.Prompt("Name: ")
		require.NoError(t, err)
		assert.Contains(t, terminal.output(), "Name: ", "prompt text stays verbatim inside styling")
		assert.Contains(t, terminal.output(), "\x1b[", "themed output carries escape sequences")
	})

	t.Run("no scheme writes plain text", func(t *testing.T) {
		t.Parallel()

		terminal := newMockTerminal("hi")
		asker := NewWithTerminal(terminal)

		_, err := asker.Prompt("Name: ")
		require.NoError(t, err)
		assert.Equal(t, "Name: ", terminal.output())
	})

	t.Run("ThemeNoColor writes plain text", func(t *testing.T) {
		t.Parallel()

		terminal := newMockTerminal("hi")
		asker := NewWithTerminal(terminal, WithColorScheme(ThemeNoColor))

		_, err := asker.Prompt("Name: ")
		require.NoError(t, err)
		assert.Equal(t, "Name: ", terminal.output())
	})
}

func TestColorToANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{
			name:     "plain color",
			color:    Color{R: 1, G: 2, B: 3},
			expected: "\x1b[38;2;1;2;3m",
		},
		{
			name:     "bold color",
			color:    Color{R: 255, G: 0, B: 0, Bold: true},
			expected: "\x1b[1;38;2;255;0;0m",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.color.ToANSI())
		})
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "\x1b[0m", Reset())
}
