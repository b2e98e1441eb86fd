package askline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmVocabulary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{input: "y", expected: true},
		{input: "Y", expected: true},
		{input: "yes", expected: true},
		{input: "YES", expected: true},
		{input: "1", expected: true},
		{input: "n", expected: false},
		{input: "No", expected: false},
		{input: "NO", expected: false},
		{input: "0", expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			terminal := newMockTerminal(tt.input)
			asker := NewWithTerminal(terminal)

			value, err := asker.Confirm("p")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestConfirmRetriesInvalidAnswer(t *testing.T) {
	t.Parallel()

	terminal := newMockTerminal("bleh", "y")
	asker := NewWithTerminal(terminal)

	value, err := asker.Confirm("p")
	require.NoError(t, err)
	assert.True(t, value)
	assert.Equal(t, 2, terminal.promptCount("p"), "the invalid answer should cause a second attempt")
	assert.Contains(t, terminal.output(), "(y/n)", "the retry should hint at the vocabulary")
}

func TestConfirmWithoutRetry(t *testing.T) {
	t.Parallel()

	terminal := newMockTerminal("bleh")
	asker := NewWithTerminal(terminal)

	_, err := asker.Confirm("p", WithoutRetry())
	require.Error(t, err)

	var invalid *InvalidChoiceError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "bleh", invalid.Input)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.CanRetry())
}

func TestConfirmDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		def      any
		expected bool
		wantErr  bool
	}{
		{name: "bool default passes through", def: true, expected: true},
		{name: "false bool default", def: false, expected: false},
		{name: "affirmative string default", def: "yes", expected: true},
		{name: "negative string default", def: "N", expected: false},
		{name: "uncoercible default", def: "maybe", wantErr: true},
		{name: "non-boolean default type", def: 3.14, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			terminal := newMockTerminal("")
			asker := NewWithTerminal(terminal)

			value, err := asker.Confirm("p", WithDefault(tt.def))
			if tt.wantErr {
				var invalid *InvalidChoiceError
				require.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}
