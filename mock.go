package askline

import (
	"io"
	"strings"
)

// mockTerminal implements Terminal for testing and development.
//
// This implementation provides predictable, deterministic behavior for unit
// tests. Lines are served from a pre-configured script and every write is
// recorded, so tests can assert how many times a prompt was displayed and
// whether hints appeared in the output.
//
// Features:
//   - Deterministic input: pre-configured line sequence for reproducible tests
//   - Recorded output: writes are captured for output assertions
//   - Silent-path tracking: password reads consume the same script but are
//     counted separately, so tests can verify echo suppression was requested
//   - No side effects: safe to use in CI/CD environments and headless testing
type mockTerminal struct {
	lines         []string // Pre-configured input lines for testing
	pos           int      // Current position in the input sequence
	writes        []string // Recorded writes, in order
	passwordReads int      // Number of reads taken through ReadPassword
	closed        bool     // Track Close for test verification
}

func newMockTerminal(lines ...string) *mockTerminal {
	return &mockTerminal{lines: lines}
}

func (m *mockTerminal) ReadLine() (string, error) {
	if m.pos >= len(m.lines) {
		return "", io.EOF
	}
	line := m.lines[m.pos]
	m.pos++
	return line, nil
}

func (m *mockTerminal) ReadPassword() (string, error) {
	m.passwordReads++
	return m.ReadLine()
}

func (m *mockTerminal) WriteString(s string) error {
	m.writes = append(m.writes, s)
	return nil
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}

// output returns everything written to the terminal so far.
func (m *mockTerminal) output() string {
	return strings.Join(m.writes, "")
}

// promptCount reports how many times text occurs across recorded writes.
func (m *mockTerminal) promptCount(text string) int {
	return strings.Count(m.output(), text)
}
