package askline

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Asker coordinates prompt/read/validate cycles against a Terminal. Exactly
// one cycle is outstanding at a time per call; the Terminal is a shared
// resource and concurrent calls against the same Asker must be serialized by
// the caller.
type Asker struct {
	terminal Terminal
	scheme   *ColorScheme
}

// AskerOption configures an Asker at construction time.
type AskerOption func(*Asker)

// WithColorScheme sets the color scheme used to style prompt text and hints.
// Pass ThemeNoColor to force plain output.
func WithColorScheme(scheme *ColorScheme) AskerOption {
	return func(a *Asker) {
		a.scheme = scheme
	}
}

// New creates an Asker bound to the process's interactive streams.
//
// When stdin is a terminal, input goes through a real tty handle (echoing and
// basic line input are the terminal's concern) and prompts are styled with
// ThemeDefault. When stdin is not a terminal (pipes, CI), input falls back to
// buffered reads from stdin and styling is disabled.
//
// Example:
//
//	asker, err := askline.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer asker.Close()
//
//	name, err := asker.Prompt("Name: ", askline.WithTrim())
func New(opts ...AskerOption) (*Asker, error) {
	a := &Asker{}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		terminal, err := newTTYTerminal()
		if err != nil {
			return nil, fmt.Errorf("failed to open terminal: %w", err)
		}
		a.terminal = terminal
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			a.scheme = ThemeDefault
		}
	} else {
		a.terminal = NewReaderTerminal(os.Stdin, os.Stdout)
	}

	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// NewWithTerminal creates an Asker over an injected Terminal. This is the
// seam for test doubles and for hosts that own their interactive streams;
// styling is off unless WithColorScheme is given.
func NewWithTerminal(terminal Terminal, opts ...AskerOption) *Asker {
	a := &Asker{terminal: terminal}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Close releases the underlying terminal resources. It is safe to call Close
// multiple times.
func (a *Asker) Close() error {
	if a.terminal != nil {
		return a.terminal.Close()
	}
	return nil
}

// Validator checks a candidate string and produces the accepted value, which
// may differ in type from the input. Returning an error rejects the
// candidate; the error text is surfaced verbatim as the rejection reason.
type Validator func(candidate string) (any, error)

// settings holds the per-invocation configuration assembled from Options.
type settings struct {
	def        any
	hasDefault bool
	trim       bool
	validator  Validator
	retry      bool
	silent     bool
	hint       string // Appended to the prompt on attempts after a failure
}

func newSettings(opts []Option) *settings {
	s := &settings{retry: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures a single prompt invocation.
type Option func(*settings)

// WithDefault sets the value substituted when the user submits an empty line
// (empty after trimming, when WithTrim is also set). A default is trusted
// as-is: the validator is not consulted for a defaulted attempt.
func WithDefault(value any) Option {
	return func(s *settings) {
		s.def = value
		s.hasDefault = true
	}
}

// WithTrim strips leading and trailing whitespace from raw input before
// default substitution and validation.
func WithTrim() Option {
	return func(s *settings) {
		s.trim = true
	}
}

// WithValidator sets the validator consulted for each non-empty candidate.
func WithValidator(v Validator) Option {
	return func(s *settings) {
		s.validator = v
	}
}

// WithoutRetry disables automatic re-prompting: the first validation failure
// is surfaced as a final *ValidationError instead. The error carries a
// one-shot Retry capability for manual continuation. Empty input with no
// default still re-prompts unconditionally.
func WithoutRetry() Option {
	return func(s *settings) {
		s.retry = false
	}
}

// WithSilent reads input without echoing typed characters (password entry).
// Echo suppression is the terminal's concern; on a non-terminal source the
// line is read normally.
func WithSilent() Option {
	return func(s *settings) {
		s.silent = true
	}
}

// withHint sets the expanded prompt hint shown on attempts after a failure.
// Choose and Confirm use it to surface the valid options.
func withHint(hint string) Option {
	return func(s *settings) {
		s.hint = hint
	}
}
