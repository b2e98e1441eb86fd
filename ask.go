package askline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt asks for free-text input and resolves with the accepted value.
//
// Each attempt writes promptText, reads one line, applies trimming and
// default substitution, then consults the validator (if any). With no
// validator the candidate string itself is the accepted value. Rejected
// candidates re-prompt until one is accepted, unless WithoutRetry is set, in
// which case the first rejection resolves the call with a *ValidationError.
//
// The read blocks until a line arrives; there is no timeout. Use
// PromptContext for cooperative cancellation between attempts.
//
// Example:
//
//	port, err := asker.Prompt("Port: ",
//		askline.WithTrim(),
//		askline.WithDefault("8080"),
//		askline.WithValidator(func(candidate string) (any, error) {
//			n, err := strconv.Atoi(candidate)
//			if err != nil || n < 1 || n > 65535 {
//				return nil, fmt.Errorf("%q is not a valid port", candidate)
//			}
//			return n, nil
//		}),
//	)
func (a *Asker) Prompt(promptText string, opts ...Option) (any, error) {
	return a.PromptContext(context.Background(), promptText, opts...)
}

// PromptContext is Prompt with cooperative cancellation. The context is
// checked between attempts; a read already blocked on the line source is not
// interrupted.
func (a *Asker) PromptContext(ctx context.Context, promptText string, opts ...Option) (any, error) {
	return a.ask(ctx, promptText, newSettings(opts))
}

// ask is the retry controller: it runs prompt/read/validate attempts until a
// candidate is accepted or the retry policy turns a rejection into a final
// error. Exactly one of {value, error} is delivered per call.
func (a *Asker) ask(ctx context.Context, promptText string, s *settings) (any, error) {
	failed := false

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := a.display(promptText, s, failed); err != nil {
			return nil, err
		}

		line, err := a.read(s)
		if err != nil {
			return nil, err
		}

		candidate := line
		if s.trim {
			candidate = strings.TrimSpace(candidate)
		}

		if candidate == "" {
			if s.hasDefault {
				// A configured default is trusted as-is; the validator is
				// not consulted for a defaulted attempt.
				return s.def, nil
			}
			// Empty input with no default re-prompts unconditionally,
			// regardless of the retry policy.
			failed = true
			continue
		}

		value, err := a.validate(candidate, s)
		if err == nil {
			return value, nil
		}
		if s.retry {
			failed = true
			continue
		}

		verr := &ValidationError{Reason: err.Error(), cause: err}
		verr.retry = func() (any, error) {
			return a.ask(ctx, promptText, s)
		}
		return nil, verr
	}
}

// display writes the prompt text for one attempt. After a failed attempt the
// configured hint (the option list for Choose, the vocabulary for Confirm)
// is appended so a rejected candidate never silently repeats the bare prompt.
func (a *Asker) display(promptText string, s *settings, failed bool) error {
	text := a.scheme.paintPrompt(promptText)
	if failed && s.hint != "" {
		text += a.scheme.paintHint(s.hint) + " "
	}
	if err := a.terminal.WriteString(text); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

// read requests one line from the terminal, suspending until it arrives.
func (a *Asker) read(s *settings) (string, error) {
	var line string
	var err error
	if s.silent {
		line, err = a.terminal.ReadPassword()
	} else {
		line, err = a.terminal.ReadLine()
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrEOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

func (a *Asker) validate(candidate string, s *settings) (any, error) {
	if s.validator == nil {
		return candidate, nil
	}
	return s.validator(candidate)
}
