package askline

import (
	"context"
	"fmt"
	"strings"
)

// Choose asks the user to pick one of choices and resolves with the matched
// member in its canonical casing, not the user's raw casing. Matching is
// case-insensitive against trimmed-or-raw input per the WithTrim option.
//
// Input that matches no choice is rejected with an *InvalidChoiceError and,
// unless WithoutRetry is set, the prompt is re-displayed with the option list
// appended so the user can see the valid choices. Choose synthesizes its own
// validator; a validator supplied via WithValidator is ignored.
//
// An empty choice set is a configuration fault: ErrNoChoices is returned
// before any prompt is written.
//
// Example:
//
//	color, err := asker.Choose("Color: ", []string{"blue", "red"}, askline.WithTrim())
func (a *Asker) Choose(promptText string, choices []string, opts ...Option) (string, error) {
	return a.ChooseContext(context.Background(), promptText, choices, opts...)
}

// ChooseContext is Choose with cooperative cancellation between attempts.
func (a *Asker) ChooseContext(ctx context.Context, promptText string, choices []string, opts ...Option) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	s := newSettings(opts)
	if s.hint == "" {
		s.hint = "(choose from: " + strings.Join(choices, ", ") + ")"
	}
	s.validator = chooseValidator(choices)

	value, err := a.ask(ctx, promptText, s)
	if err != nil {
		return "", err
	}
	switch v := value.(type) {
	case string:
		return v, nil
	default:
		// Defaults bypass validation and keep their configured type.
		return fmt.Sprint(v), nil
	}
}

// chooseValidator matches candidates case-insensitively against the choice
// set, resolving to the canonically-cased member.
func chooseValidator(choices []string) Validator {
	return func(candidate string) (any, error) {
		for _, choice := range choices {
			if strings.EqualFold(candidate, choice) {
				return choice, nil
			}
		}
		return nil, &InvalidChoiceError{Input: candidate, Choices: choices}
	}
}
