package askline

import (
	"context"
	"fmt"
	"strings"
)

// Confirm vocabulary. Matching is case-insensitive.
var (
	affirmatives = []string{"y", "yes", "1"}
	negatives    = []string{"n", "no", "0"}
)

// Confirm asks a yes/no question and resolves with the coerced boolean:
// y/yes/1 map to true, n/no/0 map to false, case-insensitively. Anything
// else is rejected like an invalid choice and, unless WithoutRetry is set,
// the prompt is re-displayed with a "(y/n)" hint.
//
// A default set with WithDefault bypasses validation like any default and is
// coerced afterwards: bool defaults pass through directly, string defaults
// are matched against the vocabulary.
//
// Example:
//
//	ok, err := asker.Confirm("Continue? ", askline.WithDefault("yes"))
func (a *Asker) Confirm(promptText string, opts ...Option) (bool, error) {
	return a.ConfirmContext(context.Background(), promptText, opts...)
}

// ConfirmContext is Confirm with cooperative cancellation between attempts.
func (a *Asker) ConfirmContext(ctx context.Context, promptText string, opts ...Option) (bool, error) {
	s := newSettings(opts)
	if s.hint == "" {
		s.hint = "(y/n)"
	}
	s.validator = func(candidate string) (any, error) {
		if b, ok := coerceBool(candidate); ok {
			return b, nil
		}
		return nil, &InvalidChoiceError{Input: candidate, Choices: confirmVocabulary()}
	}

	value, err := a.ask(ctx, promptText, s)
	if err != nil {
		return false, err
	}
	return coerceAccepted(value)
}

// coerceAccepted maps the controller's accepted value to a boolean. Values
// produced by the validator are already booleans; defaults bypass validation
// and are coerced here.
func coerceAccepted(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		if b, ok := coerceBool(v); ok {
			return b, nil
		}
		return false, &InvalidChoiceError{Input: v, Choices: confirmVocabulary()}
	default:
		return false, &InvalidChoiceError{Input: fmt.Sprint(v), Choices: confirmVocabulary()}
	}
}

// coerceBool matches a candidate against the confirm vocabulary. The second
// return reports whether the candidate belonged to the vocabulary at all.
func coerceBool(candidate string) (value, ok bool) {
	for _, token := range affirmatives {
		if strings.EqualFold(candidate, token) {
			return true, true
		}
	}
	for _, token := range negatives {
		if strings.EqualFold(candidate, token) {
			return false, true
		}
	}
	return false, false
}

func confirmVocabulary() []string {
	vocabulary := make([]string, 0, len(affirmatives)+len(negatives))
	vocabulary = append(vocabulary, affirmatives...)
	vocabulary = append(vocabulary, negatives...)
	return vocabulary
}
