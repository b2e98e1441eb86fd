// Package askline provides a small, robust library for line-oriented
// interactive console input in Go.
//
// The library prints a prompt, reads a line of text typed by the user,
// optionally validates or transforms it, and retries on invalid input. It
// supports free-text prompts, single-choice-from-a-list prompts, and yes/no
// confirmation prompts with truthy/falsy coercion.
//
// Key Features:
//
//   - Free-text, choice, and confirmation prompts with one shared retry loop
//   - Caller-supplied validators that can transform the accepted value
//   - Default substitution for empty input and whitespace trimming
//   - No-echo password entry on real terminals
//   - Manual retry of a failed interaction after automatic retry is disabled
//   - Injectable terminal abstraction for test doubles and piped input
//   - Cross-platform terminal handling (Windows, macOS, Linux)
//
// Quick Start:
//
// The simplest way to ask for input:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/askline-go/askline"
//	)
//
//	func main() {
//		asker, err := askline.New()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer asker.Close()
//
//		name, err := asker.Prompt("Name: ", askline.WithTrim())
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s\n", name)
//	}
//
// Validation:
//
// A validator checks each non-empty candidate and may transform it into a
// value of any type. Returning an error rejects the candidate; by default
// the prompt is simply shown again.
//
//	age, err := asker.Prompt("Age: ",
//		askline.WithTrim(),
//		askline.WithValidator(func(candidate string) (any, error) {
//			n, err := strconv.Atoi(candidate)
//			if err != nil {
//				return nil, fmt.Errorf("%q is not a number", candidate)
//			}
//			return n, nil
//		}),
//	)
//
// Defaults:
//
// A default is substituted when the user submits an empty line and is
// trusted as-is: the validator is not consulted for a defaulted attempt.
// Without a default, empty input always re-prompts.
//
//	env, err := asker.Prompt("Environment: ", askline.WithDefault("production"))
//
// Choices and Confirmation:
//
// Choose constrains acceptance to a fixed option set, matched
// case-insensitively, and resolves with the canonically-cased option. After
// a rejected attempt the re-displayed prompt includes the option list.
// Confirm maps y/yes/1 and n/no/0 to a boolean the same way.
//
//	color, err := asker.Choose("Color: ", []string{"blue", "red"})
//	ok, err := asker.Confirm("Deploy? ")
//
// Disabling Automatic Retry:
//
// With WithoutRetry, the first rejection resolves the call with a
// *ValidationError instead of re-prompting. The error carries a one-shot
// Retry capability so the caller can inspect the failure and still continue
// the interaction:
//
//	value, err := asker.Prompt("Token: ", askline.WithValidator(checkToken), askline.WithoutRetry())
//	var verr *askline.ValidationError
//	if errors.As(err, &verr) && verr.CanRetry() {
//		fmt.Println("rejected:", verr.Reason)
//		value, err = verr.Retry()
//	}
//
// Password Entry:
//
//	secret, err := asker.Prompt("Password: ", askline.WithSilent())
//
// Testing and Piped Input:
//
// The Terminal interface is the boundary between the retry logic and the
// platform. NewReaderTerminal adapts any io.Reader/io.Writer pair, which
// makes interactions fully scriptable:
//
//	terminal := askline.NewReaderTerminal(strings.NewReader("yes\n"), io.Discard)
//	asker := askline.NewWithTerminal(terminal)
//	ok, _ := asker.Confirm("Continue? ") // true, without a real terminal
//
// Concurrency:
//
// Exactly one prompt/read cycle is outstanding at a time per call. The
// terminal is a shared resource: issuing two prompts concurrently against
// the same Asker is undefined, and callers are responsible for serializing
// interactions. A read waits indefinitely for input; the Context variants
// (PromptContext, ChooseContext, ConfirmContext) check for cancellation
// between attempts without changing that default.
package askline
