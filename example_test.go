package askline_test

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/askline-go/askline"
)

func ExampleAsker_Prompt() {
	terminal := askline.NewReaderTerminal(strings.NewReader("  gopher  \n"), io.Discard)
	asker := askline.NewWithTerminal(terminal)

	name, err := asker.Prompt("Name: ", askline.WithTrim())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(name)
	// Output: gopher
}

func ExampleAsker_Prompt_validator() {
	terminal := askline.NewReaderTerminal(strings.NewReader("not a number\n8080\n"), io.Discard)
	asker := askline.NewWithTerminal(terminal)

	port, err := asker.Prompt("Port: ", askline.WithValidator(func(candidate string) (any, error) {
		return strconv.Atoi(candidate)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%d (%T)\n", port, port)
	// Output: 8080 (int)
}

func ExampleAsker_Choose() {
	terminal := askline.NewReaderTerminal(strings.NewReader("ORANGE\n"), io.Discard)
	asker := askline.NewWithTerminal(terminal)

	fruit, err := asker.Choose("Fruit: ", []string{"apple", "orange"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(fruit)
	// Output: orange
}

func ExampleAsker_Confirm() {
	terminal := askline.NewReaderTerminal(strings.NewReader("Y\n"), io.Discard)
	asker := askline.NewWithTerminal(terminal)

	ok, err := asker.Confirm("Continue? ")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ok)
	// Output: true
}

func ExampleValidationError_Retry() {
	terminal := askline.NewReaderTerminal(strings.NewReader("wrong\nright\n"), io.Discard)
	asker := askline.NewWithTerminal(terminal)

	value, err := asker.Prompt("Token: ",
		askline.WithoutRetry(),
		askline.WithValidator(func(candidate string) (any, error) {
			if candidate != "right" {
				return nil, fmt.Errorf("bad token %q", candidate)
			}
			return candidate, nil
		}),
	)

	var verr *askline.ValidationError
	if errors.As(err, &verr) && verr.CanRetry() {
		fmt.Println("rejected:", verr.Reason)
		value, err = verr.Retry()
	}
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("accepted:", value)
	// Output:
	// rejected: bad token "wrong"
	// accepted: right
}
