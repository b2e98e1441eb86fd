// Package main demonstrates basic usage of the askline library.
package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/askline-go/askline"
)

func main() {
	asker, err := askline.New()
	if err != nil {
		log.Fatal(err)
	}
	defer asker.Close()

	fmt.Println("Basic Prompt Example")
	fmt.Println()

	// Free text with trimming and a default for empty input
	name, err := asker.Prompt("Name (gopher): ",
		askline.WithTrim(),
		askline.WithDefault("gopher"),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Validated input; invalid answers re-prompt automatically
	age, err := asker.Prompt("Age: ",
		askline.WithTrim(),
		askline.WithValidator(func(candidate string) (any, error) {
			n, err := strconv.Atoi(candidate)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%q is not a valid age", candidate)
			}
			return n, nil
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Hello %v, age %v!\n", name, age)
}
