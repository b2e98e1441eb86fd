// Package main demonstrates choice and confirmation prompts.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/askline-go/askline"
)

func main() {
	asker, err := askline.New()
	if err != nil {
		log.Fatal(err)
	}
	defer asker.Close()

	fmt.Println("Choice Prompt Example")
	fmt.Println()

	// An answer outside the list re-prompts with the valid options shown
	color, err := asker.Choose("Favorite color: ", []string{"blue", "red", "green"}, askline.WithTrim())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("You picked %s\n", color)

	// With automatic retry disabled, the first invalid answer is final but
	// the error can be continued manually.
	env, err := asker.Choose("Environment: ", []string{"dev", "staging", "prod"},
		askline.WithTrim(),
		askline.WithoutRetry(),
	)
	var verr *askline.ValidationError
	if errors.As(err, &verr) && verr.CanRetry() {
		fmt.Println("One more try:", verr.Reason)
		var value any
		value, err = verr.Retry()
		if err == nil {
			env = fmt.Sprint(value)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Deploying to %s\n", env)

	ok, err := asker.Confirm("Are you sure? ")
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		fmt.Println("Aborted.")
		return
	}
	fmt.Println("Done!")
}
