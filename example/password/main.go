// Package main demonstrates no-echo password entry.
package main

import (
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

	password, err := asker.Prompt("Password: ",
		askline.WithSilent(),
		askline.WithValidator(func(candidate string) (any, error) {
			if len(candidate) < 8 {
				return nil, fmt.Errorf("password must be at least 8 characters")
			}
			return candidate, nil
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Password accepted (%d characters)\n", len(password.(string)))
}
