package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/kit/cmd/kit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrRejected) {
			fmt.Fprintf(os.Stderr, "kit: %v\n", err)
		}
		os.Exit(1)
	}
}
