package main

import (
	"fmt"

	"github.com/fwojciec/linkcard"
)

// Run executes the image command.
func (c *ImageCmd) Run(deps *Dependencies) error {
	text, err := readText(deps, c.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcard.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, deps.Parser.ImageURL(text))
	return nil
}
