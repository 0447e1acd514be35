package main

import (
	"fmt"

	"github.com/fwojciec/linkcard"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	text, err := readText(deps, c.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcard.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, deps.Parser.DisplayText(text, c.Fallback))
	return nil
}
