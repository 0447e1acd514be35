package main

import "fmt"

// Run executes the formats command.
func (c *FormatsCmd) Run(deps *Dependencies) error {
	for _, f := range deps.Parser.Formats() {
		fmt.Fprintln(deps.Stdout, f)
	}
	return nil
}
