package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/linkcard"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	text, err := readText(deps, c.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcard.ErrorMessage(err))
		return err
	}

	p := deps.Parser.Parse(text)
	if err := validate(deps, p); err != nil {
		return err
	}

	return writeJSON(deps.Stdout, p)
}

// validate checks p in strict mode. A nil preview is always valid.
func validate(deps *Dependencies, p *linkcard.Preview) error {
	if !deps.Strict || p == nil {
		return nil
	}
	if err := p.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcard.ErrorMessage(err))
		return err
	}
	return nil
}

// writeJSON writes v as a single line of JSON without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
