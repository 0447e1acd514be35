package main

import (
	"context"
	"io"
	"strings"

	"github.com/fwojciec/linkcard"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Parser *linkcard.Parser

	// Strict validates every preview before it is printed.
	Strict bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Strategy string `default:"structural" enum:"structural,token" help:"HTML parsing strategy (structural, token)"`
	Verbose  bool   `short:"v" help:"Log extractor activity to stderr"`
	Strict   bool   `help:"Validate previews before printing"`

	Parse   ParseCmd   `cmd:"" help:"Print the preview for a message as JSON"`
	Text    TextCmd    `cmd:"" help:"Print the display text for a message"`
	Image   ImageCmd   `cmd:"" help:"Print the image URL referenced by a message"`
	Batch   BatchCmd   `cmd:"" help:"Parse one message per stdin line concurrently"`
	Formats FormatsCmd `cmd:"" help:"List recognized formats in detection order"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Text string `arg:"" optional:"" help:"Message text, or - to read stdin"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Text     string `arg:"" optional:"" help:"Message text, or - to read stdin"`
	Fallback string `default:"..." help:"Text printed when the message has nothing to show"`
}

// ImageCmd is the "image" subcommand.
type ImageCmd struct {
	Text string `arg:"" optional:"" help:"Message text, or - to read stdin"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Concurrency int  `short:"c" default:"8" help:"Concurrent parse limit"`
	Raw         bool `help:"Treat each line as a message instead of a JSON string"`
}

// FormatsCmd is the "formats" subcommand.
type FormatsCmd struct{}

// readText returns text, or all of stdin when text is empty or "-".
func readText(deps *Dependencies, text string) (string, error) {
	if text != "" && text != "-" {
		return text, nil
	}
	if deps.Stdin == nil {
		return "", nil
	}

	var b strings.Builder
	if _, err := io.Copy(&b, deps.Stdin); err != nil {
		return "", linkcard.Errorf(linkcard.EINVALID, "failed to read stdin: %v", err)
	}
	return b.String(), nil
}
