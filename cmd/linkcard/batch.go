package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/linkcard"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single batch input line.
const maxLineSize = 16 << 20

// BatchResult is one line of batch output.
type BatchResult struct {
	Hash    string            `json:"hash"`
	Preview *linkcard.Preview `json:"preview"`
}

// Run executes the batch command. Output lines follow input order.
func (c *BatchCmd) Run(deps *Dependencies) error {
	inputs, err := c.readInputs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcard.ErrorMessage(err))
		return err
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]BatchResult, len(inputs))

	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := deps.Parser.Parse(input)
			if deps.Strict && p != nil {
				if err := p.Validate(); err != nil {
					return linkcard.Errorf(linkcard.EINVALID, "line %d: %s", i+1, linkcard.ErrorMessage(err))
				}
			}
			results[i] = BatchResult{Hash: computeHash(input), Preview: p}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linkcard.ErrorMessage(err))
		return err
	}

	w := bufio.NewWriter(deps.Stdout)
	for _, result := range results {
		if err := writeJSON(w, result); err != nil {
			return err
		}
	}
	return w.Flush()
}

// readInputs reads one message per non-blank stdin line. Lines are JSON
// strings unless Raw is set.
func (c *BatchCmd) readInputs(deps *Dependencies) ([]string, error) {
	if deps.Stdin == nil {
		return nil, nil
	}

	scanner := bufio.NewScanner(deps.Stdin)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var inputs []string
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if c.Raw {
			inputs = append(inputs, line)
			continue
		}

		v := gjson.Parse(line)
		if !gjson.Valid(line) || v.Type != gjson.String {
			return nil, linkcard.Errorf(linkcard.EINVALID, "line %d is not a JSON string", n)
		}
		inputs = append(inputs, v.Str)
	}
	if err := scanner.Err(); err != nil {
		return nil, linkcard.Errorf(linkcard.EINVALID, "failed to read stdin: %v", err)
	}
	return inputs, nil
}

// computeHash fingerprints a batch input using xxhash.
func computeHash(input string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(input))
}
