package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	main "github.com/fwojciec/linkcard/cmd/linkcard"
	"github.com/fwojciec/linkcard/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
		Parser: engine.New(),
	}, stdout, stderr
}

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints null when nothing is recognized", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps("")
		cmd := &main.ParseCmd{Text: "Just a short update, nothing special."}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "null\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("reads stdin when no text is given", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("# Release Notes\n\nCheck the [changelog](https://example.com/changelog) for details.")
		cmd := &main.ParseCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"format":"markdown"`)
		assert.Contains(t, stdout.String(), `"url":"https://example.com/changelog"`)
	})

	t.Run("does not escape HTML characters", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		cmd := &main.ParseCmd{Text: "title: <Q&A>\nurl: https://example.com/?a=1&b=2"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"url":"https://example.com/?a=1&b=2"`)
	})

	t.Run("strict mode accepts valid previews", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		deps.Strict = true
		cmd := &main.ParseCmd{Text: "See https://cdn.example.com/photo.jpg for the shot."}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"image":"https://cdn.example.com/photo.jpg"`)
	})
}

func TestTextCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the description", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		cmd := &main.TextCmd{Text: `{"title":"Weekly Digest","summary":"Top 5 stories"}`, Fallback: "..."}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Top 5 stories\n", stdout.String())
	})

	t.Run("reads stdin for -", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("  hello\n world  ")
		cmd := &main.TextCmd{Text: "-", Fallback: "..."}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "hello world\n", stdout.String())
	})
}

func TestImageCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the image URL", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		cmd := &main.ImageCmd{Text: "See https://cdn.example.com/photo.jpg for the shot."}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/photo.jpg\n", stdout.String())
	})

	t.Run("prints an empty line without an image", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		cmd := &main.ImageCmd{Text: "no pictures here"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "\n", stdout.String())
	})
}
