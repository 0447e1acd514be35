package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	main "github.com/fwojciec/linkcard/cmd/linkcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "linkcard")
	assert.Contains(t, stdout.String(), "parse")
	assert.Contains(t, stdout.String(), "batch")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_UnknownStrategy(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--strategy=regex", "parse", "x"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_Parse(t *testing.T) {
	t.Parallel()

	t.Run("prints the preview as JSON", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"parse", `{"title":"Weekly Digest","summary":"Top 5 stories"}`}, &stdout, &stderr)

		require.NoError(t, err)
		assert.JSONEq(t, `{"format":"json","title":"Weekly Digest","description":"Top 5 stories","plainText":"{\"title\":\"Weekly Digest\",\"summary\":\"Top 5 stories\"}"}`, stdout.String())
	})

	t.Run("reads stdin with the token strategy and logs when verbose", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Stdin = strings.NewReader(`<meta property="og:title" content="A & B"><p>body</p>`)
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"--strategy=token", "--verbose", "--strict", "parse", "-"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.JSONEq(t, `{"format":"html","title":"A & B","description":"body","plainText":"body"}`, stdout.String())
		assert.Contains(t, stdout.String(), "A & B")
		assert.Contains(t, stderr.String(), "source=token")
	})
}

func TestMain_Run_Text(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"text", "--fallback=(none)", " "}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "(none)\n", stdout.String())
}

func TestMain_Run_Formats(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"formats"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "html\njson\nkv\nmarkdown\ntext\n", stdout.String())
}
