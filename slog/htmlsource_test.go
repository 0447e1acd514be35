package slog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fwojciec/linkcard"
	"github.com/fwojciec/linkcard/mock"
	lcslog "github.com/fwojciec/linkcard/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingHTMLSource_Read(t *testing.T) {
	t.Parallel()

	t.Run("logs the source name and meta count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.HTMLSource{
			ReadFn: func(fragment string) (*linkcard.HTMLFacts, error) {
				return &linkcard.HTMLFacts{Meta: map[string]string{"og:title": "A", "og:url": "https://example.com"}}, nil
			},
		}

		s := lcslog.NewLoggingHTMLSource(inner, "structural", newDebugLogger(&buf))
		facts, err := s.Read("<p>x</p>")

		require.NoError(t, err)
		assert.Equal(t, "A", facts.Meta["og:title"])
		output := buf.String()
		assert.Contains(t, output, "html read")
		assert.Contains(t, output, "source=structural")
		assert.Contains(t, output, "bytes=8")
		assert.Contains(t, output, "meta=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.HTMLSource{
			ReadFn: func(fragment string) (*linkcard.HTMLFacts, error) {
				return nil, errors.New("tokenizer failed")
			},
		}

		s := lcslog.NewLoggingHTMLSource(inner, "token", newDebugLogger(&buf))
		_, err := s.Read("<p>")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "meta=0")
		assert.Contains(t, output, "err=\"tokenizer failed\"")
	})
}
