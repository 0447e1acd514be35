package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkcard"
)

// Ensure LoggingHTMLSource implements linkcard.HTMLSource.
var _ linkcard.HTMLSource = (*LoggingHTMLSource)(nil)

// LoggingHTMLSource wraps an HTMLSource with debug logging.
type LoggingHTMLSource struct {
	next   linkcard.HTMLSource
	name   string
	logger *slog.Logger
}

// NewLoggingHTMLSource creates a new LoggingHTMLSource. The name identifies
// the parsing strategy in log records.
func NewLoggingHTMLSource(next linkcard.HTMLSource, name string, logger *slog.Logger) *LoggingHTMLSource {
	return &LoggingHTMLSource{next: next, name: name, logger: logger}
}

// Read delegates to the wrapped source and logs the operation.
func (s *LoggingHTMLSource) Read(fragment string) (facts *linkcard.HTMLFacts, err error) {
	defer func(begin time.Time) {
		var meta int
		if facts != nil {
			meta = len(facts.Meta)
		}
		s.logger.Debug("html read",
			"source", s.name,
			"bytes", len(fragment),
			"meta", meta,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(fragment)
}
