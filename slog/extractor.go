package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkcard"
)

// Ensure LoggingExtractor implements linkcard.Extractor.
var _ linkcard.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   linkcard.Extractor
	format linkcard.Format
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The format labels the
// log records.
func NewLoggingExtractor(next linkcard.Extractor, format linkcard.Format, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, format: format, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
// A no-match error is logged as a miss, not as a failure.
func (e *LoggingExtractor) Extract(content string) (p *linkcard.Preview, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"format", string(e.format),
			"bytes", len(content),
			"duration", time.Since(begin),
		}
		switch code := linkcard.ErrorCode(err); code {
		case "":
			attrs = append(attrs, "matched", true)
		case linkcard.ENOMATCH:
			attrs = append(attrs, "matched", false)
		default:
			attrs = append(attrs, "matched", false, "code", code, "err", err)
		}
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(content)
}
