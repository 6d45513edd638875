package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/qalog"
)

// Ensure LoggingExtractor implements qalog.Extractor.
var _ qalog.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   qalog.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next qalog.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the tree size.
func (e *LoggingExtractor) Extract(ctx context.Context, doc *qalog.Document) (categories []*qalog.Category, err error) {
	defer func(begin time.Time) {
		stats := qalog.CountTree(categories)
		e.logger.Info("extract",
			"document", doc.Name,
			"categories", stats.Categories,
			"asks", stats.Asks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, doc)
}
