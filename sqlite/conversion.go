package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/qalog"
	"github.com/google/uuid"
)

// Ensure ConversionService implements qalog.ConversionService at compile time.
var _ qalog.ConversionService = (*ConversionService)(nil)

// ConversionService implements qalog.ConversionService using SQLite.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// CreateConversion records a conversion, assigning its ID and timestamp.
func (s *ConversionService) CreateConversion(ctx context.Context, c *qalog.Conversion) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.New().String()
	c.ConvertedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, document, path, categories, asks, bytes, content_hash, converted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Document, c.Path, c.Categories, c.Asks, c.Bytes, c.ContentHash,
		c.ConvertedAt.Format(time.RFC3339))

	return err
}

// FindConversions retrieves conversions matching the filter, newest first.
func (s *ConversionService) FindConversions(ctx context.Context, filter qalog.ConversionFilter) ([]*qalog.Conversion, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document, path, categories, asks, bytes, content_hash, converted_at FROM conversions WHERE 1=1")

	if filter.Document != nil {
		query.WriteString(" AND document = ?")
		args = append(args, *filter.Document)
	}

	query.WriteString(" ORDER BY converted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conversions := make([]*qalog.Conversion, 0)
	for rows.Next() {
		var c qalog.Conversion
		var convertedAt string

		if err := rows.Scan(&c.ID, &c.Document, &c.Path, &c.Categories, &c.Asks, &c.Bytes,
			&c.ContentHash, &convertedAt); err != nil {
			return nil, err
		}

		c.ConvertedAt, err = parseRFC3339(convertedAt, "converted_at")
		if err != nil {
			return nil, err
		}

		conversions = append(conversions, &c)
	}

	return conversions, rows.Err()
}

// DeleteConversions removes every conversion of a document.
// Returns ENOTFOUND if the document has no recorded conversions.
func (s *ConversionService) DeleteConversions(ctx context.Context, document string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM conversions WHERE document = ?", document)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return qalog.Errorf(qalog.ENOTFOUND, "no conversions found for %q", document)
	}

	return nil
}
