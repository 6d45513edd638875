package batch

import (
	"context"

	"github.com/fwojciec/qalog"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents converted at once.
const DefaultConcurrency = 4

// Converter extracts documents and writes their artifacts in parallel.
// A failing document is reported in its Item and never stops the others.
type Converter struct {
	Extractor   qalog.Extractor
	Writer      qalog.ResultWriter
	Conversions qalog.ConversionService // optional
	Concurrency int
}

// convertItem is the outcome of converting a single document.
type convertItem struct {
	Item
	Conversion *qalog.Conversion
}

// ConvertResult holds the conversion outcomes in input order.
type ConvertResult struct {
	Result
	Conversions []*qalog.Conversion
}

type convertOutcome struct {
	position int
	item     convertItem
}

// ConvertAll converts every document. The returned error is non-nil only
// when ctx is canceled.
func (c *Converter) ConvertAll(ctx context.Context, docs []*qalog.Document, progress ProgressFunc) (*ConvertResult, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(docs)
	notify(progress, Event{Type: EventStarted, Total: total})

	outcomes := make(chan convertOutcome, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, doc := range docs {
			g.Go(func() error {
				outcomes <- convertOutcome{position: i, item: c.convert(gctx, doc)}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	items := make([]convertItem, total)
	completed := 0
	for o := range outcomes {
		completed++
		items[o.position] = o.item
		notify(progress, itemEvent(o.item.Item, completed, total))
	}

	result := &ConvertResult{}
	for _, it := range items {
		result.Items = append(result.Items, it.Item)
		if it.Conversion != nil {
			result.Conversions = append(result.Conversions, it.Conversion)
		}
	}

	notify(progress, Event{Type: EventFinished, Completed: completed, Total: total})
	return result, ctx.Err()
}

func (c *Converter) convert(ctx context.Context, doc *qalog.Document) convertItem {
	it := convertItem{Item: Item{Name: doc.Name}}
	if err := ctx.Err(); err != nil {
		it.Err = err
		return it
	}

	categories, err := c.Extractor.Extract(ctx, doc)
	if err != nil {
		it.Err = err
		return it
	}

	conv, err := c.Writer.WriteResult(ctx, doc, categories)
	if err != nil {
		it.Err = err
		return it
	}

	if c.Conversions != nil {
		if err := c.Conversions.CreateConversion(ctx, conv); err != nil {
			it.Err = err
			return it
		}
	}

	it.Conversion = conv
	return it
}
