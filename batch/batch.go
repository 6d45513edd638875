// Package batch runs conversions, downloads and unpacking over many
// documents, isolating each document's failure from the others.
package batch

// Item is the outcome for a single document.
type Item struct {
	Name string

	// Err is nil on success.
	Err error

	// Skipped is set when the document had nothing to process.
	Skipped bool
}

// Result holds the per-document outcomes of a batch in input order.
type Result struct {
	Items []Item
}

// Succeeded returns the number of documents processed without error.
func (r *Result) Succeeded() int {
	n := 0
	for _, it := range r.Items {
		if it.Err == nil && !it.Skipped {
			n++
		}
	}
	return n
}

// Failed returns the number of documents that failed.
func (r *Result) Failed() int {
	n := 0
	for _, it := range r.Items {
		if it.Err != nil {
			n++
		}
	}
	return n
}

// EventType indicates the type of progress event.
type EventType int

const (
	EventStarted EventType = iota
	EventCompleted
	EventFailed
	EventSkipped
	EventFinished
)

// Event reports progress during a batch.
type Event struct {
	Type      EventType
	Completed int
	Total     int
	Name      string
	Err       error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event Event)

func notify(progress ProgressFunc, event Event) {
	if progress != nil {
		progress(event)
	}
}

// itemEvent returns the progress event describing a finished item.
func itemEvent(it Item, completed, total int) Event {
	e := Event{Type: EventCompleted, Completed: completed, Total: total, Name: it.Name, Err: it.Err}
	switch {
	case it.Err != nil:
		e.Type = EventFailed
	case it.Skipped:
		e.Type = EventSkipped
	}
	return e
}
