package completion

import (
	"context"

	"github.com/willibrandon/stroke/document"
)

// ThreadedCompleter runs Inner's synchronous GetCompletions on a worker
// goroutine and relays results over a channel, so a slow completer (one
// hitting disk or a subprocess) never blocks the key-processing loop —
// the same one-goroutine-produces, one-goroutine-consumes shape as the
// input byte relay.
type ThreadedCompleter struct {
	Inner Completer
}

func (t *ThreadedCompleter) GetCompletions(doc *document.Document, ev CompleteEvent) []Completion {
	return t.Inner.GetCompletions(doc, ev)
}

// GetCompletionsAsync streams Inner's results from a worker goroutine,
// closing the channel early if ctx is cancelled before the worker
// finishes computing.
func (t *ThreadedCompleter) GetCompletionsAsync(ctx context.Context, doc *document.Document, ev CompleteEvent) <-chan Completion {
	out := make(chan Completion)
	done := make(chan []Completion, 1)

	go func() {
		done <- t.Inner.GetCompletions(doc, ev)
	}()

	go func() {
		defer close(out)
		select {
		case comps := <-done:
			for _, c := range comps {
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}()

	return out
}
