package store

import "github.com/vibecoding/vibenotes/internal/models"

// EventKind names a mutation on the note collection.
type EventKind string

const (
	EventCreated         EventKind = "created"
	EventUpdated         EventKind = "updated"
	EventDeleted         EventKind = "deleted"
	EventStateCycled     EventKind = "state-cycled"
	EventPriorityChanged EventKind = "priority-changed"
	EventImported        EventKind = "imported"
)

// Event describes a single completed mutation. Note is the affected
// record after the mutation, or nil for bulk events like imports.
type Event struct {
	Kind EventKind
	Note *models.Note
}

// Listener receives mutation events. Listeners run synchronously on the
// mutating goroutine, after persistence, in subscription order.
type Listener func(Event)

// Subscribe registers a mutation listener. There is no unsubscribe;
// listeners live as long as the store.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) emit(e Event) {
	for _, fn := range s.listeners {
		fn(e)
	}
}
