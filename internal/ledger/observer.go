package ledger

type EventKind string

const (
	EventAdded    EventKind = "added"
	EventUpdated  EventKind = "updated"
	EventDeleted  EventKind = "deleted"
	EventImported EventKind = "imported"
)

// Event is emitted after a mutation has been applied and persisted.
type Event struct {
	Kind EventKind
	// ID of the affected transaction; zero for imports.
	ID int64
	// Count is the ledger size after the mutation.
	Count int
}

type Observer func(Event)

// Subscribe registers fn to be called after every successful mutation.
// The returned func removes the subscription.
func (l *Ledger) Subscribe(fn Observer) func() {
	l.nextObserver++
	key := l.nextObserver
	l.observers[key] = fn
	l.observerOrder = append(l.observerOrder, key)

	return func() {
		delete(l.observers, key)
		for i, k := range l.observerOrder {
			if k == key {
				l.observerOrder = append(l.observerOrder[:i], l.observerOrder[i+1:]...)
				break
			}
		}
	}
}

func (l *Ledger) notify(e Event) {
	for _, key := range l.observerOrder {
		if fn, ok := l.observers[key]; ok {
			fn(e)
		}
	}
}
