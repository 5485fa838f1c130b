package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
)

// Persister is the load/save primitive the ledger hydrates from and writes
// full snapshots to.
type Persister interface {
	Load() ([]model.Transaction, error)
	Save(txs []model.Transaction) error
}

// Ledger owns the in-memory transaction collection. Every mutation is
// persisted before the call returns; a failed save rolls the mutation back.
type Ledger struct {
	txs       []model.Transaction
	persister Persister
	ids       *IDGenerator
	logger    *pterm.Logger

	observers     map[int]Observer
	observerOrder []int
	nextObserver  int
}

type Option func(*Ledger)

// WithClock sets the time source used for id generation.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.ids = NewIDGenerator(now)
	}
}

func WithLogger(logger *pterm.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Open hydrates a ledger from the persister.
func Open(p Persister, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		persister: p,
		ids:       NewIDGenerator(time.Now),
		logger:    &pterm.DefaultLogger,
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(l)
	}

	txs, err := p.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate ledger: %w", err)
	}
	l.txs = txs
	for _, tx := range txs {
		l.ids.Observe(tx.ID)
	}

	l.logger.Debug("ledger hydrated", l.logger.Args("transactions", len(txs)))
	return l, nil
}

func (l *Ledger) Len() int {
	return len(l.txs)
}

// All returns a copy of the ledger in insertion order.
func (l *Ledger) All() []model.Transaction {
	out := make([]model.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Get looks a transaction up by id.
func (l *Ledger) Get(id int64) (model.Transaction, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.txs[i], true
	}
	return model.Transaction{}, false
}

// Add validates the candidate, assigns a fresh id, appends and persists.
func (l *Ledger) Add(c model.Candidate) (model.Transaction, error) {
	if err := validation.ValidateTransaction(c).Err(); err != nil {
		return model.Transaction{}, err
	}

	id := l.ids.Next(func(id int64) bool { return l.indexOf(id) >= 0 })
	tx, err := c.Transaction(id)
	if err != nil {
		return model.Transaction{}, err
	}

	next := append(l.All(), tx)
	if err := l.commit(next); err != nil {
		return model.Transaction{}, err
	}

	l.notify(Event{Kind: EventAdded, ID: id, Count: len(l.txs)})
	return tx, nil
}

// Update replaces every field of the transaction with the given id while
// keeping the id. An unknown id is not an error: found is false and the
// ledger is left untouched.
func (l *Ledger) Update(id int64, c model.Candidate) (found bool, err error) {
	if err := validation.ValidateTransaction(c).Err(); err != nil {
		return false, err
	}

	i := l.indexOf(id)
	if i < 0 {
		l.logger.Debug("update skipped, transaction not found", l.logger.Args("id", id))
		return false, nil
	}

	tx, err := c.Transaction(id)
	if err != nil {
		return false, err
	}

	next := l.All()
	next[i] = tx
	if err := l.commit(next); err != nil {
		return false, err
	}

	l.notify(Event{Kind: EventUpdated, ID: id, Count: len(l.txs)})
	return true, nil
}

// Delete removes the transaction with the given id. An unknown id is a no-op.
func (l *Ledger) Delete(id int64) (found bool, err error) {
	i := l.indexOf(id)
	if i < 0 {
		l.logger.Debug("delete skipped, transaction not found", l.logger.Args("id", id))
		return false, nil
	}

	next := make([]model.Transaction, 0, len(l.txs)-1)
	next = append(next, l.txs[:i]...)
	next = append(next, l.txs[i+1:]...)
	if err := l.commit(next); err != nil {
		return false, err
	}

	l.notify(Event{Kind: EventDeleted, ID: id, Count: len(l.txs)})
	return true, nil
}

// Export returns the whole ledger as an indented JSON array.
func (l *Ledger) Export() ([]byte, error) {
	txs := l.txs
	if txs == nil {
		txs = []model.Transaction{}
	}
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger: %w", err)
	}
	return data, nil
}

func (l *Ledger) indexOf(id int64) int {
	for i := range l.txs {
		if l.txs[i].ID == id {
			return i
		}
	}
	return -1
}

// commit persists next and swaps it in only when the save succeeded.
func (l *Ledger) commit(next []model.Transaction) error {
	if err := l.persister.Save(next); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	l.txs = next
	return nil
}
