package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

// LedgerStore loads and saves the whole ledger as a single snapshot.
type LedgerStore struct {
	kv     KVStore
	key    string
	logger *pterm.Logger
}

func NewLedgerStore(kv KVStore, key string, logger *pterm.Logger) *LedgerStore {
	if logger == nil {
		logger = &pterm.DefaultLogger
	}
	return &LedgerStore{kv: kv, key: key, logger: logger}
}

// Load returns the persisted ledger. An absent or malformed snapshot yields
// an empty ledger; only storage failures are returned as errors.
func (s *LedgerStore) Load() ([]model.Transaction, error) {
	raw, err := s.kv.Get(s.key)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return []model.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	var txs []model.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		s.logger.Warn("discarding malformed ledger snapshot",
			s.logger.Args("key", s.key, "error", err.Error()))
		return []model.Transaction{}, nil
	}
	if txs == nil {
		txs = []model.Transaction{}
	}

	return txs, nil
}

// Save serializes the entire ledger and replaces the stored snapshot.
func (s *LedgerStore) Save(txs []model.Transaction) error {
	if txs == nil {
		txs = []model.Transaction{}
	}

	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	if err := s.kv.Put(s.key, raw); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	s.logger.Debug("ledger saved", s.logger.Args("key", s.key, "transactions", len(txs)))
	return nil
}
