package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
)

const ImportConfirmMessage = "Are you sure you want to replace your current transactions with the imported data?"

// Confirmer is the yes/no gate consulted before an import replaces the ledger.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

type ConfirmFunc func(message string) (bool, error)

func (f ConfirmFunc) Confirm(message string) (bool, error) {
	return f(message)
}

// AlwaysConfirm grants every confirmation, for non-interactive imports.
var AlwaysConfirm = ConfirmFunc(func(string) (bool, error) { return true, nil })

type ImportOptions struct {
	// Strict runs every row through the entry validator and rejects the
	// whole payload if any row fails.
	Strict bool
}

type ImportResult struct {
	Replaced bool
	Count    int
}

// Import replaces the entire ledger with the transactions in raw. The payload
// must be a JSON array; nothing changes unless confirm grants the replacement.
func (l *Ledger) Import(raw []byte, confirm Confirmer, opts ImportOptions) (ImportResult, error) {
	txs, err := DecodeSnapshot(raw)
	if err != nil {
		return ImportResult{}, err
	}

	if opts.Strict {
		if err := validateRows(txs); err != nil {
			return ImportResult{}, err
		}
	}

	if confirm == nil {
		return ImportResult{}, nil
	}
	ok, err := confirm.Confirm(ImportConfirmMessage)
	if err != nil {
		return ImportResult{}, err
	}
	if !ok {
		l.logger.Debug("import declined", l.logger.Args("rows", len(txs)))
		return ImportResult{}, nil
	}

	if err := l.commit(txs); err != nil {
		return ImportResult{}, err
	}
	for _, tx := range txs {
		l.ids.Observe(tx.ID)
	}

	l.notify(Event{Kind: EventImported, Count: len(txs)})
	return ImportResult{Replaced: true, Count: len(txs)}, nil
}

// DecodeSnapshot parses an exported snapshot. Rows are decoded but not validated.
func DecodeSnapshot(raw []byte) ([]model.Transaction, error) {
	var shape any
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, &ImportParseError{Err: err}
	}
	if _, ok := shape.([]any); !ok {
		return nil, ErrImportFormat
	}

	txs := []model.Transaction{}
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, &ImportParseError{Err: err}
	}
	return txs, nil
}

func validateRows(txs []model.Transaction) error {
	var msgs []string
	seen := make(map[int64]bool, len(txs))

	for i, tx := range txs {
		if seen[tx.ID] {
			msgs = append(msgs, fmt.Sprintf("Row %d: duplicate id %d.", i+1, tx.ID))
		}
		seen[tx.ID] = true

		res := validation.ValidateImported(tx)
		for _, e := range res.Errors {
			msgs = append(msgs, fmt.Sprintf("Row %d: %s", i+1, e))
		}
	}

	if len(msgs) == 0 {
		return nil
	}
	return validation.NewValidationError(msgs...)
}
