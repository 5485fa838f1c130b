package service

import (
	"sort"
	"strings"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterAll disables category filtering in Project.
const FilterAll = constants.FilterAll

// Project returns the transactions matching category (or all of them for
// FilterAll), most recent date first. Same-date transactions keep their
// ledger order. The result is never nil.
func Project(txs []model.Transaction, category string) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if category == FilterAll || tx.Category == category {
			out = append(out, tx)
		}
	}

	// ISO dates compare correctly as strings
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})

	return out
}

// Search keeps transactions whose description fuzzy-matches term,
// case-insensitively. An empty term matches everything.
func Search(txs []model.Transaction, term string) []model.Transaction {
	term = strings.TrimSpace(term)
	if term == "" {
		return txs
	}

	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if fuzzy.MatchFold(term, tx.Description) {
			out = append(out, tx)
		}
	}
	return out
}
