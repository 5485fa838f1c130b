package service

import (
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/model"
)

type Service struct {
	Ledger *ledger.Ledger
	Config *config.Config
}

func NewService(l *ledger.Ledger, cfg *config.Config) *Service {
	return &Service{Ledger: l, Config: cfg}
}

// Summary aggregates the full ledger, independent of any list filter.
func (s *Service) Summary() Summary {
	return Summarize(s.Ledger.All())
}

// View is the list projection: category filter, then optional search,
// then an optional limit (<= 0 means no limit).
func (s *Service) View(category, search string, limit int) []model.Transaction {
	if category == "" {
		category = FilterAll
	}

	txs := Search(Project(s.Ledger.All(), category), search)
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs
}

// FilterOptions lists the values accepted by the list filter: the "all"
// sentinel followed by every known category.
func (s *Service) FilterOptions() []string {
	return append([]string{FilterAll}, model.AllCategories()...)
}
