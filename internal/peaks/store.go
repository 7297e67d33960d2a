package peaks

import (
	"fmt"

	"energy-peaks/internal/config"
	"energy-peaks/internal/data"
	"energy-peaks/internal/model"
)

// PeakLimit is the number of readings returned per market.
const PeakLimit = 5

// Store holds the market index and usage table. It is never modified after
// construction, so it is safe for concurrent readers without locking.
type Store struct {
	markets data.MarketIndex
	usage   []model.UsageRecord
	loaded  bool
}

// Load reads both reference files named in cfg and returns a ready store.
func Load(cfg config.DataConfig) (*Store, error) {
	markets, err := data.LoadMarketIndex(cfg.MarketsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartupData, err)
	}
	usage, err := data.LoadUsage(cfg.UsageFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartupData, err)
	}
	return &Store{markets: markets, usage: usage, loaded: true}, nil
}

// NewStore builds a store from in-memory tables. The usage slice is copied and
// sorted by usage descending with ties kept in input order.
func NewStore(markets data.MarketIndex, usage []model.UsageRecord) *Store {
	idx := make(data.MarketIndex, len(markets))
	for name, id := range markets {
		idx[name] = id
	}
	sorted := make([]model.UsageRecord, len(usage))
	copy(sorted, usage)
	data.SortByUsageDesc(sorted)
	return &Store{markets: idx, usage: sorted, loaded: true}
}

// Ready reports whether the store holds loaded data.
func (s *Store) Ready() bool {
	return s != nil && s.loaded
}

// RecordCount is the number of rows in the usage table.
func (s *Store) RecordCount() int {
	if !s.Ready() {
		return 0
	}
	return len(s.usage)
}
