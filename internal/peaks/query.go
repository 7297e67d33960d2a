package peaks

import "energy-peaks/internal/model"

// TopPeaks returns up to PeakLimit readings for marketName, highest usage first.
// The market name is echoed back on every result. A market with no readings
// yields an empty slice.
func (s *Store) TopPeaks(marketName string) ([]model.PeakResult, error) {
	if !s.Ready() {
		return nil, ErrDataUnavailable
	}
	market, err := model.ParseEnergyMarket(marketName)
	if err != nil {
		return nil, &MarketError{Market: marketName, Reason: ReasonInvalid}
	}
	id, ok := s.markets.Lookup(string(market))
	if !ok {
		return nil, &MarketError{Market: marketName, Reason: ReasonNotFound}
	}

	out := make([]model.PeakResult, 0, PeakLimit)
	for _, r := range s.usage {
		if r.MarketID != id {
			continue
		}
		out = append(out, model.PeakResult{
			UsageKW:    r.UsageKW,
			MarketName: market,
			Timestamp:  r.Timestamp,
		})
		if len(out) == PeakLimit {
			break
		}
	}
	return out, nil
}

// MarketSummary describes one supported market present in the index.
type MarketSummary struct {
	Name        model.EnergyMarket
	ID          int64
	RecordCount int
}

// Markets lists the supported markets found in the index, in canonical order.
// Index entries that are not supported market names are left out.
func (s *Store) Markets() ([]MarketSummary, error) {
	if !s.Ready() {
		return nil, ErrDataUnavailable
	}
	counts := make(map[int64]int)
	for _, r := range s.usage {
		counts[r.MarketID]++
	}

	out := []MarketSummary{}
	for _, m := range model.AllMarkets() {
		id, ok := s.markets.Lookup(string(m))
		if !ok {
			continue
		}
		out = append(out, MarketSummary{Name: m, ID: id, RecordCount: counts[id]})
	}
	return out, nil
}
