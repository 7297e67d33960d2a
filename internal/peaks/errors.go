package peaks

import (
	"errors"
	"fmt"
)

var (
	// ErrStartupData means a reference file was missing, unreadable or malformed.
	ErrStartupData = errors.New("reference data could not be loaded")
	// ErrDataUnavailable means a query ran against a store that was never loaded.
	ErrDataUnavailable = errors.New("market mapping and usage data not loaded")
	// ErrUnknownMarket means the requested market is not supported or not in the index.
	ErrUnknownMarket = errors.New("unknown market")
)

// Reasons attached to a MarketError.
const (
	ReasonInvalid  = "invalid"
	ReasonNotFound = "not_found"
)

// MarketError describes why a market name could not be resolved.
type MarketError struct {
	Market string
	Reason string
}

func (e *MarketError) Error() string {
	switch e.Reason {
	case ReasonNotFound:
		return fmt.Sprintf("market %q is not present in the market index", e.Market)
	default:
		return fmt.Sprintf("market %q is not a recognized energy market", e.Market)
	}
}

func (e *MarketError) Unwrap() error {
	return ErrUnknownMarket
}
