package model

import "fmt"

// EnergyMarket is one of the supported grid operators.
type EnergyMarket string

const (
	MarketCAISO EnergyMarket = "caiso"
	MarketSPP   EnergyMarket = "spp"
	MarketERCOT EnergyMarket = "ercot"
	MarketIESO  EnergyMarket = "ieso"
	MarketAESO  EnergyMarket = "aeso"
	MarketNYISO EnergyMarket = "nyiso"
	MarketPJM   EnergyMarket = "pjm"
	MarketMISO  EnergyMarket = "miso"
	MarketISONE EnergyMarket = "isone"
)

var allMarkets = []EnergyMarket{
	MarketCAISO,
	MarketSPP,
	MarketERCOT,
	MarketIESO,
	MarketAESO,
	MarketNYISO,
	MarketPJM,
	MarketMISO,
	MarketISONE,
}

// AllMarkets returns the supported markets in their canonical order.
func AllMarkets() []EnergyMarket {
	out := make([]EnergyMarket, len(allMarkets))
	copy(out, allMarkets)
	return out
}

// ParseEnergyMarket matches s exactly against the supported markets.
func ParseEnergyMarket(s string) (EnergyMarket, error) {
	for _, m := range allMarkets {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unsupported energy market %q", s)
}

func (m EnergyMarket) Valid() bool {
	_, err := ParseEnergyMarket(string(m))
	return err == nil
}

func (m EnergyMarket) String() string {
	return string(m)
}
