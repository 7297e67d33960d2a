package model

import "testing"

func TestParseEnergyMarket(t *testing.T) {
	for _, m := range AllMarkets() {
		got, err := ParseEnergyMarket(string(m))
		if err != nil {
			t.Fatalf("ParseEnergyMarket(%q) err=%v", m, err)
		}
		if got != m {
			t.Fatalf("ParseEnergyMarket(%q)=%q", m, got)
		}
	}

	for _, bad := range []string{"", "CAISO", " caiso", "texas", "iso-ne"} {
		if _, err := ParseEnergyMarket(bad); err == nil {
			t.Fatalf("ParseEnergyMarket(%q) expected error", bad)
		}
		if EnergyMarket(bad).Valid() {
			t.Fatalf("EnergyMarket(%q).Valid()=true", bad)
		}
	}
}

func TestAllMarketsReturnsCopy(t *testing.T) {
	a := AllMarkets()
	if len(a) != 9 {
		t.Fatalf("len=%d want=9", len(a))
	}
	a[0] = "mutated"
	if AllMarkets()[0] != MarketCAISO {
		t.Fatalf("AllMarkets shares backing array with caller")
	}
}
