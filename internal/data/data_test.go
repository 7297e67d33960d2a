package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMarketIndexCSV(t *testing.T) {
	path := writeFile(t, "markets.csv", "id,name\n1,caiso\n2, pjm\n")
	idx, err := LoadMarketIndex(path)
	if err != nil {
		t.Fatalf("LoadMarketIndex: %v", err)
	}
	if len(idx) != 2 {
		t.Fatalf("len=%d want=2", len(idx))
	}
	if id, ok := idx.Lookup("pjm"); !ok || id != 2 {
		t.Fatalf("pjm=%d,%v want=2,true", id, ok)
	}
	if _, ok := idx.Lookup("ercot"); ok {
		t.Fatalf("ercot should be absent")
	}
}

func TestLoadMarketIndexYAML(t *testing.T) {
	path := writeFile(t, "markets.yaml", "markets:\n  - name: caiso\n    id: 1\n  - name: ercot\n    id: 3\n")
	idx, err := LoadMarketIndex(path)
	if err != nil {
		t.Fatalf("LoadMarketIndex: %v", err)
	}
	if idx["ercot"] != 3 || idx["caiso"] != 1 {
		t.Fatalf("idx=%v", idx)
	}
}

func TestLoadMarketIndexErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want string
	}{
		{"empty", "m.csv", "", "missing header"},
		{"missing column", "m.csv", "name,code\ncaiso,1\n", `missing "id" column`},
		{"bad id", "m.csv", "name,id\ncaiso,one\n", "invalid id"},
		{"duplicate", "m.csv", "name,id\ncaiso,1\ncaiso,2\n", "duplicate market name"},
		{"empty name", "m.csv", "name,id\n,1\n", "empty name"},
		{"ragged row", "m.csv", "name,id\ncaiso\n", "wrong number of fields"},
		{"bad yaml", "m.yaml", "markets: [\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadMarketIndex(writeFile(t, tt.file, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err=%v want contains %q", err, tt.want)
			}
		})
	}

	if _, err := LoadMarketIndex(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadUsageSortsDescendingStable(t *testing.T) {
	body := strings.Join([]string{
		"market_id,usage_kw,timestamp",
		"1,80,2023-01-01 00:00:00",
		"1,100,2023-01-02T00:00:00Z",
		"2,80,2023-01-03 00:00:00",
		"1,90.5,2023-01-04T10:30:00-05:00",
		"",
	}, "\n")
	records, err := LoadUsage(writeFile(t, "usage.csv", body))
	if err != nil {
		t.Fatalf("LoadUsage: %v", err)
	}
	wantUsage := []float64{100, 90.5, 80, 80}
	wantMarket := []int64{1, 1, 1, 2}
	if len(records) != len(wantUsage) {
		t.Fatalf("len=%d want=%d", len(records), len(wantUsage))
	}
	for i, r := range records {
		if r.UsageKW != wantUsage[i] || r.MarketID != wantMarket[i] {
			t.Fatalf("records[%d]=%+v want usage=%v market=%d", i, r, wantUsage[i], wantMarket[i])
		}
	}
	if !records[2].Timestamp.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("tie order not stable: %v", records[2].Timestamp)
	}
}

func TestLoadUsageHeaderOnly(t *testing.T) {
	records, err := LoadUsage(writeFile(t, "usage.csv", "timestamp,usage_kw,market_id\n"))
	if err != nil {
		t.Fatalf("LoadUsage: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("records=%v want empty non-nil", records)
	}
}

func TestLoadUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", "missing header"},
		{"missing column", "market_id,usage_kw\n1,2\n", `missing "timestamp" column`},
		{"bad market", "market_id,usage_kw,timestamp\nx,2,2023-01-01\n", "invalid market_id"},
		{"bad usage", "market_id,usage_kw,timestamp\n1,lots,2023-01-01\n", "invalid usage_kw"},
		{"nan usage", "market_id,usage_kw,timestamp\n1,NaN,2023-01-01\n", "invalid usage_kw"},
		{"bad timestamp", "market_id,usage_kw,timestamp\n1,2,yesterday\n", "invalid timestamp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadUsage(writeFile(t, "usage.csv", tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err=%v want contains %q", err, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2023-06-01T12:00:00Z", time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)},
		{"2023-06-01 12:00:00", time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)},
		{"2023-06-01 12:00:00.250", time.Date(2023, 6, 1, 12, 0, 0, 250000000, time.UTC)},
		{"2023-06-01 12:00:00+00:00", time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)},
		{"2023-06-01T12:00", time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)},
		{" 2023-06-01 ", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("ParseTimestamp(%q)=%v want=%v", tt.in, got, tt.want)
		}
	}
}
