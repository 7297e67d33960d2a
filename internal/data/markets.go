package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarketIndex maps a market name to its numeric id in the usage log.
type MarketIndex map[string]int64

// Lookup returns the id for name.
func (idx MarketIndex) Lookup(name string) (int64, bool) {
	id, ok := idx[name]
	return id, ok
}

// MarketEntry is one row of the market reference file.
type MarketEntry struct {
	Name string `yaml:"name"`
	ID   int64  `yaml:"id"`
}

type marketFile struct {
	Markets []MarketEntry `yaml:"markets"`
}

// LoadMarketIndex reads the market reference file. CSV files need a header with
// "name" and "id" columns; .yaml/.yml files use a top-level "markets" list.
// Duplicate names are rejected.
func LoadMarketIndex(path string) (MarketIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open markets file: %w", err)
	}
	defer f.Close()

	var entries []MarketEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = decodeMarketsYAML(f)
	default:
		entries, err = decodeMarketsCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse markets file %s: %w", path, err)
	}
	return buildIndex(entries)
}

func decodeMarketsYAML(r io.Reader) ([]MarketEntry, error) {
	var mf marketFile
	if err := yaml.NewDecoder(r).Decode(&mf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return mf.Markets, nil
}

func decodeMarketsCSV(r io.Reader) ([]MarketEntry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}
	cols, err := columnIndex(header, "name", "id")
	if err != nil {
		return nil, err
	}

	var entries []MarketEntry
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		id, err := strconv.ParseInt(strings.TrimSpace(row[cols["id"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid id %q", line, row[cols["id"]])
		}
		entries = append(entries, MarketEntry{
			Name: strings.TrimSpace(row[cols["name"]]),
			ID:   id,
		})
	}
	return entries, nil
}

func buildIndex(entries []MarketEntry) (MarketIndex, error) {
	idx := make(MarketIndex, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("market entry %d has an empty name", i+1)
		}
		if _, dup := idx[e.Name]; dup {
			return nil, fmt.Errorf("duplicate market name %q", e.Name)
		}
		idx[e.Name] = e.ID
	}
	return idx, nil
}

// columnIndex locates the required columns in a CSV header.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	out := make(map[string]int, len(required))
	for _, name := range required {
		i, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("missing %q column", name)
		}
		out[name] = i
	}
	return out, nil
}
