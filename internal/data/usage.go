package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"energy-peaks/internal/model"
)

// Layouts accepted for the usage log timestamp column. Values without a zone are UTC.
// Fractional seconds are accepted after the seconds field by time.Parse.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// LoadUsage reads the usage log and returns it sorted by usage descending.
// Rows with equal usage keep their file order.
func LoadUsage(path string) ([]model.UsageRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open usage file: %w", err)
	}
	defer f.Close()

	records, err := ReadUsageCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse usage file %s: %w", path, err)
	}
	SortByUsageDesc(records)
	return records, nil
}

// ReadUsageCSV decodes usage rows in file order.
func ReadUsageCSV(r io.Reader) ([]model.UsageRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}
	cols, err := columnIndex(header, "market_id", "usage_kw", "timestamp")
	if err != nil {
		return nil, err
	}

	records := []model.UsageRecord{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		marketID, err := strconv.ParseInt(strings.TrimSpace(row[cols["market_id"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid market_id %q", line, row[cols["market_id"]])
		}
		usage, err := strconv.ParseFloat(strings.TrimSpace(row[cols["usage_kw"]]), 64)
		if err != nil || math.IsNaN(usage) {
			return nil, fmt.Errorf("line %d: invalid usage_kw %q", line, row[cols["usage_kw"]])
		}
		ts, err := ParseTimestamp(row[cols["timestamp"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, model.UsageRecord{
			MarketID:  marketID,
			UsageKW:   usage,
			Timestamp: ts,
		})
	}
	return records, nil
}

// ParseTimestamp parses a usage log timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// SortByUsageDesc orders records by usage, highest first, keeping the relative order of ties.
func SortByUsageDesc(records []model.UsageRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].UsageKW > records[j].UsageKW
	})
}
