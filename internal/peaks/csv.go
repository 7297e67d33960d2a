package peaks

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"energy-peaks/internal/model"
)

func WritePeaksCSVFile(path string, results []model.PeakResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WritePeaksCSV(f, results)
}

func WritePeaksCSV(out io.Writer, results []model.PeakResult) error {
	w := csv.NewWriter(out)

	header := []string{
		"market_name",
		"usage_kw",
		"timestamp",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			string(r.MarketName),
			fmtFloat(r.UsageKW),
			fmtTime(r.Timestamp),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
