package motec

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"acrtelemetry/internal/decode"
)

// WriteCSV writes records to path as a plain delimited-text export,
// one row per sample, carrying the same 25-channel subset as WriteLD.
func WriteCSV(path string, records []decode.PhysicsFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("motec: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	channels := buildChannels(records)

	header := make([]string, len(channels))
	for i, ch := range channels {
		if ch.unit != "" {
			header[i] = fmt.Sprintf("%s (%s)", ch.name, ch.unit)
		} else {
			header[i] = ch.name
		}
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("motec: write csv header: %w", err)
	}

	row := make([]string, len(channels))
	for i := range records {
		for c, ch := range channels {
			row[c] = strconv.FormatFloat(float64(ch.data[i]), 'f', -1, 32)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("motec: write csv row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("motec: flush csv: %w", err)
	}
	return nil
}
