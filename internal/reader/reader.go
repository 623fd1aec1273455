// Package reader parses tab-separated name and number files.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"phonenorm/internal/models"
)

// Read parses records from r. Each line is trimmed and split on tabs; the
// first two fields are the name and the raw number. Lines with fewer than two
// fields are skipped.
func Read(r io.Reader) ([]models.RawRecord, error) {
	var records []models.RawRecord

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rec, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return records, nil
}

// ParseLine parses a single line.
func ParseLine(line string) (models.RawRecord, bool) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < 2 {
		return models.RawRecord{}, false
	}

	return models.RawRecord{Name: fields[0], RawNumber: fields[1]}, true
}

// ReadFile opens path and parses its records.
func ReadFile(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}
