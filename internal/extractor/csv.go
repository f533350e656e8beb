package extractor

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sidcrz/mini-data-pipeline/internal/pipeline"
)

const csvFieldCount = 3

// CSV reads id,name,country records from a reader. It exists so fixtures can
// be injected without touching the transform or load stages.
type CSV struct {
	reader io.Reader
}

// NewCSV creates a source over the given reader. The first row must be a
// header.
func NewCSV(reader io.Reader) *CSV {
	return &CSV{reader: reader}
}

// Extract parses the full input into a batch. Any malformed row is an
// extraction error.
func (c *CSV) Extract(_ context.Context) (*pipeline.Batch, error) {
	csvReader := csv.NewReader(c.reader)
	csvReader.FieldsPerRecord = csvFieldCount

	// Skip header
	if _, err := csvReader.Read(); err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var records []pipeline.Record
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		record, err := newRecordFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return pipeline.NewBatch(records), nil
}

func newRecordFromRow(row []string) (pipeline.Record, error) {
	if len(row) != csvFieldCount {
		return pipeline.Record{}, fmt.Errorf("csv row has %d fields, want %d", len(row), csvFieldCount)
	}

	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return pipeline.Record{}, fmt.Errorf("parse record id %q: %w", row[0], err)
	}

	return pipeline.Record{
		ID:      id,
		Name:    row[1],
		Country: row[2],
	}, nil
}
