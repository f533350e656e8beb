package pipeline

import (
	"reflect"

	"github.com/sidcrz/mini-data-pipeline/internal/utils"
)

// Record is a single customer row moving through the pipeline.
type Record struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Country string `db:"country"`
}

// Column describes one destination column inferred from the record shape.
type Column struct {
	Name string
	Kind reflect.Kind
}

// Batch is the fixed, finite set of records processed in one run.
type Batch struct {
	records []Record
}

// NewBatch creates a batch over the given records.
func NewBatch(records []Record) *Batch {
	return &Batch{records: records}
}

// Records returns the batch contents in order.
func (b *Batch) Records() []Record {
	return b.records
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int {
	return len(b.records)
}

// Columns returns the destination column names, taken from the record's db
// tags.
func (b *Batch) Columns() []string {
	return utils.FieldNames(Record{}, "db")
}

// Schema returns the destination columns with their Go kinds so a loader can
// derive column types without inspecting row values.
func (b *Batch) Schema() []Column {
	names := utils.FieldNames(Record{}, "db")
	kinds := utils.FieldKinds(Record{})

	columns := make([]Column, len(names))
	for i := range names {
		columns[i] = Column{Name: names[i], Kind: kinds[i]}
	}
	return columns
}

// Rows returns the batch as positional value rows matching Columns().
func (b *Batch) Rows() [][]interface{} {
	rows := make([][]interface{}, len(b.records))
	for i, record := range b.records {
		rows[i] = utils.FieldValues(record)
	}
	return rows
}
