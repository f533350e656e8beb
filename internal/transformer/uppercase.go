// Package transformer holds the pipeline's record transformations.
package transformer

import (
	"fmt"
	"strings"

	"github.com/sidcrz/mini-data-pipeline/internal/pipeline"
)

// UppercaseName converts each record's name to uppercase. The id and country
// fields pass through unchanged, so applying the transform twice yields the
// same batch as applying it once.
type UppercaseName struct{}

// NewUppercaseName creates the uppercase-name transformer.
func NewUppercaseName() *UppercaseName {
	return &UppercaseName{}
}

// Transform returns a new batch with every name uppercased.
func (t *UppercaseName) Transform(batch *pipeline.Batch) (*pipeline.Batch, error) {
	if batch == nil {
		return nil, fmt.Errorf("transform: nil batch")
	}

	records := batch.Records()
	transformed := make([]pipeline.Record, len(records))
	for i, record := range records {
		transformed[i] = pipeline.Record{
			ID:      record.ID,
			Name:    strings.ToUpper(record.Name),
			Country: record.Country,
		}
	}
	return pipeline.NewBatch(transformed), nil
}
