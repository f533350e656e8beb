// Package extractor provides the pipeline's record sources.
package extractor

import (
	"context"

	"github.com/sidcrz/mini-data-pipeline/internal/pipeline"
)

// Fixed is the built-in source: a constant three-row customer dataset. Each
// Extract call returns a freshly allocated batch with identical contents.
type Fixed struct{}

// NewFixed creates the fixed customer source.
func NewFixed() *Fixed {
	return &Fixed{}
}

// Extract returns the fixed dataset. It has no inputs and no side effects.
func (f *Fixed) Extract(_ context.Context) (*pipeline.Batch, error) {
	records := []pipeline.Record{
		{ID: 1, Name: "Alice", Country: "USA"},
		{ID: 2, Name: "Bob", Country: "India"},
		{ID: 3, Name: "Clara", Country: "UK"},
	}
	return pipeline.NewBatch(records), nil
}
