package extractor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidcrz/mini-data-pipeline/internal/pipeline"
)

func TestFixedExtract(t *testing.T) {
	source := NewFixed()

	batch, err := source.Extract(context.Background())
	require.NoError(t, err)

	want := []pipeline.Record{
		{ID: 1, Name: "Alice", Country: "USA"},
		{ID: 2, Name: "Bob", Country: "India"},
		{ID: 3, Name: "Clara", Country: "UK"},
	}
	assert.Equal(t, want, batch.Records())
}

func TestFixedExtractIsDeterministic(t *testing.T) {
	source := NewFixed()
	ctx := context.Background()

	first, err := source.Extract(ctx)
	require.NoError(t, err)
	second, err := source.Extract(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Records(), second.Records())
}

func TestFixedExtractReturnsFreshBatches(t *testing.T) {
	source := NewFixed()
	ctx := context.Background()

	first, err := source.Extract(ctx)
	require.NoError(t, err)
	first.Records()[0].Name = "mutated"

	second, err := source.Extract(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alice", second.Records()[0].Name)
}
