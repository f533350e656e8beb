package transformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidcrz/mini-data-pipeline/internal/pipeline"
)

func sampleBatch() *pipeline.Batch {
	return pipeline.NewBatch([]pipeline.Record{
		{ID: 1, Name: "Alice", Country: "USA"},
		{ID: 2, Name: "Bob", Country: "India"},
		{ID: 3, Name: "Clara", Country: "UK"},
	})
}

func TestUppercaseName(t *testing.T) {
	batch, err := NewUppercaseName().Transform(sampleBatch())
	require.NoError(t, err)

	want := []pipeline.Record{
		{ID: 1, Name: "ALICE", Country: "USA"},
		{ID: 2, Name: "BOB", Country: "India"},
		{ID: 3, Name: "CLARA", Country: "UK"},
	}
	assert.Equal(t, want, batch.Records())
}

func TestUppercaseNameIsIdempotent(t *testing.T) {
	tr := NewUppercaseName()

	once, err := tr.Transform(sampleBatch())
	require.NoError(t, err)
	twice, err := tr.Transform(once)
	require.NoError(t, err)

	assert.Equal(t, once.Records(), twice.Records())
}

func TestUppercaseNameTouchesOnlyName(t *testing.T) {
	input := sampleBatch()
	batch, err := NewUppercaseName().Transform(input)
	require.NoError(t, err)

	for i, record := range batch.Records() {
		assert.Equal(t, input.Records()[i].ID, record.ID)
		assert.Equal(t, input.Records()[i].Country, record.Country)
	}
}

func TestUppercaseNameLeavesInputUnchanged(t *testing.T) {
	input := sampleBatch()
	_, err := NewUppercaseName().Transform(input)
	require.NoError(t, err)

	assert.Equal(t, sampleBatch().Records(), input.Records())
}

func TestUppercaseNameRejectsNilBatch(t *testing.T) {
	_, err := NewUppercaseName().Transform(nil)
	assert.Error(t, err)
}
