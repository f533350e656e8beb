package extractor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidcrz/mini-data-pipeline/internal/pipeline"
)

func TestCSVExtract(t *testing.T) {
	input := "id,name,country\n" +
		"1,Alice,USA\n" +
		"2,Bob,India\n" +
		"3,Clara,UK\n"

	batch, err := NewCSV(strings.NewReader(input)).Extract(context.Background())
	require.NoError(t, err)

	want := []pipeline.Record{
		{ID: 1, Name: "Alice", Country: "USA"},
		{ID: 2, Name: "Bob", Country: "India"},
		{ID: 3, Name: "Clara", Country: "UK"},
	}
	assert.Equal(t, want, batch.Records())
}

func TestCSVExtractErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "non-numeric id",
			input: "id,name,country\nfoo,Alice,USA\n",
		},
		{
			name:  "too few fields",
			input: "id,name,country\n1,Alice\n",
		},
		{
			name:  "too many fields",
			input: "id,name,country\n1,Alice,USA,extra\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCSV(strings.NewReader(tt.input)).Extract(context.Background())
			assert.Error(t, err)
		})
	}
}
