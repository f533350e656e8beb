// Package pipeline defines the record model and the three-stage
// extract/transform/load contract, and runs the stages strictly in order.
package pipeline

import (
	"context"
	"fmt"
)

// Source produces a batch of records.
type Source interface {
	Extract(ctx context.Context) (*Batch, error)
}

// Transformer derives a new batch from an extracted one.
type Transformer interface {
	Transform(batch *Batch) (*Batch, error)
}

// Loader writes a batch to the destination store.
type Loader interface {
	Connect(ctx context.Context) error
	Load(ctx context.Context, batch *Batch) error
	Close(ctx context.Context) error
}

// Run executes extract, transform, and load in order. Any stage failure
// aborts the run before the next stage starts, so a malformed batch is never
// sent to the destination. The loader connection is acquired only after the
// batch is ready and is released on every exit path.
func Run(ctx context.Context, source Source, transformer Transformer, loader Loader) (err error) {
	batch, err := source.Extract(ctx)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	batch, err = transformer.Transform(batch)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	if err := loader.Connect(ctx); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	defer func() {
		cerr := loader.Close(ctx)
		if err == nil && cerr != nil {
			err = fmt.Errorf("load: close connection: %w", cerr)
		}
	}()

	if err := loader.Load(ctx, batch); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	return nil
}
