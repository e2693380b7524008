package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/trainwatch/trainwatch-go/pkg/trainwatch/record"
)

// Emitter receives records in file order.
type Emitter func(record.Record) error

// Run polls t every interval and passes new records to emit until ctx is
// done. Cancellation is not an error: Run returns nil once it notices it,
// at the latest when the current sleep is interrupted.
func Run(ctx context.Context, t *Tailer, clock Clock, interval time.Duration, emit Emitter) error {
	for ctx.Err() == nil {
		records, err := t.Poll()
		if err != nil {
			return err
		}
		for _, rec := range records {
			if err := emit(rec); err != nil {
				return fmt.Errorf("emitting record: %w", err)
			}
		}
		if err := sleep(ctx, clock, interval); err != nil {
			return nil
		}
	}
	return nil
}
