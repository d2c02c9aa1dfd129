package sequence

import (
	"context"
	"fmt"
)

// Counter hands out per-partition sequence numbers starting at 1.
// It is not safe for concurrent use.
type Counter struct {
	last map[string]int64
}

func NewCounter() *Counter {
	return &Counter{last: make(map[string]int64)}
}

// NextSequence increments and returns the next sequence for a partition.
func (c *Counter) NextSequence(ctx context.Context, partitionKey string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	c.last[partitionKey]++
	return c.last[partitionKey], nil
}

// Last returns the most recently issued sequence, 0 if none.
func (c *Counter) Last(partitionKey string) int64 {
	return c.last[partitionKey]
}
