package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs returns a generator producing prefix-1, prefix-2, ...
// for deterministic result record IDs.
func SequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	next := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		next++
		return fmt.Sprintf("%s-%d", prefix, next)
	}
}
