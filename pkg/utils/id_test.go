package utils

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("GenerateRunID returned %q, not a UUID: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("expected version 4 UUID, got version %d", parsed.Version())
	}
}

func TestRunIDConcurrency(t *testing.T) {
	const n = 100
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		ids = make(map[string]bool, n)
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := GenerateRunID()
			mu.Lock()
			ids[id] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(ids) != n {
		t.Errorf("expected %d unique IDs, got %d", n, len(ids))
	}
}
