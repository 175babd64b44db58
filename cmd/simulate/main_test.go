package main

import (
	"testing"

	"github.com/decker502/stardodge/pkg/config"
)

func TestRunRounds(t *testing.T) {
	results, err := run(config.DefaultGameConfig(), 42, 3, 600, 1.0/60)
	if err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, r := range results {
		if r.seconds > 10.0001 {
			t.Errorf("round %d lasted %.2fs, more than the tick limit", i, r.seconds)
		}
	}
}
