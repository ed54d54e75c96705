package state

import (
	"path/filepath"
	"testing"

	"github.com/jmcardle/pickwheel/internal/engine"
	_ "modernc.org/sqlite"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetContext(t *testing.T) {
	s := tempDB(t)

	ctx, err := s.CreateContext("wallpapers", engine.StrategyShuffle, "seed-1", true)
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	if ctx.ContextID == "" {
		t.Fatal("expected non-empty context ID")
	}
	if ctx.Previous != engine.PrevNone {
		t.Fatalf("expected no previous pick, got %d", ctx.Previous)
	}

	got, err := s.GetContext(ctx.ContextID)
	if err != nil {
		t.Fatalf("GetContext: %v", err)
	}
	if got.Name != "wallpapers" || got.Strategy != engine.StrategyShuffle {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.Seed != "seed-1" || !got.AvoidRepeat {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if len(got.Shuffle.Queue) != 0 || got.Shuffle.Signature != "" {
		t.Fatalf("fresh context should have empty shuffle state: %+v", got.Shuffle)
	}
}

func TestGetContextByName(t *testing.T) {
	s := tempDB(t)
	created, err := s.CreateContext("quotes", engine.StrategyUniform, "", false)
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}

	got, err := s.GetContextByName("quotes")
	if err != nil {
		t.Fatalf("GetContextByName: %v", err)
	}
	if got.ContextID != created.ContextID {
		t.Fatalf("expected %s, got %s", created.ContextID, got.ContextID)
	}
	if got.Seed != "" {
		t.Fatalf("expected empty seed, got %q", got.Seed)
	}
}

func TestDuplicateNameRejected(t *testing.T) {
	s := tempDB(t)
	if _, err := s.CreateContext("dup", engine.StrategyUniform, "", false); err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	if _, err := s.CreateContext("dup", engine.StrategyUniform, "", false); err == nil {
		t.Fatal("expected unique-name violation")
	}
}

func TestSaveContextRoundTripsShuffleState(t *testing.T) {
	s := tempDB(t)
	ctx, err := s.CreateContext("bag", engine.StrategyShuffle, "s", true)
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}

	ctx.Previous = 4
	ctx.Shuffle = engine.ShuffleState{Queue: []int{2, 0, 3}, Signature: "pool-v3"}
	if err := s.SaveContext(ctx); err != nil {
		t.Fatalf("SaveContext: %v", err)
	}

	got, err := s.GetContext(ctx.ContextID)
	if err != nil {
		t.Fatalf("GetContext: %v", err)
	}
	if got.Previous != 4 {
		t.Fatalf("expected previous 4, got %d", got.Previous)
	}
	if got.Shuffle.Signature != "pool-v3" {
		t.Fatalf("expected signature pool-v3, got %q", got.Shuffle.Signature)
	}
	if len(got.Shuffle.Queue) != 3 || got.Shuffle.Queue[0] != 2 || got.Shuffle.Queue[2] != 3 {
		t.Fatalf("queue round-trip mismatch: %v", got.Shuffle.Queue)
	}
}

func TestSaveContextUnknownID(t *testing.T) {
	s := tempDB(t)
	err := s.SaveContext(Context{ContextID: "missing"})
	if err == nil {
		t.Fatal("expected error for unknown context")
	}
}

func TestResetContext(t *testing.T) {
	s := tempDB(t)
	ctx, _ := s.CreateContext("reset-me", engine.StrategyShuffle, "", true)
	ctx.Previous = 2
	ctx.Shuffle = engine.ShuffleState{Queue: []int{1, 0}, Signature: "sig"}
	if err := s.SaveContext(ctx); err != nil {
		t.Fatalf("SaveContext: %v", err)
	}

	if err := s.ResetContext(ctx.ContextID); err != nil {
		t.Fatalf("ResetContext: %v", err)
	}
	got, _ := s.GetContext(ctx.ContextID)
	if got.Previous != engine.PrevNone {
		t.Fatalf("expected previous cleared, got %d", got.Previous)
	}
	if len(got.Shuffle.Queue) != 0 || got.Shuffle.Signature != "" {
		t.Fatalf("expected shuffle state cleared, got %+v", got.Shuffle)
	}

	if err := s.ResetContext("missing"); err == nil {
		t.Fatal("expected error for unknown context")
	}
}

func TestListContexts(t *testing.T) {
	s := tempDB(t)
	s.CreateContext("a", engine.StrategyUniform, "", false)
	s.CreateContext("b", engine.StrategyWeighted, "", false)

	contexts, err := s.ListContexts(10)
	if err != nil {
		t.Fatalf("ListContexts: %v", err)
	}
	if len(contexts) != 2 {
		t.Fatalf("expected 2 contexts, got %d", len(contexts))
	}
}

func TestPickCounts(t *testing.T) {
	s := tempDB(t)
	ctx, _ := s.CreateContext("counted", engine.StrategyUniform, "", false)

	for _, idx := range []int{0, 1, 1, 2, 1} {
		_, err := s.db.Exec(
			`INSERT INTO pick_log (context_id, pick_index, total, strategy, eligible_count, created_at)
			 VALUES (?, ?, 3, 'uniform', 3, '2026-01-01T00:00:00Z')`,
			ctx.ContextID, idx,
		)
		if err != nil {
			t.Fatalf("insert pick: %v", err)
		}
	}

	counts, err := s.PickCounts(ctx.ContextID)
	if err != nil {
		t.Fatalf("PickCounts: %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("expected 3 distinct indices, got %v", counts)
	}
	if counts[1].Index != 1 || counts[1].Count != 3 {
		t.Fatalf("expected index 1 count 3, got %+v", counts[1])
	}
}
