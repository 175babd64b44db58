package game

import "testing"

func TestScoreBoardAddAndReset(t *testing.T) {
	sb := NewScoreBoard()
	if sb.Score() != 0 {
		t.Fatalf("initial score = %d, want 0", sb.Score())
	}

	sb.Add(1)
	sb.Add(2)
	if sb.Score() != 3 {
		t.Errorf("score = %d, want 3", sb.Score())
	}

	sb.Reset()
	if sb.Score() != 0 {
		t.Errorf("score after Reset = %d, want 0", sb.Score())
	}
}

func TestScoreBoardHistoryOrder(t *testing.T) {
	sb := NewScoreBoard()
	sb.Record("Player", 7)
	sb.Record("Player", 2)
	sb.Record("Player", 11)

	got := sb.HighScores()
	want := []uint32{7, 2, 11}
	if len(got) != len(want) {
		t.Fatalf("history length = %d, want %d", len(got), len(want))
	}
	for i, s := range want {
		if got[i].Score != s || got[i].Label != "Player" {
			t.Errorf("entry %d = %+v, want {Player %d}", i, got[i], s)
		}
	}

	// 返回的是副本，修改不影响记分板
	got[0].Score = 999
	if sb.HighScores()[0].Score != 7 {
		t.Error("HighScores() should return a copy")
	}
}

func TestScoreBoardBest(t *testing.T) {
	sb := NewScoreBoard()
	if _, ok := sb.Best(); ok {
		t.Error("Best() should report false on empty history")
	}

	sb.Record("A", 3)
	sb.Record("B", 9)
	sb.Record("C", 9)
	best, ok := sb.Best()
	if !ok || best.Label != "B" || best.Score != 9 {
		t.Errorf("Best() = %+v, %v; want {B 9}, true", best, ok)
	}
}
