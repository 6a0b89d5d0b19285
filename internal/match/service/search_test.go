package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"match-service/internal/match/model"
)

func TestFindBestMatchesAlignment(t *testing.T) {
	queries := []string{"alpha", "beta", "gamma"}
	pool := []string{"alpha", "delta"}

	got, err := FindBestMatches(context.Background(), queries, pool, model.Ratio, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(queries) {
		t.Fatalf("got %d results for %d queries", len(got), len(queries))
	}
	if got[0].Target != "alpha" || got[0].Score != 100 {
		t.Errorf("queries[0]: got (%q, %d), want (alpha, 100)", got[0].Target, got[0].Score)
	}
}

func TestFindBestMatchesEmptyPool(t *testing.T) {
	queries := []string{"a", "b"}
	got, err := FindBestMatches(context.Background(), queries, nil, model.Ratio, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	for i, m := range got {
		if m.Target != "" || m.Score != 0 {
			t.Errorf("result %d: got (%q, %d), want empty target and 0", i, m.Target, m.Score)
		}
	}
}

func TestFindBestMatchesTieBreak(t *testing.T) {
	// "abc" and "abd" both score 80 against "ab"; the earlier pool item must
	// win, reproducibly.
	for i := 0; i < 50; i++ {
		got, err := FindBestMatches(context.Background(), []string{"ab"}, []string{"abc", "abd"}, model.Ratio, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got[0].Target != "abc" {
			t.Fatalf("tie broken to %q, want abc", got[0].Target)
		}
	}

	got, _ := FindBestMatches(context.Background(), []string{"ab"}, []string{"abd", "abc"}, model.Ratio, nil)
	if got[0].Target != "abd" {
		t.Fatalf("reversed pool: tie broken to %q, want abd", got[0].Target)
	}
}

func TestFindBestMatchesNothingScores(t *testing.T) {
	got, err := FindBestMatches(context.Background(), []string{"xyz"}, []string{"q"}, model.Ratio, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Target != "" || got[0].Score != 0 {
		t.Errorf("got (%q, %d), want no target", got[0].Target, got[0].Score)
	}
}

func TestFindBestMatchesProgress(t *testing.T) {
	var calls [][2]int
	progress := func(done, total int) { calls = append(calls, [2]int{done, total}) }

	_, err := FindBestMatches(context.Background(), []string{"a", "b", "c"}, []string{"a"}, model.Ratio, progress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][2]int{{1, 3}, {2, 3}, {3, 3}}
	if len(calls) != len(want) {
		t.Fatalf("progress called %d times, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("progress call %d: got %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestFindBestMatchesCancellation(t *testing.T) {
	queries := make([]string, 1000)
	for i := range queries {
		queries[i] = fmt.Sprintf("query item %d", i)
	}
	pool := make([]string, 100)
	for i := range pool {
		pool[i] = fmt.Sprintf("pool item %d", i)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	progress := func(done, total int) {
		if done == 10 {
			cancel()
		}
	}

	got, err := FindBestMatches(ctx, queries, pool, model.TokenSortRatio, progress)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d results after cancel, want exactly 10", len(got))
	}
}
