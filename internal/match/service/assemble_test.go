package service

import (
	"testing"

	"match-service/internal/match/model"
)

func TestAssembleClassification(t *testing.T) {
	matches := []BestMatch{
		{Target: "aaa", Score: 90},
		{Target: "bbb", Score: 80}, // exactly at threshold: Match
		{Target: "ccc", Score: 79},
		{Target: "", Score: 0}, // nothing scored: sentinel
	}
	queries := []string{"q1", "q2", "q3", "q4"}

	rows, sum := Assemble(matches, queries, 80)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	wantStatus := []string{model.StatusMatch, model.StatusMatch, model.StatusNoMatch, model.StatusNoMatch}
	for i, r := range rows {
		if r.Query != queries[i] {
			t.Errorf("row %d: query %q, want %q", i, r.Query, queries[i])
		}
		if r.Status != wantStatus[i] {
			t.Errorf("row %d: status %q, want %q", i, r.Status, wantStatus[i])
		}
	}
	if rows[3].BestMatch != model.NoMatchSentinel {
		t.Errorf("row 3: best match %q, want sentinel", rows[3].BestMatch)
	}

	if sum.Total != 4 || sum.Matches != 2 || sum.NoMatches != 2 {
		t.Errorf("summary counts = %+v, want 4/2/2", sum)
	}
	wantMean := float64(90+80+79+0) / 4
	if sum.MeanScore != wantMean {
		t.Errorf("mean = %v, want %v", sum.MeanScore, wantMean)
	}
}

func TestAssembleThresholdZero(t *testing.T) {
	// score >= threshold governs the status, so at threshold 0 even a
	// zero-score row classifies as a match
	rows, _ := Assemble([]BestMatch{{Target: "", Score: 0}}, []string{"q"}, 0)
	if rows[0].Status != model.StatusMatch {
		t.Errorf("status = %q, want %q", rows[0].Status, model.StatusMatch)
	}
}

func TestAssembleEmpty(t *testing.T) {
	rows, sum := Assemble(nil, nil, 80)
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
	if sum.Total != 0 || sum.Matches != 0 || sum.NoMatches != 0 || sum.MeanScore != 0 {
		t.Errorf("summary of empty run = %+v, want zeros", sum)
	}
}
