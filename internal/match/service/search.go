package service

import (
	"context"

	"match-service/internal/match/model"
)

// ProgressFunc receives (done, total) after each query item finishes its
// inner scan.
type ProgressFunc func(done, total int)

// BestMatch is the raw search output for one query item. Target is empty
// when nothing in the pool scored above zero.
type BestMatch struct {
	Target string
	Score  int
}

// FindBestMatches scans the whole pool for every query, in query order.
// The comparison is strict, so on equal scores the earliest pool item wins
// and is never overwritten; a perfect score ends the inner scan early.
//
// The context is checked before each query item's scan, never mid-scan.
// On cancellation the completed prefix is returned together with ctx's
// error, so partial results stay usable.
func FindBestMatches(ctx context.Context, queries, pool []string, alg model.Algorithm, progress ProgressFunc) ([]BestMatch, error) {
	out := make([]BestMatch, 0, len(queries))
	total := len(queries)
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		var best BestMatch
		for _, t := range pool {
			if s := Score(q, t, alg); s > best.Score {
				best = BestMatch{Target: t, Score: s}
				if s == 100 {
					break
				}
			}
		}
		out = append(out, best)
		if progress != nil {
			progress(i+1, total)
		}
	}
	return out, nil
}
