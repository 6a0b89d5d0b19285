package service

import (
	"context"
	"strings"

	"match-service/internal/match/model"
)

// PrepareQueries drops blank and whitespace-only values, preserving order
// and duplicates.
func PrepareQueries(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// PreparePool drops blanks and duplicates, keeping first-occurrence order so
// tie-breaking is reproducible run to run.
func PreparePool(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Run validates the configuration, prepares both columns, and executes the
// full match. Configuration errors fail before anything is scanned.
//
// On cancellation the returned Result holds the completed prefix with
// Complete=false, and the context's error is returned alongside it so the
// caller can tell a partial run from a finished one.
func Run(ctx context.Context, mainCol, targetCol []string, opts model.Options, progress ProgressFunc) (model.Result, error) {
	if err := opts.Validate(); err != nil {
		return model.Result{}, err
	}

	queries := PrepareQueries(mainCol)
	pool := PreparePool(targetCol)

	matches, err := FindBestMatches(ctx, queries, pool, opts.Algorithm, progress)
	rows, summary := Assemble(matches, queries[:len(matches)], opts.Threshold)

	return model.Result{
		Rows:     rows,
		Summary:  summary,
		Complete: err == nil,
		Opts:     opts,
	}, err
}
