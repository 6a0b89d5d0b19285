package service

import "match-service/internal/match/model"

// Assemble classifies the search output against the threshold and derives
// the run summary. Match iff score >= threshold. The mean score of an empty
// run is defined as 0.
func Assemble(matches []BestMatch, queries []string, threshold int) ([]model.MatchResult, model.Summary) {
	rows := make([]model.MatchResult, 0, len(matches))
	sum := 0
	matched := 0
	for i, m := range matches {
		best := m.Target
		if best == "" {
			best = model.NoMatchSentinel
		}
		status := model.StatusNoMatch
		if m.Score >= threshold {
			status = model.StatusMatch
			matched++
		}
		rows = append(rows, model.MatchResult{
			Query:     queries[i],
			BestMatch: best,
			Score:     m.Score,
			Status:    status,
		})
		sum += m.Score
	}

	s := model.Summary{Total: len(rows), Matches: matched, NoMatches: len(rows) - matched}
	if len(rows) > 0 {
		s.MeanScore = float64(sum) / float64(len(rows))
	}
	return rows, s
}
