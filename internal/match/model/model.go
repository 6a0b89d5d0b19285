package model

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm selects which similarity scorer a run uses. Fixed for the whole run.
type Algorithm int

const (
	Ratio Algorithm = iota
	PartialRatio
	TokenSortRatio
	TokenSetRatio
)

var algorithmNames = map[Algorithm]string{
	Ratio:          "ratio",
	PartialRatio:   "partial_ratio",
	TokenSortRatio: "token_sort_ratio",
	TokenSetRatio:  "token_set_ratio",
}

func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlgorithm accepts the canonical snake_case names as well as the
// form labels ("Ratio", "Partial Ratio", ...), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(s, "_", " "))), " ")
	switch key {
	case "ratio":
		return Ratio, nil
	case "partial ratio":
		return PartialRatio, nil
	case "token sort ratio":
		return TokenSortRatio, nil
	case "token set ratio":
		return TokenSetRatio, nil
	default:
		return Ratio, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrThresholdRange   = errors.New("threshold must be within [0,100]")
)

// Options is the run-scoped configuration.
type Options struct {
	Algorithm Algorithm `json:"algorithm"`
	Threshold int       `json:"threshold"`
}

// Validate fails fast, before any scan begins.
func (o Options) Validate() error {
	if o.Threshold < 0 || o.Threshold > 100 {
		return fmt.Errorf("%w: %d", ErrThresholdRange, o.Threshold)
	}
	if _, ok := algorithmNames[o.Algorithm]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(o.Algorithm))
	}
	return nil
}

// NoMatchSentinel is reported as the best match when nothing in the pool
// scored above zero (or the pool was empty).
const NoMatchSentinel = "No match found"

const (
	StatusMatch   = "Match"
	StatusNoMatch = "No Match"
)

// MatchResult is one classified row, aligned 1:1 with the query sequence.
type MatchResult struct {
	Query     string `json:"query"`
	BestMatch string `json:"bestMatch"`
	Score     int    `json:"score"`
	Status    string `json:"status"`
}

// Summary aggregates a finished (or canceled) run.
type Summary struct {
	Total     int     `json:"total"`
	Matches   int     `json:"matches"`
	NoMatches int     `json:"noMatches"`
	MeanScore float64 `json:"meanScore"`
}

type Result struct {
	Rows    []MatchResult `json:"rows"`
	Summary Summary       `json:"summary"`
	// Complete is false when the run was canceled; Rows then hold the
	// prefix of the query sequence that finished before cancellation.
	Complete bool    `json:"complete"`
	Opts     Options `json:"opts"`
}
