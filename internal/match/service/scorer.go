package service

import (
	"math"
	"sort"
	"strings"

	"match-service/internal/match/model"
)

// normalize lowercases, trims, and collapses runs of whitespace so all four
// scorers see the same form of the input and threshold semantics stay stable
// across algorithms.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Score compares a and b under the given algorithm and returns an integer
// similarity in [0,100]. If either side normalizes to empty the score is 0,
// except two empties, which compare equal at 100.
func Score(a, b string, alg model.Algorithm) int {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		if a == b {
			return 100
		}
		return 0
	}
	switch alg {
	case model.PartialRatio:
		return partialRatio(a, b)
	case model.TokenSortRatio:
		return ratio(tokenSort(a), tokenSort(b))
	case model.TokenSetRatio:
		return tokenSetRatio(a, b)
	default:
		return ratio(a, b)
	}
}

// ratio is the weighted-Levenshtein similarity:
// 100 * (1 - distance/(len(a)+len(b))), halves rounded away from zero.
func ratio(a, b string) int {
	if a == "" && b == "" {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	d := weightedDistance(ra, rb)
	s := int(math.Round(100 * float64(total-d) / float64(total)))
	if s < 0 {
		s = 0
	}
	return s
}

// partialRatio slides a window the length of the shorter string across the
// longer one and keeps the best window ratio. Every offset is tried, so a
// near-substring scores high regardless of the length disparity.
func partialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	best := 0
	for off := 0; off+len(shorter) <= len(longer); off++ {
		s := ratio(string(shorter), string(longer[off:off+len(shorter)]))
		if s > best {
			best = s
			if best == 100 {
				break
			}
		}
	}
	return best
}

// tokenSort rejoins the whitespace tokens in alphabetical order, which
// cancels word-order differences before the edit distance runs.
func tokenSort(s string) string {
	f := strings.Fields(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}

// tokenSetRatio compares the sorted token intersection against the
// intersection extended with each side's leftover tokens, and takes the best
// pairwise ratio. Tolerates both reordering and extra/missing words.
func tokenSetRatio(a, b string) int {
	ta, tb := tokenSet(a), tokenSet(b)

	var inter, diffA, diffB []string
	for t := range ta {
		if _, ok := tb[t]; ok {
			inter = append(inter, t)
		} else {
			diffA = append(diffA, t)
		}
	}
	for t := range tb {
		if _, ok := ta[t]; !ok {
			diffB = append(diffB, t)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	base := strings.Join(inter, " ")
	combA := strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	combB := strings.TrimSpace(base + " " + strings.Join(diffB, " "))

	best := ratio(base, combA)
	if s := ratio(base, combB); s > best {
		best = s
	}
	if s := ratio(combA, combB); s > best {
		best = s
	}
	return best
}

func tokenSet(s string) map[string]struct{} {
	m := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		m[t] = struct{}{}
	}
	return m
}
