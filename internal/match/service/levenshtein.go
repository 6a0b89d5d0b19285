package service

// weightedDistance computes the edit distance between two rune slices with
// substitutions costing 2 and insertions/deletions costing 1. The double
// substitution weight is what makes two fully different equal-length strings
// score 0 rather than 50 after normalization.
func weightedDistance(a, b []rune) int {
	al, bl := len(a), len(b)
	if al == 0 {
		return bl
	}
	if bl == 0 {
		return al
	}

	prev := make([]int, bl+1)
	cur := make([]int, bl+1)
	for j := 0; j <= bl; j++ {
		prev[j] = j
	}

	for i := 1; i <= al; i++ {
		cur[0] = i
		for j := 1; j <= bl; j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 2
			}
			// insertion / deletion / substitution
			cur[j] = min3(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[bl]
}

func min3(a, b, c int) int { return min(min(a, b), c) }
