package match

// SuggestThreshold is the minimal similarity for a declared name to be suggested.
const SuggestThreshold = 0.6

// Levenshtein computes the edit distance between two strings, counted in runes.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// keep the shorter string in ra so the rows stay small
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns 1 for identifiers that normalize equally, falling towards 0
// as the edit distance between their normalized forms grows.
func Similarity(a, b string) float64 {
	na, nb := []rune(NormalizeIdent(a)), []rune(NormalizeIdent(b))
	if len(na) == 0 && len(nb) == 0 {
		return 1
	}

	distance := Levenshtein(string(na), string(nb))

	return 1 - float64(distance)/float64(max(len(na), len(nb)))
}

// Suggest returns the candidate most similar to name. Ties keep the earlier candidate.
// ok is false when no candidate reaches SuggestThreshold.
func Suggest(name string, candidates []string) (best string, ok bool) {
	bestScore := SuggestThreshold

	for _, candidate := range candidates {
		score := Similarity(name, candidate)
		if score > bestScore || (score == bestScore && !ok) {
			best, bestScore, ok = candidate, score, true
		}
	}

	return best, ok
}
