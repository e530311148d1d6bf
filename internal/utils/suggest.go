package utils

// ClosestMatch returns the candidate with the smallest edit distance
// to input, when that distance is within maxDistance. Ties keep the
// earliest candidate.
func ClosestMatch(input string, candidates []string, maxDistance int) (string, bool) {
	best := ""
	bestDist := maxDistance + 1
	for _, c := range candidates {
		if d := ComputeDistance(input, c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, bestDist <= maxDistance
}
