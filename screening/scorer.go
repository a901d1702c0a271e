package screening

import "math"

// ModuleScore computes the percentage of correct responses, rounded half away
// from zero. Callers guarantee a non-empty response list (no partial modules
// are ever scored).
func ModuleScore(responses []Response) int {
	if len(responses) == 0 {
		return 0
	}
	correct := 0
	for _, r := range responses {
		if r.Correct {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(responses)) * 100))
}

// OverallScore computes the rounded arithmetic mean of the per-module scores.
// Callers guarantee a non-empty result list.
func OverallScore(results []ModuleResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	return int(math.Round(float64(sum) / float64(len(results))))
}
