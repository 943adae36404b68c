// SPDX-License-Identifier: MPL-2.0

package argerr

import "github.com/agnivade/levenshtein"

// Suggest returns the candidate closest to input when it is near enough to be a
// plausible typo, or "" otherwise. Ties resolve to the earliest candidate.
func Suggest(input string, candidates []string) string {
	if input == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, c := range candidates {
		if c == "" || c == input {
			continue
		}
		d := levenshtein.ComputeDistance(input, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	// Allow roughly one edit per three characters, and at least one.
	limit := max(1, len([]rune(input))/3)
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}
