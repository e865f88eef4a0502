package curve

import "strings"

// CommonBaseName returns the substring that occurs most often as the
// longest common substring of name pairs, trimmed of separator
// characters. Callers use it to label curves derived from a group
// (mean, median, fences) with a representative base name.
//
// Returns "" for fewer than two names or when the names share nothing.
func CommonBaseName(names []string) string {
	if len(names) < 2 {
		if len(names) == 1 {
			return strings.Trim(names[0], " -")
		}
		return ""
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(names))
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			m := longestCommonSubstring(names[i], names[j])
			if _, seen := counts[m]; !seen {
				order = append(order, m)
			}
			counts[m]++
		}
	}

	// Highest count wins; ties broken by length, then first appearance,
	// so the result does not depend on map iteration order.
	best := ""
	bestCount := -1
	for _, s := range order {
		n := counts[s]
		if n > bestCount || (n == bestCount && len(s) > len(best)) {
			best = s
			bestCount = n
		}
	}
	return strings.Trim(best, " -")
}

func longestCommonSubstring(a, b string) string {
	if len(a) == 0 || len(b) == 0 {
		return ""
	}
	// Rolling single-row DP over byte positions.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	bestLen, bestEnd := 0, 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > bestLen {
					bestLen = cur[j]
					bestEnd = i
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
		for j := range cur {
			cur[j] = 0
		}
	}
	return a[bestEnd-bestLen : bestEnd]
}
