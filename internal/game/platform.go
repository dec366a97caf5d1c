package game

import (
	"sort"
	"strings"
)

// DistinctPlatforms trims the given platform names, drops the empty ones and merges
// the names differing only by case. Among case variants the ordinally smallest
// spelling is kept. The result is sorted case-insensitively.
func DistinctPlatforms(platforms []string) []string {
	trimmed := make([]string, 0, len(platforms))
	for _, platform := range platforms {
		if t := strings.TrimSpace(platform); t != "" {
			trimmed = append(trimmed, t)
		}
	}
	sort.Strings(trimmed)

	seen := map[string]struct{}{}
	out := make([]string, 0, len(trimmed))
	for _, platform := range trimmed {
		key := strings.ToLower(platform)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, platform)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
