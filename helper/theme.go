package helper

import "strings"

// MatchThemeByFilename finds the theme whose tab label prefixes the
// lowercased filename (background files are named <theme>-<n>.<ext>).
// Returns false when no theme matches; callers skip the file, never fail.
func MatchThemeByFilename(filename string, tabLabels []string) (string, bool) {
	lower := strings.ToLower(filename)

	best := ""
	for _, label := range tabLabels {
		prefix := strings.ToLower(strings.TrimSpace(label))
		if prefix == "" {
			continue
		}
		if strings.HasPrefix(lower, prefix+"-") || strings.HasPrefix(lower, prefix+"_") {
			// Prefer the longest matching label so "beach-sunset" beats "beach".
			if len(prefix) > len(best) {
				best = label
			}
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
