package model

import "strings"

// FilterWindows returns the windows whose title contains query, compared
// case-insensitively after trimming surrounding whitespace from query.
// An empty query matches every window. Windows with an empty title have no
// displayable label and are never returned. Order is preserved and the input
// slice is not modified.
func FilterWindows(windows []Window, query string) []Window {
	q := strings.ToLower(strings.TrimSpace(query))
	result := make([]Window, 0, len(windows))
	for _, w := range windows {
		if w.Title == "" {
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(w.Title), q) {
			result = append(result, w)
		}
	}
	return result
}

// ExcludeTitles drops windows whose title contains any of patterns
// (case-insensitive). Blank patterns are ignored. Used to hide the
// switcher's own window, or terminals running it, from listings.
func ExcludeTitles(windows []Window, patterns []string) []Window {
	var lowered []string
	for _, p := range patterns {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			lowered = append(lowered, p)
		}
	}
	if len(lowered) == 0 {
		return windows
	}

	result := make([]Window, 0, len(windows))
	for _, w := range windows {
		title := strings.ToLower(w.Title)
		excluded := false
		for _, p := range lowered {
			if strings.Contains(title, p) {
				excluded = true
				break
			}
		}
		if !excluded {
			result = append(result, w)
		}
	}
	return result
}
