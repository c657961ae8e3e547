package model

import "strings"

// Snapshot is a point-in-time listing of open windows. It is built once per
// refresh and never updated afterwards; a new refresh produces a new Snapshot.
type Snapshot struct {
	TS       int64    `yaml:"ts"                 json:"ts"`
	Degraded int      `yaml:"degraded,omitempty" json:"degraded,omitempty"`
	Windows  []Window `yaml:"windows"            json:"windows"`
}

// NewSnapshot assembles a snapshot from windows in enumeration order.
// Repeated handles are collapsed (first occurrence wins) so that handles are
// unique within a snapshot. Degraded counts records without an executable.
func NewSnapshot(ts int64, windows []Window) *Snapshot {
	seen := make(map[Handle]bool, len(windows))
	kept := make([]Window, 0, len(windows))
	degraded := 0
	for _, w := range windows {
		if seen[w.Handle] {
			continue
		}
		seen[w.Handle] = true
		if !w.HasExe() {
			degraded++
		}
		kept = append(kept, w)
	}
	return &Snapshot{TS: ts, Degraded: degraded, Windows: kept}
}

// Len returns the number of records, including untitled ones.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Windows)
}

// Filter returns the titled records matching query. See FilterWindows.
func (s *Snapshot) Filter(query string) []Window {
	if s == nil {
		return []Window{}
	}
	return FilterWindows(s.Windows, query)
}

// Titles returns the trimmed titles of all records with a non-blank title.
func (s *Snapshot) Titles() []string {
	titles := []string{}
	if s == nil {
		return titles
	}
	for _, w := range s.Windows {
		if t := strings.TrimSpace(w.Title); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

// Lookup finds the record with the given handle.
func (s *Snapshot) Lookup(h Handle) (Window, bool) {
	if s == nil {
		return Window{}, false
	}
	for _, w := range s.Windows {
		if w.Handle == h {
			return w, true
		}
	}
	return Window{}, false
}
