package model

import (
	"reflect"
	"strings"
	"testing"
)

func scenarioWindows() []Window {
	return []Window{
		{Title: "Notepad", Handle: 1, Exe: `C:\Windows\notepad.exe`},
		{Title: "", Handle: 2},
		{Title: "Visual Studio Code", Handle: 3, Exe: "/usr/share/code/code"},
	}
}

func titlesOf(windows []Window) []string {
	titles := make([]string, len(windows))
	for i, w := range windows {
		titles[i] = w.Title
	}
	return titles
}

func TestFilterWindows_Scenario(t *testing.T) {
	windows := scenarioWindows()

	got := titlesOf(FilterWindows(windows, "code"))
	if want := []string{"Visual Studio Code"}; !reflect.DeepEqual(got, want) {
		t.Errorf("filter %q = %v, want %v", "code", got, want)
	}

	got = titlesOf(FilterWindows(windows, ""))
	if want := []string{"Notepad", "Visual Studio Code"}; !reflect.DeepEqual(got, want) {
		t.Errorf("filter empty = %v, want %v", got, want)
	}
}

func TestFilterWindows_EmptyQueryIdempotent(t *testing.T) {
	windows := scenarioWindows()
	once := FilterWindows(windows, "")
	twice := FilterWindows(once, "")
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filtering twice changed result: %v vs %v", once, twice)
	}
}

func TestFilterWindows_WhitespaceQueryIsEmpty(t *testing.T) {
	windows := scenarioWindows()
	if got, want := FilterWindows(windows, "   \t"), FilterWindows(windows, ""); !reflect.DeepEqual(got, want) {
		t.Errorf("whitespace query = %v, want %v", got, want)
	}
}

func TestFilterWindows_TrimsQuery(t *testing.T) {
	got := titlesOf(FilterWindows(scenarioWindows(), "  notepad "))
	if want := []string{"Notepad"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilterWindows_CaseInsensitive(t *testing.T) {
	windows := []Window{
		{Title: "ABC editor", Handle: 1},
		{Title: "abc viewer", Handle: 2},
		{Title: "xyz", Handle: 3},
		{Title: "", Handle: 4},
	}
	upper := FilterWindows(windows, "ABC")
	lower := FilterWindows(windows, "abc")
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("case mismatch: %v vs %v", upper, lower)
	}
	if len(upper) != 2 {
		t.Errorf("expected 2 matches, got %d", len(upper))
	}
}

func TestFilterWindows_SubstringLaw(t *testing.T) {
	windows := []Window{
		{Title: "Inbox - Mail", Handle: 1},
		{Title: "", Handle: 2},
		{Title: "mailbox settings", Handle: 3},
		{Title: "Terminal", Handle: 4},
		{Title: "Maildir sync", Handle: 5},
		{Title: "   ", Handle: 6},
	}
	queries := []string{"", "mail", "MAIL", "box", "x", "terminal", "nothing", " "}

	for _, q := range queries {
		got := FilterWindows(windows, q)
		ql := strings.ToLower(strings.TrimSpace(q))

		inResult := make(map[Handle]bool)
		for _, w := range got {
			inResult[w.Handle] = true
			if w.Title == "" {
				t.Errorf("query %q: result contains empty title (handle %s)", q, w.Handle)
			}
			if !strings.Contains(strings.ToLower(w.Title), ql) {
				t.Errorf("query %q: %q does not contain query", q, w.Title)
			}
		}
		for _, w := range windows {
			want := w.Title != "" && strings.Contains(strings.ToLower(w.Title), ql)
			if want != inResult[w.Handle] {
				t.Errorf("query %q: handle %s membership = %v, want %v", q, w.Handle, inResult[w.Handle], want)
			}
		}
	}
}

func TestFilterWindows_PreservesOrder(t *testing.T) {
	windows := []Window{
		{Title: "b term", Handle: 10},
		{Title: "a term", Handle: 5},
		{Title: "c term", Handle: 7},
	}
	got := FilterWindows(windows, "term")
	for i := range windows {
		if got[i].Handle != windows[i].Handle {
			t.Fatalf("order changed: got %v", got)
		}
	}
}

func TestFilterWindows_NilInput(t *testing.T) {
	got := FilterWindows(nil, "x")
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestExcludeTitles(t *testing.T) {
	windows := []Window{
		{Title: "winswitch - Terminal", Handle: 1},
		{Title: "Firefox", Handle: 2},
		{Title: "", Handle: 3},
	}
	tests := []struct {
		name     string
		patterns []string
		want     []Handle
	}{
		{"no patterns", nil, []Handle{1, 2, 3}},
		{"blank pattern ignored", []string{"  "}, []Handle{1, 2, 3}},
		{"case insensitive", []string{"WINSWITCH"}, []Handle{2, 3}},
		{"several", []string{"fire", "switch"}, []Handle{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExcludeTitles(windows, tt.patterns)
			var handles []Handle
			for _, w := range got {
				handles = append(handles, w.Handle)
			}
			if !reflect.DeepEqual(handles, tt.want) {
				t.Errorf("got %v, want %v", handles, tt.want)
			}
		})
	}
}
