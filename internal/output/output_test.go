package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mj1618/winswitch/internal/model"
	"gopkg.in/yaml.v3"
)

func capture(t *testing.T, format Format, pretty bool, v interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldFormat, oldPretty := Stdout, OutputFormat, PrettyOutput
	Stdout, OutputFormat, PrettyOutput = &buf, format, pretty
	defer func() { Stdout, OutputFormat, PrettyOutput = oldOut, oldFormat, oldPretty }()

	if err := Print(v); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func sampleResult() ListResult {
	snap := model.NewSnapshot(1707500000, []model.Window{
		{Title: "Notepad", Handle: 0x1a, Exe: "/usr/bin/notepad"},
		{Title: "", Handle: 0x1b},
		{Title: "Terminal <root>", Handle: 0x1c, Exe: "/usr/bin/xterm"},
	})
	return NewListResult(snap, "", snap.Filter(""))
}

func TestPrintYAML(t *testing.T) {
	out := capture(t, FormatYAML, false, sampleResult())

	if strings.Count(out, "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded ListResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.TS != 1707500000 {
		t.Errorf("ts: got %d", decoded.TS)
	}
	if decoded.Total != 3 || decoded.Degraded != 1 {
		t.Errorf("total/degraded: got %d/%d, want 3/1", decoded.Total, decoded.Degraded)
	}
	if len(decoded.Windows) != 2 || decoded.Windows[0].Handle != 0x1a {
		t.Errorf("windows: got %+v", decoded.Windows)
	}
}

func TestPrintJSON(t *testing.T) {
	out := capture(t, FormatJSON, false, sampleResult())

	if strings.Count(out, "\n") != 1 {
		t.Errorf("compact JSON should be a single line, got:\n%s", out)
	}
	if !strings.Contains(out, "Terminal <root>") {
		t.Errorf("HTML characters should not be escaped: %s", out)
	}
	var decoded ListResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Windows) != 2 {
		t.Errorf("windows: got %d, want 2", len(decoded.Windows))
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	out := capture(t, FormatJSON, true, sampleResult())
	if !strings.Contains(out, "\n  \"ts\"") {
		t.Errorf("pretty JSON should be indented, got:\n%s", out)
	}
}

func TestPrint_UnsupportedFormat(t *testing.T) {
	old := OutputFormat
	OutputFormat = "toml"
	defer func() { OutputFormat = old }()

	if err := Print(sampleResult()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"yaml", FormatYAML, false},
		{"JSON", FormatJSON, false},
		{" json ", FormatJSON, false},
		{"", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListResult_OmitEmpty(t *testing.T) {
	res := NewListResult(nil, "", nil)
	data, err := yaml.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["query"]; ok {
		t.Error("empty query should be omitted")
	}
	if _, ok := m["degraded"]; ok {
		t.Error("zero degraded should be omitted")
	}
	if _, ok := m["windows"]; !ok {
		t.Error("windows should always be present")
	}
	if res.Windows == nil {
		t.Error("windows should be an empty slice, not nil")
	}
}

func TestActivateResult_Exe(t *testing.T) {
	res := ActivateResult{OK: true, Action: "activate", Window: model.Window{Title: "x", Handle: 7}}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "exe") {
		t.Errorf("absent exe should be omitted: %s", data)
	}
}
