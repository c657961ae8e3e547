package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mj1618/winswitch/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Stdout is where Print writes.
var Stdout io.Writer = os.Stdout

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (want yaml or json)", s)
	}
}

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	TS       int64          `yaml:"ts"                 json:"ts"`
	Query    string         `yaml:"query,omitempty"    json:"query,omitempty"`
	Total    int            `yaml:"total"              json:"total"`
	Degraded int            `yaml:"degraded,omitempty" json:"degraded,omitempty"`
	Windows  []model.Window `yaml:"windows"            json:"windows"`
}

// NewListResult reports the windows shown for query out of snap.
func NewListResult(snap *model.Snapshot, query string, windows []model.Window) ListResult {
	res := ListResult{Query: query, Windows: windows}
	if snap != nil {
		res.TS = snap.TS
		res.Total = snap.Len()
		res.Degraded = snap.Degraded
	}
	if res.Windows == nil {
		res.Windows = []model.Window{}
	}
	return res
}

// ActivateResult is the output of `activate` and `switch`.
type ActivateResult struct {
	OK     bool         `yaml:"ok"     json:"ok"`
	Action string       `yaml:"action" json:"action"`
	Window model.Window `yaml:"window" json:"window"`
}

// Print serializes v to Stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to Stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to Stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to Stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
