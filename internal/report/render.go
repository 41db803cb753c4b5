package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by WriteScenario.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// WriteScenario encodes v, normally an assembled scenario, in the given
// format.
func WriteScenario(w io.Writer, v any, format string) error {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		return WriteJSON(w, v)
	default:
		return fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
