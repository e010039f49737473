package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/wppkg/internal/config"
	"github.com/vvka-141/wppkg/internal/tui"
)

// outputFlags are the --json/--yaml switches shared by commands that print
// a record.
type outputFlags struct {
	json bool
	yaml bool
}

// override returns the output format forced by flags, or nil.
func (f outputFlags) override() (*string, error) {
	switch {
	case f.json && f.yaml:
		return nil, fmt.Errorf("invalid argument: --json and --yaml are mutually exclusive")
	case f.json:
		s := config.OutputJSON
		return &s, nil
	case f.yaml:
		s := config.OutputYAML
		return &s, nil
	}
	return nil, nil
}

// writeRecord prints v in the requested format. text renders the
// human-readable form for the given tui mode.
func writeRecord(w io.Writer, format string, v any, text func(tui.Mode) string) error {
	switch format {
	case config.OutputJSON:
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonBytes))
		return err

	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()

	default:
		_, err := fmt.Fprint(w, text(tui.DetectMode(w)))
		return err
	}
}
