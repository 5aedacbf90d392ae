package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/uvw/pkg/style"
	"github.com/arthur-debert/uvw/pkg/types"
)

// RenderEnvironments writes the registry listing in the given format.
// Text output is one "name  path" line per environment with the name
// padded to style.NameWidth.
func RenderEnvironments(w io.Writer, format Format, envs []types.Environment) error {
	if envs == nil {
		envs = []types.Environment{}
	}

	switch format.Resolve(w) {
	case FormatJSON:
		return renderJSON(w, envs)
	case FormatYAML:
		return renderYAML(w, envs)
	case FormatTerminal:
		for _, env := range envs {
			name := style.NameStyle.Width(style.NameWidth).Render(env.Name)
			if _, err := fmt.Fprintf(w, "%s  %s\n", name, style.PathStyle.Render(env.Path)); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, env := range envs {
			if _, err := fmt.Fprintf(w, "%-*s  %s\n", style.NameWidth, env.Name, env.Path); err != nil {
				return err
			}
		}
		return nil
	}
}

// RenderValue writes v as JSON or YAML. Other formats fall back to YAML,
// which reads well on a terminal.
func RenderValue(w io.Writer, format Format, v interface{}) error {
	if format.Resolve(w) == FormatJSON {
		return renderJSON(w, v)
	}
	return renderYAML(w, v)
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
