package cli

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// styled reports whether w is a terminal and may get escape sequences.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func formatBold(s string) string {
	if !styled(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting registers the functions the usage template uses.
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": func(s string) string { return formatBold(strings.ToUpper(s)) },
	})
}
