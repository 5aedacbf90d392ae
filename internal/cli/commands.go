package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/uvw/pkg/commands"
	"github.com/arthur-debert/uvw/pkg/config"
	"github.com/arthur-debert/uvw/pkg/paths"
	"github.com/arthur-debert/uvw/pkg/shell"
	"github.com/arthur-debert/uvw/pkg/style"
	"github.com/arthur-debert/uvw/pkg/ui"
)

func (a *app) newLinkCmd() *cobra.Command {
	var (
		parents   []string
		linkNames []string
	)

	cmd := &cobra.Command{
		Use:     "link [paths...]",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: "registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(parents) == 0 {
				return cmd.Help()
			}

			result, err := commands.Link(commands.LinkOptions{
				Registry:  a.reg,
				Paths:     args,
				Parents:   parents,
				Names:     linkNames,
				Resolve:   a.cfg.Link.Resolve,
				DryRun:    a.dryRun,
				Yes:       a.yes,
				Confirmer: a.confirmer(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Linked) == 0 && len(result.Skipped) == 0 {
				_, _ = fmt.Fprintln(out, MsgNothingToLink)
			}
			for _, env := range result.Linked {
				_, _ = fmt.Fprintf(out, MsgLinkedItem, indicator(out, a.doneMark()), env.Link, env.Target)
			}
			for _, env := range result.Skipped {
				_, _ = fmt.Fprintf(out, MsgSkippedItem, indicator(out, markKept), env.Link)
			}
			printDryRun(out, a.dryRun)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&parents, "parent", nil, MsgFlagParent)
	cmd.Flags().StringArrayVar(&linkNames, "link-name", nil, MsgFlagLinkName)
	_ = cmd.MarkFlagDirname("parent")

	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			envs, err := commands.List(commands.ListOptions{Registry: a.reg})
			if err != nil {
				return err
			}
			return ui.RenderEnvironments(cmd.OutOrStdout(), f, envs)
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

func (a *app) newCleanCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "clean",
		Short:   MsgCleanShort,
		GroupID: "registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			removed, err := commands.Clean(commands.CleanOptions{
				Registry:  a.reg,
				DryRun:    a.dryRun,
				Yes:       a.yes,
				Confirmer: a.confirmer(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f := f.Resolve(out); f == ui.FormatJSON || f == ui.FormatYAML {
				return ui.RenderValue(out, f, removed)
			}
			if len(removed) == 0 {
				_, _ = fmt.Fprintln(out, MsgNoBrokenLinks)
				return nil
			}
			for _, b := range removed {
				_, _ = fmt.Fprintf(out, MsgRemovedItem, indicator(out, a.doneMark()), b.Link, b.Target)
			}
			printDryRun(out, a.dryRun)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)

	return cmd
}

// selectFlags adds -n/--name and -p/--path to cmd.
func (a *app) selectFlags(cmd *cobra.Command, sel *commands.SelectOptions) {
	cmd.Flags().StringVarP(&sel.Name, "name", "n", "", MsgFlagName)
	cmd.Flags().StringVarP(&sel.Path, "path", "p", "", MsgFlagPath)
	_ = cmd.RegisterFlagCompletionFunc("name", a.completeNames)
	_ = cmd.MarkFlagDirname("path")
}

// selection finishes sel with the global state.
func (a *app) selection(sel commands.SelectOptions) commands.SelectOptions {
	sel.Registry = a.reg
	sel.Picker = a.picker()
	return sel
}

func (a *app) newRunCmd() *cobra.Command {
	var sel commands.SelectOptions

	cmd := &cobra.Command{
		Use:     "run [flags] [--] command [args...]",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		GroupID: "env",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			sel := a.selection(sel)
			sel.Resolve = a.resolve

			c, err := commands.Run(cmd.Context(), commands.RunOptions{
				Select: sel,
				UV:     a.cfg.Tools.UV,
				Args:   args,
				DryRun: a.dryRun,
				Runner: a.runner(),
			})
			if err != nil {
				return err
			}
			if a.dryRun {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.String())
			}
			return nil
		},
	}

	// everything after the first positional argument belongs to uv
	cmd.Flags().SetInterspersed(false)
	a.selectFlags(cmd, &sel)

	return cmd
}

func (a *app) newActivateCmd() *cobra.Command {
	var (
		sel       commands.SelectOptions
		noCommand bool
		sh        string
	)

	cmd := &cobra.Command{
		Use:     "activate",
		Short:   MsgActivateShort,
		Long:    MsgActivateLong,
		GroupID: "env",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := a.selection(sel)
			sel.Resolve = a.resolve

			line, err := commands.Activate(commands.ActivateOptions{
				Select:    sel,
				Shell:     sh,
				NoCommand: noCommand,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	a.selectFlags(cmd, &sel)
	cmd.Flags().BoolVar(&noCommand, "no-command", false, MsgFlagNoCommand)
	cmd.Flags().StringVar(&sh, "shell", "", MsgFlagShell)

	return cmd
}

func (a *app) newCdCmd() *cobra.Command {
	var (
		sel       commands.SelectOptions
		noCommand bool
		sh        string
	)

	cmd := &cobra.Command{
		Use:     "cd",
		Short:   MsgCdShort,
		Long:    MsgCdLong,
		GroupID: "env",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := commands.Cd(commands.CdOptions{
				Select:    a.selection(sel),
				NoCommand: noCommand,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	a.selectFlags(cmd, &sel)
	cmd.Flags().BoolVar(&noCommand, "no-command", false, MsgFlagNoCommand)
	// accepted so the fish integration can pass it to both commands
	cmd.Flags().StringVar(&sh, "shell", "", MsgFlagShell)
	_ = cmd.Flags().MarkHidden("shell")

	return cmd
}

func (a *app) newShellConfigCmd() *cobra.Command {
	var sh string

	cmd := &cobra.Command{
		Use:       "shell-config [bash|zsh|fish]",
		Short:     MsgShellConfigShort,
		Long:      MsgShellConfigLong,
		GroupID:   "env",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: shell.Supported(),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := sh
			if len(args) == 1 {
				target = args[0]
			}
			if target == "" {
				target = shell.Detect()
			}

			script, err := shell.Config(target)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}

	cmd.Flags().StringVar(&sh, "shell", "", MsgFlagShell)
	_ = cmd.RegisterFlagCompletionFunc("shell", cobra.FixedCompletions(shell.Supported(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (a *app) newConfigCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, _ = fmt.Fprint(out, config.Defaults())
				return nil
			}

			if a.cfg.File != "" {
				_, _ = fmt.Fprintf(out, MsgConfigFile, a.cfg.File)
			} else {
				_, _ = fmt.Fprintf(out, MsgConfigNoFile, paths.ConfigFilePath())
			}

			text, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(out, text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

var completeFormats = cobra.FixedCompletions(
	[]string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp)

// completeNames completes registered environment names for -n.
func (a *app) completeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if a.reg == nil {
		if err := a.prepare(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}

	names, err := commands.Names(a.reg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

type mark int

const (
	markDone mark = iota
	markKept
	markPending
)

// indicator is the leading mark of a result line.
func indicator(w io.Writer, m mark) string {
	plain, fancy := "✓", style.SuccessIndicator
	switch m {
	case markKept:
		plain, fancy = "!", style.WarningIndicator
	case markPending:
		plain, fancy = "○", style.PendingIndicator
	}
	if styled(w) {
		return fancy
	}
	return plain
}

// doneMark is markPending when nothing was changed.
func (a *app) doneMark() mark {
	if a.dryRun {
		return markPending
	}
	return markDone
}

func printDryRun(w io.Writer, dryRun bool) {
	if !dryRun {
		return
	}
	notice := MsgDryRunNotice
	if styled(w) {
		notice = style.WarningStyle.Render(notice)
	}
	_, _ = fmt.Fprintln(w, "\n"+notice)
}
