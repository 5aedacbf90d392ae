package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/uvw/pkg/commands"
)

func (a *app) newKernelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kernels",
		Short:   MsgKernelsShort,
		GroupID: "env",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(a.newKernelsInstallCmd())
	cmd.AddCommand(a.newKernelsRemoveCmd())
	cmd.AddCommand(a.newKernelsListCmd())

	return cmd
}

func (a *app) newKernelsInstallCmd() *cobra.Command {
	var (
		all           bool
		names         []string
		paths         []string
		displayFormat string
		noUser        bool
	)

	cmd := &cobra.Command{
		Use:   "install [flags] [-- ipykernel-args...]",
		Short: MsgKernelsInstallShort,
		Long:  MsgKernelsInstallLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(names) == 0 && len(paths) == 0 {
				return cmd.Help()
			}

			format := a.cfg.Kernels.DisplayFormat
			if cmd.Flags().Changed("display-format") {
				format = displayFormat
			}

			done, err := commands.KernelsInstall(cmd.Context(), commands.KernelsInstallOptions{
				Registry:      a.reg,
				Manager:       a.kernelManager(),
				Runner:        a.runner(),
				All:           all,
				Names:         names,
				Paths:         paths,
				DisplayFormat: format,
				User:          a.cfg.Kernels.User && !noUser,
				Resolve:       a.cfg.Kernels.Resolve,
				UV:            a.cfg.Tools.UV,
				Extra:         args,
				DryRun:        a.dryRun,
				Yes:           a.yes,
				Confirmer:     a.confirmer(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, k := range done {
				if a.dryRun {
					_, _ = fmt.Fprintln(out, k.Command.String())
					continue
				}
				_, _ = fmt.Fprintf(out, MsgKernelInstalled, indicator(out, a.doneMark()), k.Name)
			}
			printDryRun(out, a.dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	cmd.Flags().StringArrayVarP(&names, "name", "n", nil, MsgFlagKernelNames)
	cmd.Flags().StringArrayVarP(&paths, "path", "p", nil, MsgFlagKernelPaths)
	cmd.Flags().StringVar(&displayFormat, "display-format", "", MsgFlagDisplayFormat)
	cmd.Flags().BoolVar(&noUser, "no-user", false, MsgFlagNoUser)
	_ = cmd.RegisterFlagCompletionFunc("name", a.completeNames)
	_ = cmd.MarkFlagDirname("path")

	return cmd
}

func (a *app) newKernelsRemoveCmd() *cobra.Command {
	var (
		names   []string
		paths   []string
		missing bool
	)

	cmd := &cobra.Command{
		Use:   "remove",
		Short: MsgKernelsRemoveShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !missing && len(names) == 0 && len(paths) == 0 {
				return cmd.Help()
			}

			removed, err := commands.KernelsRemove(cmd.Context(), commands.KernelsRemoveOptions{
				Registry:  a.reg,
				Manager:   a.kernelManager(),
				Names:     names,
				Paths:     paths,
				Missing:   missing,
				DryRun:    a.dryRun,
				Yes:       a.yes,
				Confirmer: a.confirmer(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(removed) == 0 {
				_, _ = fmt.Fprintln(out, MsgNoKernelsRemoved)
				return nil
			}
			for _, name := range removed {
				_, _ = fmt.Fprintf(out, MsgKernelRemovedItem, indicator(out, a.doneMark()), name)
			}
			printDryRun(out, a.dryRun)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&names, "name", "n", nil, MsgFlagRemoveNames)
	cmd.Flags().StringArrayVarP(&paths, "path", "p", nil, MsgFlagKernelPaths)
	cmd.Flags().BoolVar(&missing, "missing", false, MsgFlagMissing)
	_ = cmd.RegisterFlagCompletionFunc("name", a.completeKernels)
	_ = cmd.MarkFlagDirname("path")

	return cmd
}

func (a *app) newKernelsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgKernelsListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.KernelsList(cmd.Context(), a.kernelManager())
		},
	}
}

func (a *app) completeKernels(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if a.cfg == nil {
		if err := a.prepare(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}

	names, err := a.kernelManager().Names(cmd.Context())
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
