// Package cli builds uvw's cobra command tree.
package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/uvw/internal/version"
	"github.com/arthur-debert/uvw/pkg/cobrax/topics"
	"github.com/arthur-debert/uvw/pkg/config"
	"github.com/arthur-debert/uvw/pkg/kernels"
	"github.com/arthur-debert/uvw/pkg/logging"
	"github.com/arthur-debert/uvw/pkg/registry"
	"github.com/arthur-debert/uvw/pkg/runner"
	"github.com/arthur-debert/uvw/pkg/ui"
)

//go:embed topics/*.md
var topicFiles embed.FS

// Deps are the collaborators the commands talk to. Zero fields are
// filled with the real implementations.
type Deps struct {
	Runner    runner.Runner
	Confirmer ui.Confirmer
	Picker    ui.Picker
}

// app holds global flag values and what is derived from them.
type app struct {
	verbosity     int
	dryRun        bool
	yes           bool
	resolve       bool
	noDefaultVenv bool
	workonHome    string
	configFile    string
	venvPatterns  []string

	deps Deps
	cfg  *config.Config
	reg  *registry.Registry
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(Deps{})
}

// NewRootCmdWithDeps creates the root command with injected collaborators.
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	initTemplateFormatting()

	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:     "uvw",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			if cmd.Annotations[annotationStandalone] == "true" || cmd.Name() == "help" {
				return nil
			}
			return a.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&a.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.StringVarP(&a.workonHome, "workon-home", "o", "", MsgFlagWorkonHome)
	pf.StringArrayVar(&a.venvPatterns, "venv", nil, MsgFlagVenv)
	pf.BoolVar(&a.noDefaultVenv, "no-default-venv", false, MsgFlagNoDefaultVenv)
	pf.BoolVarP(&a.yes, "yes", "y", false, MsgFlagYes)
	pf.BoolVar(&a.resolve, "resolve", false, MsgFlagResolve)
	pf.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	_ = rootCmd.MarkPersistentFlagDirname("workon-home")
	_ = rootCmd.MarkPersistentFlagFilename("config", "toml")

	rootCmd.AddGroup(&cobra.Group{ID: "registry", Title: "REGISTRY:"})
	rootCmd.AddGroup(&cobra.Group{ID: "env", Title: "ENVIRONMENTS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(a.newLinkCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newCleanCmd())
	rootCmd.AddCommand(a.newRunCmd())
	rootCmd.AddCommand(a.newActivateCmd())
	rootCmd.AddCommand(a.newCdCmd())
	rootCmd.AddCommand(a.newShellConfigCmd())
	rootCmd.AddCommand(a.newKernelsCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicsFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, topicsFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// prepare loads configuration and opens the registry. Flags override the
// configuration.
func (a *app) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	if a.workonHome != "" {
		cfg.WorkonHome = a.workonHome
	}
	if len(a.venvPatterns) > 0 {
		cfg.Patterns.Venv = a.venvPatterns
	}
	if a.noDefaultVenv {
		cfg.Patterns.UseDefaults = false
	}
	if cmd.Flags().Changed("resolve") {
		cfg.Link.Resolve = a.resolve
		cfg.Kernels.Resolve = a.resolve
	}
	a.cfg = cfg

	patterns, err := cfg.VenvPatterns()
	if err != nil {
		return err
	}

	reg, err := registry.New(registry.Options{
		WorkonHome: cfg.WorkonHome,
		Patterns:   patterns,
		Logger:     logging.GetLogger("registry"),
	})
	if err != nil {
		return fmt.Errorf(MsgErrRegistry, err)
	}
	a.reg = reg

	log.Debug().
		Str("workonHome", reg.Home()).
		Strs("patterns", patterns).
		Str("configFile", cfg.File).
		Msg("Registry ready")
	return nil
}

func (a *app) runner() runner.Runner {
	if a.deps.Runner != nil {
		return a.deps.Runner
	}
	r := runner.NewExecRunner()
	a.deps.Runner = r
	return r
}

// interactive reports whether prompts can be shown.
func interactive() bool {
	return ui.IsTerminal(os.Stdin) && ui.IsTerminal(os.Stderr)
}

// confirmer returns nil when nobody can answer, which declines.
func (a *app) confirmer() ui.Confirmer {
	if a.deps.Confirmer != nil {
		return a.deps.Confirmer
	}
	if a.yes {
		return ui.AutoConfirm{Answer: true}
	}
	if !interactive() {
		return nil
	}
	return ui.NewPrompter(os.Stderr)
}

func (a *app) picker() ui.Picker {
	if a.deps.Picker != nil {
		return a.deps.Picker
	}
	if !interactive() {
		return nil
	}
	return ui.NewPrompter(os.Stderr)
}

func (a *app) kernelManager() *kernels.Manager {
	return kernels.NewManager(a.runner(), a.cfg.Tools.Jupyter)
}
