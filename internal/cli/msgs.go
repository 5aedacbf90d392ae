package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Manage Python virtual environments from a central registry"
	MsgLinkShort           = "Link virtual environments into workon_home"
	MsgListShort           = "List registered virtual environments"
	MsgCleanShort          = "Remove broken links from workon_home"
	MsgRunShort            = "Run uv in a registered virtual environment"
	MsgActivateShort       = "Print the command that activates an environment"
	MsgCdShort             = "Print the command that changes to an environment's project"
	MsgShellConfigShort    = "Print the shell integration script"
	MsgKernelsShort        = "Jupyter kernel utilities"
	MsgKernelsInstallShort = "Install Jupyter kernels for environments with ipykernel"
	MsgKernelsRemoveShort  = "Remove installed Jupyter kernels"
	MsgKernelsListShort    = "List installed Jupyter kernels"
	MsgConfigShort         = "Print the effective configuration"
	MsgVersionShort        = "Print version information"
	MsgCompletionShort     = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice      = "DRY RUN MODE - No changes were made"
	MsgNothingToLink     = "No virtual environments found to link."
	MsgLinkedItem        = "%s %s -> %s\n"
	MsgSkippedItem       = "%s %s kept (already linked)\n"
	MsgNoBrokenLinks     = "No broken links found."
	MsgRemovedItem       = "%s removed %s -> %s\n"
	MsgNoSelection       = "No virtual environment found"
	MsgKernelInstalled   = "%s installed kernel %s\n"
	MsgNoKernelsRemoved  = "No kernels to remove."
	MsgKernelRemovedItem = "%s removed kernel %s\n"
	MsgVersionFormat     = "uvw version %s\n"
	MsgVersionDetail     = "  commit: %s\n  built:  %s\n"
	MsgConfigFile        = "# config file: %s\n"
	MsgConfigNoFile      = "# no config file loaded (looked for %s)\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrRegistry   = "failed to open registry: %w"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun        = "Preview changes without executing them"
	MsgFlagWorkonHome    = "Registry directory (default $WORKON_HOME or ~/.virtualenvs)"
	MsgFlagVenv          = "Virtual environment directory pattern; repeatable, tried before .venv and venv"
	MsgFlagNoDefaultVenv = "Do not try the default .venv and venv patterns"
	MsgFlagYes           = "Answer yes to all confirmations"
	MsgFlagResolve       = "Resolve symlinks and use absolute paths"
	MsgFlagConfig        = "Config file (default $XDG_CONFIG_HOME/uvw/config.toml)"
	MsgFlagParent        = "Link every environment found directly under this directory; repeatable"
	MsgFlagLinkName      = "Registry name for the matching path; repeatable, one per path"
	MsgFlagName          = "Registered environment name"
	MsgFlagPath          = "Path to an environment or a project holding one"
	MsgFlagNoCommand     = "Print only the path, without the shell command"
	MsgFlagShell         = "Shell to target (bash, zsh, fish)"
	MsgFlagFormat        = "Output format (auto, term, text, json, yaml)"
	MsgFlagAll           = "Install for every registered environment"
	MsgFlagKernelNames   = "Environment names to install for; repeatable"
	MsgFlagKernelPaths   = "Environment paths; repeatable"
	MsgFlagDisplayFormat = "Kernel display name; {name} is replaced by the environment name"
	MsgFlagNoUser        = "Install system wide instead of per user"
	MsgFlagRemoveNames   = "Kernel names to remove; repeatable"
	MsgFlagMissing       = "Remove kernels whose interpreter no longer exists"
	MsgFlagDefaults      = "Print the built-in defaults instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/activate-long.txt
	msgActivateLongRaw string
	MsgActivateLong    = strings.TrimSpace(msgActivateLongRaw)

	//go:embed msgs/cd-long.txt
	msgCdLongRaw string
	MsgCdLong    = strings.TrimSpace(msgCdLongRaw)

	//go:embed msgs/shell-config-long.txt
	msgShellConfigLongRaw string
	MsgShellConfigLong    = strings.TrimSpace(msgShellConfigLongRaw)

	//go:embed msgs/kernels-install-long.txt
	msgKernelsInstallLongRaw string
	MsgKernelsInstallLong    = strings.TrimSpace(msgKernelsInstallLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
