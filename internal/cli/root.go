// Package cli wires the cobra command tree: the root command runs the
// interactive flow (bootstrap, version gate, menu loop), with install,
// bootstrap, config, and version subcommands alongside.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	goruntime "runtime"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/blockguard-sf/rek/internal/branding"
	"github.com/blockguard-sf/rek/internal/config"
	"github.com/blockguard-sf/rek/internal/logging"
	"github.com/blockguard-sf/rek/internal/menu"
	"github.com/blockguard-sf/rek/internal/pypi"
	"github.com/blockguard-sf/rek/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags
var (
	globalDebug      bool
	requirementsFlag string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` makes it easy to create and manage packages for RoLib.

Run with no arguments for the interactive menu: it bootstraps the Python
environment from the requirements file, checks for a newer release, and then
lets you scaffold new RoLib packages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalDebug, "debug", "d", false,
		"Display extra debugging information and metrics")
	rootCmd.Flags().StringVar(&requirementsFlag, "requirements", "",
		"Path to the bootstrap requirements file (default: from config, else requirements.txt)")
}

// Execute runs the root command with build info injected via ldflags.
// A user interrupt at any prompt terminates the process cleanly.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func runInteractive(cmd *cobra.Command, args []string) error {
	config.Load()

	log, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	warnOnConfigIssues(log)

	// Bootstrap the Python environment before anything interactive. An
	// installer failure is fatal to startup.
	installer := pypi.NewInstaller(log, pypi.WithVerbose(true))
	if err := installer.InstallRequirements(requirementsFile()); err != nil {
		return err
	}

	// Release gate: an out-of-date binary refuses to proceed.
	if err := updater.New(buildVersion).EnsureLatest(log); err != nil {
		return err
	}

	fmt.Printf("%s - %s [%s]\n\n", branding.DisplayName(), buildVersion, goruntime.Version())

	return menu.NewDispatcher(topMenu(log), nil).Run()
}

// newLogger constructs the process log sink from the debug flag and the
// configured log file path.
func newLogger() (*slog.Logger, func() error, error) {
	logFile := config.Get(config.KeyLogFile)
	if logFile == "" {
		logFile = logging.DefaultLogFile
	}
	return logging.New(globalDebug, logFile)
}

func requirementsFile() string {
	if requirementsFlag != "" {
		return requirementsFlag
	}
	return config.RequirementsFile()
}

// warnOnConfigIssues reports config schema violations without blocking.
func warnOnConfigIssues(log *slog.Logger) {
	result, err := config.ValidateFile(config.FilePath())
	if err != nil {
		log.Debug("could not validate config", "error", err)
		return
	}
	for _, issue := range result.Issues {
		log.Warn("config file issue", "path", issue.Path, "detail", issue.Message)
	}
}
