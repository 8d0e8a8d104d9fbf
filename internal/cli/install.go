package cli

import (
	"github.com/spf13/cobra"

	"github.com/blockguard-sf/rek/internal/config"
	"github.com/blockguard-sf/rek/internal/pypi"
)

var installVersionRange string

func init() {
	installCmd.Flags().StringVar(&installVersionRange, "version-range", "",
		`Version range appended verbatim to the module name (e.g. ">=1.2.0,!=2.0.0")`)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(bootstrapCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <module>",
	Short: "Install a single Python module with pip",
	Long: `Install one Python module, optionally constrained by a version range.

Examples:
  rek install requests
  rek install requests --version-range ">=2.31.0"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		log, closeLog, err := newLogger()
		if err != nil {
			return err
		}
		defer closeLog()

		installer := pypi.NewInstaller(log, pypi.WithVerbose(globalDebug))
		_, err = installer.InstallModule(args[0], installVersionRange)
		return err
	},
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [requirements-file]",
	Short: "Install every unsatisfied requirement from a requirements file",
	Long: `Diff the requirements file against the installed packages and install the
missing entries in a single pip invocation. Already-satisfied requirements
are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		log, closeLog, err := newLogger()
		if err != nil {
			return err
		}
		defer closeLog()

		path := config.RequirementsFile()
		if len(args) == 1 {
			path = args[0]
		}

		installer := pypi.NewInstaller(log, pypi.WithVerbose(true))
		return installer.InstallRequirements(path)
	},
}
