package pypi

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Installer installs Python packages by shelling out to pip.
type Installer struct {
	runner  CommandRunner
	log     *slog.Logger
	verbose bool
	pip     []string
}

// Option configures an Installer.
type Option func(*Installer)

// WithRunner sets a custom command runner (useful for testing).
func WithRunner(r CommandRunner) Option {
	return func(i *Installer) {
		i.runner = r
	}
}

// WithPipCommand overrides the pip invocation prefix.
func WithPipCommand(pip []string) Option {
	return func(i *Installer) {
		i.pip = pip
	}
}

// WithVerbose routes status messages through the logger instead of stdout.
func WithVerbose(v bool) Option {
	return func(i *Installer) {
		i.verbose = v
	}
}

// NewInstaller creates an Installer logging through log.
func NewInstaller(log *slog.Logger, opts ...Option) *Installer {
	i := &Installer{
		runner: ExecRunner{},
		log:    log,
		pip:    []string{"python3", "-m", "pip"},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// InstallRequirements installs every unsatisfied requirement listed in the
// file at path. The existence of the file is checked before any installed-
// package query so a bad path fails fast. Already-satisfied requirements are
// skipped; the remainder is installed in a single batched pip invocation.
func (i *Installer) InstallRequirements(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return NewDependencyError("resolving requirements file path", err)
	}

	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		missing := NewMissingRequirementsFileError(abs)
		i.reportError(missing.Message)
		return missing
	}

	// Preload installed packages to avoid reinstalling satisfied entries.
	snap, err := CaptureSnapshot(i.runner, i.pip)
	if err != nil {
		i.reportError(err.Error())
		return err
	}

	reqs, err := LoadRequirements(abs)
	if err != nil {
		return NewDependencyError("reading requirements", err)
	}

	toInstall := FilterUnsatisfied(reqs, snap)
	if len(toInstall) == 0 {
		i.report("All dependencies are already installed.")
		return nil
	}

	// One batched invocation: avoids repeated pip startup cost and reports
	// success or failure for the whole set at once.
	args := append(append([]string{}, i.pip[1:]...), "install", "--no-cache-dir", "--no-deps")
	for _, r := range toInstall {
		args = append(args, r.Specifier())
	}

	out, err := i.runner.Run(i.pip[0], args...)
	if err != nil {
		depErr := NewDependencyError("OS error occurred during installation", err)
		i.reportError(depErr.Error())
		return depErr
	}
	if out.ExitCode != 0 {
		installErr := NewModuleInstallationError(
			fmt.Sprintf("an error occurred while installing dependencies: %s", stderrOrUnknown(out)), nil)
		i.reportError(installErr.Message)
		return installErr
	}

	i.report("Successfully installed dependencies.")
	if i.verbose {
		i.log.Debug("pip output", "stdout", out.Stdout)
	}
	return nil
}

// InstallModule installs a single module, optionally constrained by a
// version range appended verbatim to the name (e.g. ">=1.2.0,!=2.0.0").
// Every failure, including OS-level ones, is reported as a module
// installation error: from the caller's perspective a single named module
// failed to install. Returns true on success.
func (i *Installer) InstallModule(module, versionRange string) (bool, error) {
	specifier := module + versionRange

	args := append(append([]string{}, i.pip[1:]...), "install", specifier)
	out, err := i.runner.Run(i.pip[0], args...)
	if err != nil {
		installErr := NewModuleInstallationError(
			fmt.Sprintf("system or dependency error for the module %s", module), err)
		i.reportError(installErr.Error())
		return false, installErr
	}
	if out.ExitCode != 0 {
		installErr := NewModuleInstallationError(
			fmt.Sprintf("an error occurred while installing the module %s: %s", module, stderrOrUnknown(out)), nil)
		i.reportError(installErr.Message)
		return false, installErr
	}

	i.report(fmt.Sprintf("Module %s successfully installed.", module))
	if i.verbose {
		i.log.Debug("pip output", "stdout", out.Stdout)
	}
	return true, nil
}

func stderrOrUnknown(out *Output) string {
	if s := strings.TrimSpace(out.Stderr); s != "" {
		return s
	}
	return "unknown error"
}

// report writes a status message through the logger when verbose, or plainly
// to stdout otherwise.
func (i *Installer) report(msg string) {
	if i.verbose {
		i.log.Info(msg)
		return
	}
	fmt.Println(msg)
}

func (i *Installer) reportError(msg string) {
	if i.verbose {
		i.log.Error(msg)
		return
	}
	fmt.Println(msg)
}
