package pypi

import (
	"fmt"
	"strings"
)

// Snapshot maps lowercase package names to their installed versions. It is
// built fresh on each bootstrap run and never mutated afterwards.
type Snapshot map[string]string

// Satisfies reports whether the requirement is already met by the snapshot.
// With an exact version the installed version must match it; a bare
// requirement only needs the name to be present. Name matching is
// case-insensitive.
func (s Snapshot) Satisfies(r Requirement) bool {
	installed, ok := s[strings.ToLower(r.Name)]
	if !ok {
		return false
	}
	if r.Version != "" {
		return installed == r.Version
	}
	return true
}

// CaptureSnapshot queries the environment with `pip freeze` and parses each
// "name==version" output line. Lines without "==" are ignored. A pip that
// cannot be invoked or exits non-zero is fatal to the bootstrap.
func CaptureSnapshot(runner CommandRunner, pip []string) (Snapshot, error) {
	args := append(append([]string{}, pip[1:]...), "freeze")
	out, err := runner.Run(pip[0], args...)
	if err != nil {
		return nil, NewDependencyError("querying installed packages", err)
	}
	if out.ExitCode != 0 {
		return nil, NewDependencyError(
			fmt.Sprintf("pip freeze exited with status %d: %s", out.ExitCode, strings.TrimSpace(out.Stderr)), nil)
	}

	snap := make(Snapshot)
	for _, line := range strings.Split(out.Stdout, "\n") {
		name, version, ok := strings.Cut(line, "==")
		if !ok {
			continue
		}
		snap[strings.ToLower(name)] = version
	}
	return snap, nil
}
