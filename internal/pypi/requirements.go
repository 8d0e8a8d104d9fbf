package pypi

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Requirement is a package name with an optional exact version constraint.
// Immutable once parsed.
type Requirement struct {
	Name    string
	Version string // empty means any version
}

// ParseRequirement parses a single requirement line of the form "name" or
// "name==version".
func ParseRequirement(line string) Requirement {
	if name, version, ok := strings.Cut(line, "=="); ok {
		return Requirement{Name: name, Version: version}
	}
	return Requirement{Name: line}
}

// Specifier returns the pip specifier string for the requirement.
func (r Requirement) Specifier() string {
	if r.Version != "" {
		return r.Name + "==" + r.Version
	}
	return r.Name
}

// LoadRequirements reads a requirements file: one requirement per non-blank
// line, UTF-8.
func LoadRequirements(path string) ([]Requirement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening requirements file: %w", err)
	}
	defer f.Close()

	var reqs []Requirement
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reqs = append(reqs, ParseRequirement(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading requirements file: %w", err)
	}
	return reqs, nil
}

// FilterUnsatisfied returns the requirements not satisfied by the snapshot,
// preserving input order. Duplicates are not collapsed; the caller is
// expected to pass a clean list.
func FilterUnsatisfied(reqs []Requirement, snap Snapshot) []Requirement {
	var unsatisfied []Requirement
	for _, r := range reqs {
		if !snap.Satisfies(r) {
			unsatisfied = append(unsatisfied, r)
		}
	}
	return unsatisfied
}
