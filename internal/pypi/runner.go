package pypi

import (
	"bytes"
	"os/exec"
)

// Output captures the result of an external command invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandRunner runs an external command to completion and captures its
// output. A non-nil error means the process could not be spawned at all;
// a process that ran and exited non-zero is reported through ExitCode.
type CommandRunner interface {
	Run(name string, args ...string) (*Output, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes the command, blocking until it exits.
func (ExecRunner) Run(name string, args ...string) (*Output, error) {
	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	out := &Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return nil, err
	}

	return out, nil
}
