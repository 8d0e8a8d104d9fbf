package pypi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner replays scripted outputs and records every invocation.
type fakeRunner struct {
	calls   [][]string
	outputs []*Output
	errs    []error
}

func (f *fakeRunner) Run(name string, args ...string) (*Output, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	idx := len(f.calls) - 1

	var err error
	if idx < len(f.errs) {
		err = f.errs[idx]
	}
	var out *Output
	if idx < len(f.outputs) {
		out = f.outputs[idx]
	}
	if out == nil && err == nil {
		out = &Output{}
	}
	return out, err
}

func TestCaptureSnapshot(t *testing.T) {
	t.Run("parses freeze output", func(t *testing.T) {
		runner := &fakeRunner{outputs: []*Output{{
			Stdout: "Requests==2.31.0\nclick==8.1.7\nsome-editable-install\n\n",
		}}}

		snap, err := CaptureSnapshot(runner, []string{"python3", "-m", "pip"})
		require.NoError(t, err)

		assert.Equal(t, Snapshot{"requests": "2.31.0", "click": "8.1.7"}, snap)
		require.Len(t, runner.calls, 1)
		assert.Equal(t, []string{"python3", "-m", "pip", "freeze"}, runner.calls[0])
	})

	t.Run("non-zero exit is fatal", func(t *testing.T) {
		runner := &fakeRunner{outputs: []*Output{{ExitCode: 1, Stderr: "broken pip"}}}

		_, err := CaptureSnapshot(runner, []string{"pip"})
		require.Error(t, err)
		assert.True(t, IsDependencyError(err))
		assert.Contains(t, err.Error(), "broken pip")
	})

	t.Run("spawn failure is fatal", func(t *testing.T) {
		runner := &fakeRunner{errs: []error{errors.New("executable not found")}}

		_, err := CaptureSnapshot(runner, []string{"pip"})
		require.Error(t, err)
		assert.True(t, IsDependencyError(err))
	})
}

func TestSnapshotSatisfies(t *testing.T) {
	snap := Snapshot{"requests": "2.31.0"}

	assert.True(t, snap.Satisfies(Requirement{Name: "requests"}))
	assert.True(t, snap.Satisfies(Requirement{Name: "Requests", Version: "2.31.0"}))
	assert.False(t, snap.Satisfies(Requirement{Name: "requests", Version: "2.30.0"}))
	assert.False(t, snap.Satisfies(Requirement{Name: "flask"}))
}
