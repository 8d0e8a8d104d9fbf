package pypi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequirement(t *testing.T) {
	t.Run("bare name", func(t *testing.T) {
		r := ParseRequirement("requests")
		assert.Equal(t, Requirement{Name: "requests"}, r)
		assert.Equal(t, "requests", r.Specifier())
	})

	t.Run("pinned version", func(t *testing.T) {
		r := ParseRequirement("requests==2.31.0")
		assert.Equal(t, Requirement{Name: "requests", Version: "2.31.0"}, r)
		assert.Equal(t, "requests==2.31.0", r.Specifier())
	})
}

func TestLoadRequirements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	content := "foo==1.0.0\n\nbar\n   \nbaz==2.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	reqs, err := LoadRequirements(path)
	require.NoError(t, err)
	assert.Equal(t, []Requirement{
		{Name: "foo", Version: "1.0.0"},
		{Name: "bar"},
		{Name: "baz", Version: "2.0"},
	}, reqs)
}

func TestFilterUnsatisfied(t *testing.T) {
	snap := Snapshot{"foo": "1.0.0", "bar": "2.0.0"}

	t.Run("empty input stays empty", func(t *testing.T) {
		assert.Empty(t, FilterUnsatisfied(nil, snap))
	})

	t.Run("empty snapshot keeps everything", func(t *testing.T) {
		reqs := []Requirement{{Name: "a"}, {Name: "b", Version: "1.0"}}
		assert.Equal(t, reqs, FilterUnsatisfied(reqs, Snapshot{}))
	})

	t.Run("order is preserved", func(t *testing.T) {
		reqs := []Requirement{
			{Name: "zlib"},
			{Name: "foo", Version: "9.9.9"},
			{Name: "alpha"},
		}
		got := FilterUnsatisfied(reqs, snap)
		assert.Equal(t, reqs, got)
	})

	t.Run("exact version match is satisfied", func(t *testing.T) {
		reqs := []Requirement{{Name: "foo", Version: "1.0.0"}}
		assert.Empty(t, FilterUnsatisfied(reqs, snap))
	})

	t.Run("exact version mismatch is unsatisfied", func(t *testing.T) {
		reqs := []Requirement{{Name: "foo", Version: "1.0.1"}}
		assert.Equal(t, reqs, FilterUnsatisfied(reqs, snap))
	})

	t.Run("bare requirement needs presence only", func(t *testing.T) {
		reqs := []Requirement{{Name: "bar"}}
		assert.Empty(t, FilterUnsatisfied(reqs, snap))
	})

	t.Run("name match is case-insensitive", func(t *testing.T) {
		reqs := []Requirement{{Name: "Foo", Version: "1.0.0"}, {Name: "BAR"}}
		assert.Empty(t, FilterUnsatisfied(reqs, snap))
	})

	t.Run("duplicates are not collapsed", func(t *testing.T) {
		reqs := []Requirement{{Name: "missing"}, {Name: "missing"}}
		assert.Len(t, FilterUnsatisfied(reqs, snap), 2)
	})
}
