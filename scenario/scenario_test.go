package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternkit/crossing/scenario"
)

// writeFile drops a scenario file into a temp dir and returns its path.
func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestClassic(t *testing.T) {
	sc := scenario.Classic()
	assert.Equal(t, "classic", sc.Name)
	assert.Equal(t, []int64{1, 2, 5, 10}, sc.Costs)
	assert.Equal(t, int64(17), sc.Bound)
	assert.NoError(t, sc.Validate())

	party, err := sc.Party()
	require.NoError(t, err)
	assert.Equal(t, 4, party.Size())
}

func TestLoad_Valid(t *testing.T) {
	path := writeFile(t, `
version: 1
scenario:
  name: ferry crew
  costs: [3, 4, 9]
  bound: 25
`)
	sc, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ferry crew", sc.Name)
	assert.Equal(t, []int64{3, 4, 9}, sc.Costs)
	assert.Equal(t, int64(25), sc.Bound)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	path := writeFile(t, `
version: 2
scenario:
  name: future
  costs: [1]
  bound: 5
`)
	_, err := scenario.Load(path)
	assert.ErrorIs(t, err, scenario.ErrBadVersion)
}

func TestLoad_RejectsNonPositiveCost(t *testing.T) {
	path := writeFile(t, `
version: 1
scenario:
  name: broken
  costs: [1, 0, 3]
  bound: 10
`)
	_, err := scenario.Load(path)
	assert.ErrorIs(t, err, scenario.ErrBadCost)
}

func TestLoad_RejectsNonPositiveBound(t *testing.T) {
	path := writeFile(t, `
version: 1
scenario:
  name: broken
  costs: [1, 2]
  bound: 0
`)
	_, err := scenario.Load(path)
	assert.ErrorIs(t, err, scenario.ErrBadBound)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	// Read failures carry package context like every other Load error.
	assert.ErrorContains(t, err, "scenario: reading")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "version: [not a number")
	_, err := scenario.Load(path)
	assert.Error(t, err)
}
