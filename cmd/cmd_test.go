package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedRecordShowExport(t *testing.T) {
	t.Setenv("MATHSKILLS_USER", "local")
	dir := t.TempDir()
	db := filepath.Join(dir, "skills.db")

	out, err := run(t, "seed", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded")

	// Seeding twice is an upsert.
	_, err = run(t, "seed", "--db", db)
	require.NoError(t, err)

	out, err = run(t, "record", "multiplication", "1", "--db", db, "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "alice multiplication: 1")

	out, err = run(t, "record", "7x8", "0.5", "--db", db, "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "7x8: 0.5")
	out, err = run(t, "record", "7x8", "0.5", "--db", db, "--user", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "7x8: 1")

	out, err = run(t, "show", "--css", "--db", db, "--user", "alice", "--target", "7x8")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines, "addition\t10+20\tbackground-color: rgba(127, 127, 0, 0);")
	assert.Contains(t, lines, "numbers\t1\tbackground-color: rgba(127, 127, 0, 0.2);")
	var found bool
	for _, l := range lines {
		if strings.HasPrefix(l, "multiplication\t7x8\t") {
			found = true
			assert.Regexp(t, `rgba\(\d+, 204, 0, 1\);$`, l)
		}
	}
	assert.True(t, found, "7x8 css line")

	xlsx := filepath.Join(dir, "skills.xlsx")
	out, err = run(t, "export", "--out", xlsx, "--db", db, "--user", "alice", "--target", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+xlsx)
	assert.FileExists(t, xlsx)
}

func TestShowWithoutSeedHintsAtSeed(t *testing.T) {
	db := filepath.Join(t.TempDir(), "empty.db")
	_, err := run(t, "show", "--db", db, "--css=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mathskills seed")
}

func TestRecordRejectsBadDelta(t *testing.T) {
	_, err := run(t, "record", "7x8", "lots", "--db", filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid delta")
}

func TestSkillList(t *testing.T) {
	out, err := run(t, "skill", "list", "--category", "division")
	require.NoError(t, err)
	assert.Contains(t, out, "division1")
	assert.Contains(t, out, "56/8")
	assert.NotContains(t, out, "7x8")

	_, err = run(t, "skill", "list", "--category", "fractions")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "mathskills (devel)\n", out)
}
