package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	AddProjectFlag(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestGetProjectID(t *testing.T) {
	t.Setenv(EnvProject, "")

	_, err := GetProjectID(projectCmd(t))
	assert.ErrorIs(t, err, ErrNoProject)

	id, err := GetProjectID(projectCmd(t, "--project", "4"))
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	_, err = GetProjectID(projectCmd(t, "--project", "0"))
	assert.Error(t, err)

	t.Setenv(EnvProject, "12")
	id, err = GetProjectID(projectCmd(t))
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	// The flag wins over the environment
	id, err = GetProjectID(projectCmd(t, "--project", "3"))
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	t.Setenv(EnvProject, "abc")
	_, err = GetProjectID(projectCmd(t))
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("15", "card")
	require.NoError(t, err)
	assert.Equal(t, 15, id)

	_, err = ParseID("-1", "card")
	assert.EqualError(t, err, "invalid card ID: -1")
	_, err = ParseID("x", "board")
	assert.Error(t, err)
}

func TestProjectFromFlagsIsUsageError(t *testing.T) {
	t.Setenv(EnvProject, "")
	_, err := ProjectFromFlags(projectCmd(t))

	var usage *UsageError
	require.ErrorAs(t, err, &usage)
	assert.Contains(t, usage.Suggestion, "slotask use project")
}

func TestParseDueDate(t *testing.T) {
	due, err := ParseDueDate("2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, 2025, due.Year())
	assert.Equal(t, 31, due.Day())

	_, err = ParseDueDate("31/03/2025")
	var usage *UsageError
	assert.ErrorAs(t, err, &usage)
}
