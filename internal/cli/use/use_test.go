package use

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	slotaskcli "github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/testutil/cli"
)

func TestUseProject(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	projectID := cli.CreateTestProject(t, db, "Roadmap")

	stdout, stderr, err := cli.ExecuteCLICommandWithStderr(t, app, ProjectCmd(), []string{strconv.Itoa(projectID)})
	require.NoError(t, err)
	assert.Equal(t, "export SLOTASK_PROJECT="+strconv.Itoa(projectID)+"\n", stdout)
	assert.Contains(t, stderr, "Roadmap")

	stdout, err = cli.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--clear"})
	require.NoError(t, err)
	assert.Equal(t, "unset SLOTASK_PROJECT\n", stdout)

	t.Setenv(slotaskcli.EnvProject, strconv.Itoa(projectID))
	stdout, err = cli.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--show"})
	require.NoError(t, err)
	assert.Contains(t, stdout, "Roadmap")
}

func TestUseProject_Errors(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, ProjectCmd(), nil)
	assert.Equal(t, slotaskcli.ExitUsage, slotaskcli.ExitCode(err))

	_, stderr, err := cli.ExecuteCLICommandWithStderr(t, app, ProjectCmd(), []string{"42"})
	assert.Equal(t, slotaskcli.ExitNotFound, slotaskcli.ExitCode(err))
	assert.Contains(t, stderr, "project not found")
}
