package link

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	slotaskcli "github.com/thenoetrevino/slotask/internal/cli"
	"github.com/thenoetrevino/slotask/internal/models"
	"github.com/thenoetrevino/slotask/internal/testutil/cli"
)

func TestLinkLifecycle(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	project := strconv.Itoa(cli.CreateTestProject(t, db, "P"))

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
		"docs.example.com/guide", "--project", project, "--json",
	})
	require.NoError(t, err)
	var l models.Link
	cli.JSONData(t, output, &l)
	assert.Equal(t, "https://docs.example.com/guide", l.URL)
	assert.Equal(t, "docs.example.com", l.Title, "title defaults to the host")

	output, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--project", project, "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(l.ID)+"\n", output)

	_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{strconv.Itoa(l.ID)})
	require.NoError(t, err)

	_, err = cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{strconv.Itoa(l.ID)})
	assert.Equal(t, slotaskcli.ExitNotFound, slotaskcli.ExitCode(err))
}

func TestCreateLink_InvalidURL(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	project := strconv.Itoa(cli.CreateTestProject(t, db, "P"))

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"ftp://files.example.com", "--project", project, "--json"})
	assert.Equal(t, slotaskcli.ExitValidation, slotaskcli.ExitCode(err))
	assert.Equal(t, "VALIDATION_ERROR", cli.JSONErrorCode(t, output))
}
