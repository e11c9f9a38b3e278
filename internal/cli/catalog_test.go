package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/simgroup/internal/testutil"
)

func importRuns(t *testing.T) string {
	t.Helper()

	db := filepath.Join(t.TempDir(), "runs.db")
	stdout, _, err := execute(t, "import", "testdata/runs.yaml", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "imported 4 simulations (3 started) into collection scan\n", stdout)
	return db
}

func listNames(t *testing.T, args ...string) []string {
	t.Helper()

	stdout, _, err := execute(t, append([]string{"--format", "json", "list"}, args...)...)
	require.NoError(t, err)

	var resp struct {
		Data ListResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))

	names := make([]string, len(resp.Data.Simulations))
	for i, e := range resp.Data.Simulations {
		names[i] = e.Name
	}
	return names
}

func TestImportCommand_RequiresDB(t *testing.T) {
	stdout, _, err := execute(t, "import", "testdata/runs.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E007]: --db is required")
}

func TestImportCommand_IsIdempotent(t *testing.T) {
	db := importRuns(t)

	_, _, err := execute(t, "import", "testdata/runs.yaml", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, []string{"sim1", "sim2", "sim10", "sim11"}, listNames(t, "--db", db))
}

func TestListCommand_Golden(t *testing.T) {
	db := importRuns(t)

	stdout, _, err := execute(t, "list", "--db", db)
	require.NoError(t, err)
	testutil.AssertGolden(t, "list", []byte(stdout))
}

func TestListCommand_Filters(t *testing.T) {
	db := importRuns(t)

	assert.Equal(t, []string{"sim1", "sim2", "sim11"}, listNames(t, "--db", db, "--only-started"))
	assert.Equal(t, []string{"sim1", "sim10", "sim11"}, listNames(t, "--db", db, "--prefix", "sim1"))
	assert.Equal(t, []string{"sim2"}, listNames(t, "--db", db, "--prefix", "sim2"))
	assert.Equal(t, []string{"sim1", "sim2", "sim10", "sim11"}, listNames(t, "--db", db, "--collection", "scan"))
	assert.Empty(t, listNames(t, "--db", db, "--collection", "other"))
}

func TestListCommand_DBFromEnvironment(t *testing.T) {
	db := importRuns(t)
	t.Setenv("SIMGROUP_DB", db)

	assert.Len(t, listNames(t), 4)
}

func TestGroupCommand_FromCatalogMatchesManifest(t *testing.T) {
	db := importRuns(t)

	for _, args := range [][]string{
		{"--by", "nxgrid"},
		{"--by", "nxgrid", "--only-started"},
		{"--by", "Lz"},
	} {
		fromManifest, _, err := execute(t, append([]string{"group", "testdata/runs.yaml"}, args...)...)
		require.NoError(t, err)
		fromCatalog, _, err := execute(t, append([]string{"group", "--db", db}, args...)...)
		require.NoError(t, err)
		assert.Equal(t, fromManifest, fromCatalog, "%v", args)
	}
}

func TestRemoveCommand(t *testing.T) {
	db := importRuns(t)

	stdout, _, err := execute(t, "remove", "--db", db, "sim2", "ghost")
	require.NoError(t, err)
	assert.Equal(t, "removed sim2\nnot found ghost\n", stdout)
	assert.Equal(t, []string{"sim1", "sim10", "sim11"}, listNames(t, "--db", db))
}

func TestRemoveCommand_MissingCatalog(t *testing.T) {
	stdout, _, err := execute(t, "remove", "--db", filepath.Join(t.TempDir(), "absent.db"), "sim1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [E005]: catalog not found")
}
