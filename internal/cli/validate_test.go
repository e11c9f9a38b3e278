package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	stdout, _, err := execute(t, "validate", "testdata/runs.yaml")
	require.NoError(t, err)
	assert.Equal(t, "✓ scan: 4 simulations (3 started)\n", stdout)
}

func TestValidateCommand_WithBy(t *testing.T) {
	stdout, _, err := execute(t, "validate", "testdata/runs.yaml", "--by", "nxgrid")
	require.NoError(t, err)
	assert.Equal(t, "✓ scan: 4 simulations (3 started)\n✓ groups by nxgrid: 3\n", stdout)
}

func TestValidateCommand_JSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "validate", "testdata/runs.yaml")
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ValidationResult{Valid: true, Collection: "scan", Simulations: 4, Started: 3}, resp.Data)
}

func TestValidateCommand_Failures(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
		wantExit int
	}{
		{"invalid entry", []string{"validate", "testdata/bad_lxyz.yaml"}, ErrCodeInvalidManifest, ExitFailure},
		{"unsupported type", []string{"validate", "testdata/golden/list.golden"}, ErrCodeUnsupported, ExitFailure},
		{"inconsistent grouping", []string{"validate", "testdata/ragged.yaml", "--by", "seed"}, ErrCodeInconsistent, ExitFailure},
		{"unreadable", []string{"validate", "testdata/absent.yaml"}, ErrCodeUnreadable, ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"--format", "json"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestValidateCommand_RequiresOneArg(t *testing.T) {
	_, _, err := execute(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
