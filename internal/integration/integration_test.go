package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirkit/internal/fserr"
	"github.com/idelchi/dirkit/internal/integration"
)

func TestRender_Zsh(t *testing.T) {
	script, err := integration.Render("zsh", "/usr/local/bin/dirkit")
	require.NoError(t, err)

	assert.Contains(t, script, "_dirkit_bin='/usr/local/bin/dirkit'")
	assert.Contains(t, script, `rmrf()   { "$_dirkit_bin" rm "$@"; }`)
	assert.Contains(t, script, "completion zsh")
	assert.NotContains(t, script, "completion bash")
}

func TestRender_Bash(t *testing.T) {
	script, err := integration.Render("bash", "/opt/dirkit")
	require.NoError(t, err)

	assert.Contains(t, script, "# dirkit shell integration (bash)")
	assert.Contains(t, script, "completion bash")
}

func TestRender_QuotesBinary(t *testing.T) {
	script, err := integration.Render("zsh", "/home/o'brien/bin/dirkit")
	require.NoError(t, err)

	assert.Contains(t, script, `_dirkit_bin='/home/o'\''brien/bin/dirkit'`)
}

func TestRender_UnsupportedShell(t *testing.T) {
	_, err := integration.Render("fish", "/bin/dirkit")

	assert.ErrorIs(t, err, fserr.ErrInvalidArgument)
}
