//go:build linux || darwin

package launch

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCodeFromErrorPropagatesTheChildStatus(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("sh", "-c", "exit 3")
	err := cmd.Run()
	require.Error(t, err)

	assert.Equal(t, 3, ExitCodeFromError(err))
}
