package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Help(t *testing.T) {
	e := setupTestServices(t)

	require.NoError(t, e.run("tui", "--help"))

	out := e.out.String()
	assert.Contains(t, out, "interactive terminal user interface")
	assert.Contains(t, out, "Toggle help")
}

func TestTUICmd_NotConfigured(t *testing.T) {
	e := setupTestServices(t)
	SetServices(nil)

	err := e.run("tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "research service is required")
}
