package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Messages(t *testing.T) {
	assert.Contains(t, ErrMissingResearchService.Error(), "research service")
	assert.Contains(t, ErrNilPorts.Error(), "ports")
	assert.NotEqual(t, ErrMissingResearchService.Error(), ErrNilPorts.Error())
}
