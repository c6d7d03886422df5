package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key     string
		binding string
		want    bool
	}{
		{"enter", "submit", true},
		{"ctrl+c", "quit", true},
		{"q", "quit", true},
		{"/", "edit", true},
		{"esc", "edit", true},
		{"j", "down", true},
		{"k", "up", true},
		{"pgdown", "pagedown", true},
		{"x", "quit", false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.binding, func(t *testing.T) {
			b := map[string]bool{
				"submit":   Matches(tt.key, km.Submit),
				"quit":     Matches(tt.key, km.Quit),
				"edit":     Matches(tt.key, km.Edit),
				"down":     Matches(tt.key, km.Down),
				"up":       Matches(tt.key, km.Up),
				"pagedown": Matches(tt.key, km.PageDown),
			}
			assert.Equal(t, tt.want, b[tt.binding])
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.InputHelp(), 2)
	assert.Len(t, km.ReportHelp(), 4)
	assert.Len(t, km.FullHelp(), 3)
	assert.Equal(t, "research", km.Submit.Help().Desc)
}
