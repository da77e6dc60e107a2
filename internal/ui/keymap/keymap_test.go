package keymap

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"

	"github.com/servicecordiale/cordiale/internal/ui/layout"
)

func TestDefaultBindings(t *testing.T) {
	km := Default()

	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"left arrow", tea.KeyPressMsg{Code: tea.KeyLeft}, km.Prev},
		{"h", tea.KeyPressMsg{Code: 'h', Text: "h"}, km.Prev},
		{"right arrow", tea.KeyPressMsg{Code: tea.KeyRight}, km.Next},
		{"l", tea.KeyPressMsg{Code: 'l', Text: "l"}, km.Next},
		{"digit", tea.KeyPressMsg{Code: '3', Text: "3"}, km.GoTo},
		{"tab", tea.KeyPressMsg{Code: tea.KeyTab}, km.NextSection},
		{"enter", tea.KeyPressMsg{Code: tea.KeyEnter}, km.Activate},
		{"t", tea.KeyPressMsg{Code: 't', Text: "t"}, km.ToggleTheme},
		{"esc", tea.KeyPressMsg{Code: tea.KeyEscape}, km.Back},
		{"ctrl+c", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, km.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding), "key %q", tt.msg.String())
		})
	}

	assert.False(t, key.Matches(tea.KeyPressMsg{Code: '0', Text: "0"}, km.GoTo))
}

func TestDigit(t *testing.T) {
	i, ok := Digit(tea.KeyPressMsg{Code: '1', Text: "1"})
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = Digit(tea.KeyPressMsg{Code: '9', Text: "9"})
	assert.True(t, ok)
	assert.Equal(t, 8, i)

	_, ok = Digit(tea.KeyPressMsg{Code: '0', Text: "0"})
	assert.False(t, ok)
	_, ok = Digit(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.False(t, ok)
}

func TestHintsSkipsDisabled(t *testing.T) {
	km := Default()
	km.GoTo.SetEnabled(false)

	hints := Hints(km.Prev, km.GoTo, km.Quit)
	assert.Equal(t, []layout.KeyHint{
		{Key: "←/h", Description: "précédent"},
		{Key: "ctrl+c", Description: "quitter"},
	}, hints)
}
