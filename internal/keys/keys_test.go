package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_HelpTextPresent(t *testing.T) {
	for _, b := range DefaultKeyMap().Bindings() {
		h := b.Help()
		require.NotEmpty(t, h.Key, "binding %v missing help key", b.Keys())
		require.NotEmpty(t, h.Desc, "binding %v missing help desc", b.Keys())
	}
}

// Digits and '-' are typed into the timestamp fields, so no binding may claim them.
func TestDefaultKeyMap_DoesNotShadowNumericInput(t *testing.T) {
	km := DefaultKeyMap()
	for _, r := range "0123456789-" {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		for _, b := range km.Bindings() {
			require.False(t, key.Matches(msg, b), "%q is bound to %v", r, b.Keys())
		}
	}
}

func TestDefaultKeyMap_NoDuplicateKeys(t *testing.T) {
	seen := map[string][]string{}
	for _, b := range DefaultKeyMap().Bindings() {
		for _, k := range b.Keys() {
			seen[k] = append(seen[k], b.Help().Desc)
		}
	}
	for k, descs := range seen {
		require.Len(t, descs, 1, "key %q bound more than once: %v", k, descs)
	}
}

func TestDefaultKeyMap_KeyAssignments(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Quit uses q and ctrl+c", km.Quit, []string{"q", "ctrl+c"}},
		{"Delete uses d and x", km.Delete, []string{"d", "x"}},
		{"Presets use brackets", km.NextPreset, []string{"]"}},
		{"NextField uses tab", km.NextField, []string{"tab"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestShortHelp_SubsetOfFull(t *testing.T) {
	km := DefaultKeyMap()
	full := map[string]bool{}
	for _, b := range km.Bindings() {
		full[b.Help().Key] = true
	}
	for _, b := range km.ShortHelp() {
		require.True(t, full[b.Help().Key], "%s not in full help", b.Help().Key)
	}
}
