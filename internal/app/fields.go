package app

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/stampdelta/internal/endpoint"
	"github.com/zjrosen/stampdelta/internal/log"
)

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// numeric reports whether every rune may appear in a signed integer field.
func numeric(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

func (m Model) setFocus(f field) Model {
	m.focus = f
	for i := range m.inputs {
		if field(i) == f {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

// target returns the parsed target field.
func (m Model) target() (int64, bool) {
	n, err := strconv.ParseInt(m.inputs[fieldTarget].Value(), 10, 64)
	return n, err == nil
}

func (m *Model) setTarget(ts int64) {
	m.inputs[fieldTarget].SetValue(formatInt(ts))
	m.inputs[fieldTarget].CursorEnd()
}

// offset returns the parsed head or tail field. Unparseable text is unset.
func (m Model) offset(f field) endpoint.Offset {
	o, err := endpoint.ParseOffset(m.inputs[f].Value())
	if err != nil {
		return endpoint.None()
	}
	return o
}

// pair resolves head and tail around the current target.
func (m Model) pair() (endpoint.Pair, bool) {
	ts, ok := m.target()
	if !ok {
		return endpoint.Pair{}, false
	}
	return endpoint.ResolvePair(ts, m.offset(fieldHead), m.offset(fieldTail), m.anchor()), true
}

func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Load):
		if m.editing != nil && m.focus == fieldTarget {
			return m.commitEdit()
		}
		return m, nil
	case key.Matches(msg, m.keys.ClearOffset):
		m.inputs[m.focus].SetValue("")
		m.presets[m.focus] = -1
		return m, nil
	case key.Matches(msg, m.keys.Up):
		return m.nudgeOrCycle(1), nil
	case key.Matches(msg, m.keys.Down):
		return m.nudgeOrCycle(-1), nil
	case key.Matches(msg, m.keys.NextPreset):
		return m.cyclePreset(1), nil
	case key.Matches(msg, m.keys.PrevPreset):
		return m.cyclePreset(-1), nil
	}

	if msg.Type == tea.KeyRunes && !numeric(msg.Runes) {
		return m, nil
	}
	if msg.Type == tea.KeySpace {
		return m, nil
	}
	before := m.inputs[m.focus].Value()
	next, cmd := m.updateFocusedInput(msg)
	nm := next.(Model)
	if m.focus != fieldTarget && nm.inputs[m.focus].Value() != before {
		nm.presets[m.focus] = -1
	}
	return nm, cmd
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= fieldBookmarks {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// nudgeOrCycle moves the target by one second, or steps through the offset
// presets when an offset field is focused.
func (m Model) nudgeOrCycle(delta int) Model {
	if m.focus != fieldTarget {
		return m.cyclePreset(delta)
	}
	ts, ok := m.target()
	if !ok {
		return m
	}
	m.setTarget(endpoint.Nudge(ts, int64(delta)))
	return m
}

func (m Model) cyclePreset(delta int) Model {
	if m.focus != fieldHead && m.focus != fieldTail {
		return m
	}
	n := len(endpoint.Presets)
	idx := m.presets[m.focus]
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = ((idx+delta)%n + n) % n
	}
	p := endpoint.Presets[idx]
	m.presets[m.focus] = idx
	m.inputs[m.focus].SetValue(formatInt(p.Seconds))
	m.inputs[m.focus].CursorEnd()
	log.Debug(log.CatUI, "Preset selected", "field", int(m.focus), "preset", p.Name)
	return m
}

// presetName returns the name of the preset shown in f, if any.
func (m Model) presetName(f field) string {
	if idx := m.presets[f]; idx >= 0 && idx < len(endpoint.Presets) {
		return endpoint.Presets[idx].Name
	}
	return ""
}
