package endpoint

import (
	"fmt"
	"strconv"
	"strings"
)

// Preset is a named offset.
type Preset struct {
	Name    string
	Seconds int64
}

// Presets lists the offsets offered for head and tail, shortest first.
var Presets = []Preset{
	{"DAY", 86400},
	{"WEEK", 604800},
	{"12 DAYS", 1036800},
	{"13 DAYS", 1123200},
	{"2 WEEKS", 1209600},
	{"15 DAYS", 1296000},
	{"28 DAYS", 2419200},
	{"29 DAYS", 2505600},
	{"30 DAYS", 2592000},
	{"31 DAYS", 2678400},
	{"365 DAYS", 31536000},
}

// LookupPreset finds a preset by name, ignoring case and surrounding space.
func LookupPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// ParseOffset reads a preset name or a signed integer number of seconds. An
// empty string yields None.
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None(), nil
	}
	if p, ok := LookupPreset(s); ok {
		return Some(p.Seconds), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return None(), fmt.Errorf("offset %q is neither a preset nor an integer: %w", s, err)
	}
	return Some(n), nil
}
