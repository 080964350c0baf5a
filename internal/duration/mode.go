package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which units of a Breakdown are rendered and how.
type Mode int

// The numeric values match the integers accepted on the command line and in
// config files.
const (
	ModeFull       Mode = 0  // years, months, days and the HHhMMmSSs block
	ModeUpToDays   Mode = 1  // years, months, days
	ModeUpToMonths Mode = 2  // years and months, days rounded into months
	ModeYears      Mode = 3  // years only
	ModeMonthsDays Mode = -1 // total months, days and time, always
	ModeDaysTime   Mode = -2 // total days and time, always
	ModeClock      Mode = -3 // total hours as H:MM:SS, always
)

// ErrUnknownMode is returned when a mode name or number is not recognised.
var ErrUnknownMode = errors.New("unknown duration mode")

// Modes lists every mode in display order.
var Modes = []Mode{
	ModeFull,
	ModeUpToDays,
	ModeUpToMonths,
	ModeYears,
	ModeMonthsDays,
	ModeDaysTime,
	ModeClock,
}

var modeNames = map[Mode]string{
	ModeFull:       "full",
	ModeUpToDays:   "days",
	ModeUpToMonths: "months",
	ModeYears:      "years",
	ModeMonthsDays: "months-days",
	ModeDaysTime:   "days-time",
	ModeClock:      "clock",
}

var modeDescriptions = map[Mode]string{
	ModeFull:       "years, months, days and a HHhMMmSSs block; zero units omitted",
	ModeUpToDays:   "years, months and days; zero units omitted",
	ModeUpToMonths: "years and months; more than 15 leftover days round up a month",
	ModeYears:      "whole years only",
	ModeMonthsDays: "total months, leftover days and HHhMMmSSs, always shown",
	ModeDaysTime:   "total days and HHhMMmSSs, always shown",
	ModeClock:      "total hours as H:MM:SS, always shown",
}

// String returns the mode's name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Description returns a one-line explanation of the mode's output.
func (m Mode) Description() string {
	return modeDescriptions[m]
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// Next returns the mode after m in display order, wrapping around.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeFull
}

// ModeFromInt maps the numeric form of a mode.
func ModeFromInt(n int) (Mode, error) {
	m := Mode(n)
	if !m.Valid() {
		return ModeFull, fmt.Errorf("%w: %d", ErrUnknownMode, n)
	}
	return m, nil
}

// ParseMode accepts either a mode name or its integer form.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ModeFull, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return ModeFromInt(n)
}
