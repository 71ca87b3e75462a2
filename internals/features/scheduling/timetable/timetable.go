// file: internals/features/scheduling/timetable/timetable.go
package timetable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

/* =======================================================
   WEEKDAYS — canonical key set (lowercase english)
   ======================================================= */

var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

/* =======================================================
   SLOT & WINDOW
   ======================================================= */

// Slot is one occupied block inside a day, [start, end) in wall-clock minutes.
type Slot struct {
	StartHour   int    `json:"start_hour"`
	StartMinute int    `json:"start_minute"`
	EndHour     int    `json:"end_hour"`
	EndMinute   int    `json:"end_minute"`
	Label       string `json:"label,omitempty"`
}

func (s Slot) StartMinutes() int { return s.StartHour*60 + s.StartMinute }
func (s Slot) EndMinutes() int   { return s.EndHour*60 + s.EndMinute }

// Overlaps uses half-open comparison: A and B overlap iff
// A.start < B.end && B.start < A.end.
func (s Slot) Overlaps(o Slot) bool {
	return s.StartMinutes() < o.EndMinutes() && o.StartMinutes() < s.EndMinutes()
}

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", s.StartHour, s.StartMinute, s.EndHour, s.EndMinute)
}

// Window is a working-hours bound; every slot of the owning entity must fall
// inside [start, end).
type Window struct {
	StartHour   int `json:"start_hour"   gorm:"column:start_hour;not null;default:0"`
	StartMinute int `json:"start_minute" gorm:"column:start_minute;not null;default:0"`
	EndHour     int `json:"end_hour"     gorm:"column:end_hour;not null;default:23"`
	EndMinute   int `json:"end_minute"   gorm:"column:end_minute;not null;default:59"`
}

func (w Window) StartMinutes() int { return w.StartHour*60 + w.StartMinute }
func (w Window) EndMinutes() int   { return w.EndHour*60 + w.EndMinute }

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", w.StartHour, w.StartMinute, w.EndHour, w.EndMinute)
}

// Validate checks hour/minute ranges and start < end.
func (w Window) Validate() error {
	if w.StartHour < 0 || w.StartHour > 23 || w.EndHour < 0 || w.EndHour > 23 {
		return &WindowError{Window: w, Reason: "hour must be within [0,23]"}
	}
	if w.StartMinute < 0 || w.StartMinute > 59 || w.EndMinute < 0 || w.EndMinute > 59 {
		return &WindowError{Window: w, Reason: "minute must be within [0,59]"}
	}
	if w.StartMinutes() >= w.EndMinutes() {
		return &WindowError{Window: w, Reason: "start must be before end"}
	}
	return nil
}

// Contains reports whether the whole slot lies inside the window.
func (w Window) Contains(s Slot) bool {
	return s.StartMinutes() >= w.StartMinutes() && s.EndMinutes() <= w.EndMinutes()
}

/* =======================================================
   WEEK — the timetable grid itself
   ======================================================= */

// Week maps each of the seven weekday keys to an ordered slot list. All seven
// keys are always present after Normalize, even when empty.
type Week map[string][]Slot

// EmptyWeek returns a week with all seven days present and no slots.
func EmptyWeek() Week {
	w := make(Week, len(Weekdays))
	for _, d := range Weekdays {
		w[d] = []Slot{}
	}
	return w
}

// Normalize lowercases day keys, fills missing days, and sorts each day's
// slots by start time. Unknown keys are reported, not dropped.
func (w Week) Normalize() (Week, error) {
	out := EmptyWeek()
	for day, slots := range w {
		key := strings.ToLower(strings.TrimSpace(day))
		if !IsWeekday(key) {
			return nil, &UnknownDayError{Day: day}
		}
		cp := make([]Slot, len(slots))
		copy(cp, slots)
		sort.SliceStable(cp, func(i, j int) bool {
			return cp[i].StartMinutes() < cp[j].StartMinutes()
		})
		out[key] = cp
	}
	return out, nil
}

// Validate checks every slot against the owning entity's window and rejects
// same-day overlaps. The week must already be normalized.
func Validate(w Week, win Window) error {
	if err := win.Validate(); err != nil {
		return err
	}
	for _, day := range Weekdays {
		slots := w[day]
		for i, s := range slots {
			if s.StartMinutes() >= s.EndMinutes() {
				return &OutOfWindowError{Day: day, Index: i, Slot: s, Window: win}
			}
			if s.StartHour < 0 || s.StartHour > 23 || s.EndHour < 0 || s.EndHour > 23 ||
				s.StartMinute < 0 || s.StartMinute > 59 || s.EndMinute < 0 || s.EndMinute > 59 {
				return &OutOfWindowError{Day: day, Index: i, Slot: s, Window: win}
			}
			if !win.Contains(s) {
				return &OutOfWindowError{Day: day, Index: i, Slot: s, Window: win}
			}
		}
		for i := 0; i < len(slots); i++ {
			for j := i + 1; j < len(slots); j++ {
				if slots[i].Overlaps(slots[j]) {
					return &OverlapError{Day: day, A: slots[i], B: slots[j]}
				}
			}
		}
	}
	return nil
}

/* =======================================================
   JSONB BRIDGE (model columns are datatypes.JSON)
   ======================================================= */

// Decode parses a timetable JSONB column. NULL / empty decodes to an empty
// normalized week.
func Decode(raw datatypes.JSON) (Week, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return EmptyWeek(), nil
	}
	var w Week
	if err := sonic.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("timetable: decode: %w", err)
	}
	return w.Normalize()
}

func Encode(w Week) (datatypes.JSON, error) {
	if w == nil {
		w = EmptyWeek()
	}
	b, err := sonic.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("timetable: encode: %w", err)
	}
	return datatypes.JSON(b), nil
}
