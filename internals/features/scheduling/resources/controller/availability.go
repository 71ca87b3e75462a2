// file: internals/features/scheduling/resources/controller/availability.go
package controller

import (
	"gorm.io/datatypes"

	"campusku_backend/internals/features/scheduling/timetable"
)

// checkAvailability validates a window/timetable pair supplied on create and
// returns the encoded JSONB column value.
func checkAvailability(win timetable.Window, week timetable.Week) (datatypes.JSON, error) {
	norm, err := week.Normalize()
	if err != nil {
		return nil, err
	}
	if err := timetable.Validate(norm, win); err != nil {
		return nil, err
	}
	return timetable.Encode(norm)
}

// revalidate recombines what a partial update touched with what is stored and
// checks the effective pair. Only a supplied timetable yields a new column
// value; a window-only change is written by the update map but must still
// contain every stored slot.
func revalidate(curWin timetable.Window, curRaw datatypes.JSON, newWin *timetable.Window, newWeek *timetable.Week) (datatypes.JSON, error) {
	if newWin == nil && newWeek == nil {
		return nil, nil
	}

	win := curWin
	if newWin != nil {
		win = *newWin
	}

	var week timetable.Week
	if newWeek != nil {
		norm, err := newWeek.Normalize()
		if err != nil {
			return nil, err
		}
		week = norm
	} else {
		decoded, err := timetable.Decode(curRaw)
		if err != nil {
			return nil, err
		}
		week = decoded
	}

	if err := timetable.Validate(week, win); err != nil {
		return nil, err
	}

	if newWeek == nil {
		return nil, nil
	}
	return timetable.Encode(week)
}
