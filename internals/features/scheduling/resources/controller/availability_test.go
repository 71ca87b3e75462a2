// file: internals/features/scheduling/resources/controller/availability_test.go
package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusku_backend/internals/features/scheduling/timetable"
)

func workdayWindow() timetable.Window {
	return timetable.Window{StartHour: 8, EndHour: 17}
}

func TestCheckAvailability(t *testing.T) {
	t.Run("valid pair encodes", func(t *testing.T) {
		week := timetable.Week{
			"monday": {{StartHour: 9, EndHour: 10}},
		}
		raw, err := checkAvailability(workdayWindow(), week)
		require.NoError(t, err)
		assert.NotEmpty(t, raw)
	})

	t.Run("slot outside window rejected", func(t *testing.T) {
		week := timetable.Week{
			"monday": {{StartHour: 6, EndHour: 7}},
		}
		_, err := checkAvailability(workdayWindow(), week)
		var oow *timetable.OutOfWindowError
		assert.ErrorAs(t, err, &oow)
	})

	t.Run("nil timetable treated as empty", func(t *testing.T) {
		raw, err := checkAvailability(workdayWindow(), nil)
		require.NoError(t, err)
		assert.NotEmpty(t, raw)
	})
}

func TestRevalidate(t *testing.T) {
	win := workdayWindow()
	stored, err := checkAvailability(win, timetable.Week{
		"tuesday": {{StartHour: 9, EndHour: 11}},
	})
	require.NoError(t, err)

	t.Run("nothing touched, nothing checked", func(t *testing.T) {
		raw, err := revalidate(win, stored, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("window shrink must still contain stored slots", func(t *testing.T) {
		tight := timetable.Window{StartHour: 10, EndHour: 17}
		_, err := revalidate(win, stored, &tight, nil)
		var oow *timetable.OutOfWindowError
		assert.ErrorAs(t, err, &oow)
	})

	t.Run("new timetable replaces wholesale", func(t *testing.T) {
		next := timetable.Week{
			"friday": {{StartHour: 13, EndHour: 15}},
		}
		raw, err := revalidate(win, stored, nil, &next)
		require.NoError(t, err)
		assert.NotEmpty(t, raw)
	})

	t.Run("new window and timetable checked together", func(t *testing.T) {
		tight := timetable.Window{StartHour: 14, EndHour: 16}
		next := timetable.Week{
			"friday": {{StartHour: 13, EndHour: 15}},
		}
		_, err := revalidate(win, stored, &tight, &next)
		var oow *timetable.OutOfWindowError
		assert.ErrorAs(t, err, &oow)
	})
}
