// file: internals/features/scheduling/timetable/timetable_test.go
package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func slot(sh, sm, eh, em int) Slot {
	return Slot{StartHour: sh, StartMinute: sm, EndHour: eh, EndMinute: em}
}

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		win     Window
		wantErr bool
	}{
		{"ok", Window{8, 0, 20, 0}, false},
		{"full day", Window{0, 0, 23, 59}, false},
		{"start equals end", Window{8, 30, 8, 30}, true},
		{"start after end", Window{18, 0, 8, 0}, true},
		{"hour out of range", Window{24, 0, 25, 0}, true},
		{"negative hour", Window{-1, 0, 10, 0}, true},
		{"minute out of range", Window{8, 60, 20, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.win.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlotOverlapsHalfOpen(t *testing.T) {
	a := slot(8, 0, 10, 0)

	// touching boundaries do not overlap
	assert.False(t, a.Overlaps(slot(10, 0, 12, 0)))
	assert.False(t, a.Overlaps(slot(6, 0, 8, 0)))

	// any shared interior minute does
	assert.True(t, a.Overlaps(slot(9, 59, 11, 0)))
	assert.True(t, a.Overlaps(slot(7, 0, 8, 1)))
	assert.True(t, a.Overlaps(slot(8, 30, 9, 30))) // contained
	assert.True(t, a.Overlaps(slot(7, 0, 11, 0)))  // containing
	assert.True(t, a.Overlaps(a))
}

func TestWeekNormalize(t *testing.T) {
	w := Week{
		"Monday": {slot(14, 0, 15, 0), slot(8, 0, 9, 0)},
	}
	n, err := w.Normalize()
	require.NoError(t, err)

	assert.Len(t, n, 7, "all seven days present")
	for _, d := range Weekdays {
		_, ok := n[d]
		assert.True(t, ok, d)
	}
	require.Len(t, n["monday"], 2)
	assert.Equal(t, 8, n["monday"][0].StartHour, "slots sorted by start")

	_, err = Week{"funday": {}}.Normalize()
	var ude *UnknownDayError
	assert.ErrorAs(t, err, &ude)
}

func TestValidate(t *testing.T) {
	win := Window{8, 0, 20, 0}

	ok := func(w Week) Week {
		n, err := w.Normalize()
		require.NoError(t, err)
		return n
	}

	t.Run("empty week passes", func(t *testing.T) {
		assert.NoError(t, Validate(EmptyWeek(), win))
	})

	t.Run("slots within window pass", func(t *testing.T) {
		w := ok(Week{
			"monday":  {slot(8, 0, 10, 0), slot(10, 0, 12, 0)},
			"tuesday": {slot(19, 0, 20, 0)},
		})
		assert.NoError(t, Validate(w, win))
	})

	t.Run("slot before window start fails", func(t *testing.T) {
		w := ok(Week{"monday": {slot(7, 30, 9, 0)}})
		var oow *OutOfWindowError
		require.ErrorAs(t, Validate(w, win), &oow)
		assert.Equal(t, "monday", oow.Day)
	})

	t.Run("slot past window end fails", func(t *testing.T) {
		w := ok(Week{"friday": {slot(19, 30, 20, 1)}})
		var oow *OutOfWindowError
		assert.ErrorAs(t, Validate(w, win), &oow)
	})

	t.Run("inverted slot fails", func(t *testing.T) {
		w := ok(Week{"monday": {slot(12, 0, 10, 0)}})
		var oow *OutOfWindowError
		assert.ErrorAs(t, Validate(w, win), &oow)
	})

	t.Run("same-day overlap fails", func(t *testing.T) {
		w := ok(Week{"wednesday": {slot(9, 0, 11, 0), slot(10, 30, 12, 0)}})
		var ove *OverlapError
		require.ErrorAs(t, Validate(w, win), &ove)
		assert.Equal(t, "wednesday", ove.Day)
	})

	t.Run("same slot on different days passes", func(t *testing.T) {
		w := ok(Week{
			"monday":  {slot(9, 0, 11, 0)},
			"tuesday": {slot(9, 0, 11, 0)},
		})
		assert.NoError(t, Validate(w, win))
	})

	t.Run("invalid window rejected up front", func(t *testing.T) {
		var we *WindowError
		assert.ErrorAs(t, Validate(EmptyWeek(), Window{20, 0, 8, 0}), &we)
	})
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	w, err := Decode(nil)
	require.NoError(t, err)
	assert.Len(t, w, 7, "nil column decodes to empty week")

	w, err = Decode(datatypes.JSON(`null`))
	require.NoError(t, err)
	assert.Len(t, w, 7)

	src := Week{"monday": {slot(8, 0, 9, 30)}}
	n, err := src.Normalize()
	require.NoError(t, err)

	raw, err := Encode(n)
	require.NoError(t, err)

	back, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, n, back)

	_, err = Decode(datatypes.JSON(`{"noday": []}`))
	assert.Error(t, err)
}
