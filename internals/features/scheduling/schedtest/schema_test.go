// file: internals/features/scheduling/schedtest/schema_test.go
package schedtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resourcemodel "campusku_backend/internals/features/scheduling/resources/model"
	"campusku_backend/internals/features/scheduling/timetable"
)

// Rows inserted outside the ORM must still land on the full-day window, not
// an inverted start==end one.
func TestWindowColumnDefaultsFavorFullDay(t *testing.T) {
	db := requireDB(t)

	sessionID := seedSession(t, db, "2026/2027")

	require.NoError(t, db.Exec(
		"INSERT INTO students (student_session_id, student_digital_id, student_name) VALUES (?, ?, ?)",
		sessionID, "S-0001", "Alia Rahman").Error)

	var got resourcemodel.StudentModel
	require.NoError(t, db.Where("student_digital_id = ?", "S-0001").First(&got).Error)

	assert.Equal(t, timetable.Window{EndHour: 23, EndMinute: 59}, got.StudentWindow)
	assert.NoError(t, got.StudentWindow.Validate())
}
