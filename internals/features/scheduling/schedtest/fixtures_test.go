// file: internals/features/scheduling/schedtest/fixtures_test.go
package schedtest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	coursemodel "campusku_backend/internals/features/scheduling/courses/model"
	groupmodel "campusku_backend/internals/features/scheduling/groups/model"
	resourcemodel "campusku_backend/internals/features/scheduling/resources/model"
	sessionmodel "campusku_backend/internals/features/scheduling/sessions/model"
	"campusku_backend/internals/features/scheduling/timetable"
)

var officeHours = timetable.Window{StartHour: 8, StartMinute: 30, EndHour: 17, EndMinute: 45}

var emptyWeek = datatypes.JSON(`{}`)

func seedSession(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()
	m := sessionmodel.SessionModel{
		SessionName:    name,
		SessionDetails: datatypes.JSON(`{}`),
		SessionTags:    pq.StringArray{},
	}
	require.NoError(t, db.Create(&m).Error)
	return m.SessionID
}

func seedStudent(t *testing.T, db *gorm.DB, sessionID uuid.UUID, digitalID, name string) uuid.UUID {
	t.Helper()
	m := resourcemodel.StudentModel{
		StudentSessionID: sessionID,
		StudentDigitalID: digitalID,
		StudentName:      name,
		StudentWindow:    officeHours,
		StudentTimetable: emptyWeek,
	}
	require.NoError(t, db.Create(&m).Error)
	return m.StudentID
}

func seedFaculty(t *testing.T, db *gorm.DB, sessionID uuid.UUID, name, shortForm string) uuid.UUID {
	t.Helper()
	m := resourcemodel.FacultyModel{
		FacultySessionID: sessionID,
		FacultyName:      name,
		FacultyShortForm: shortForm,
		FacultyWindow:    officeHours,
		FacultyTimetable: emptyWeek,
	}
	require.NoError(t, db.Create(&m).Error)
	return m.FacultyID
}

func seedHall(t *testing.T, db *gorm.DB, sessionID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	m := resourcemodel.HallModel{
		HallSessionID: sessionID,
		HallName:      name,
		HallBuilding:  "Block A",
		HallWindow:    officeHours,
		HallTimetable: emptyWeek,
	}
	require.NoError(t, db.Create(&m).Error)
	return m.HallID
}

func seedStudentGroup(t *testing.T, db *gorm.DB, sessionID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	m := groupmodel.StudentGroupModel{
		StudentGroupSessionID: sessionID,
		StudentGroupName:      name,
		StudentGroupWindow:    officeHours,
		StudentGroupTimetable: emptyWeek,
	}
	require.NoError(t, db.Create(&m).Error)
	return m.StudentGroupID
}

func seedFacultyGroup(t *testing.T, db *gorm.DB, sessionID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	m := groupmodel.FacultyGroupModel{
		FacultyGroupSessionID: sessionID,
		FacultyGroupName:      name,
		FacultyGroupWindow:    officeHours,
		FacultyGroupTimetable: emptyWeek,
	}
	require.NoError(t, db.Create(&m).Error)
	return m.FacultyGroupID
}

func seedHallGroup(t *testing.T, db *gorm.DB, sessionID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	m := groupmodel.HallGroupModel{
		HallGroupSessionID: sessionID,
		HallGroupName:      name,
		HallGroupWindow:    officeHours,
		HallGroupTimetable: emptyWeek,
	}
	require.NoError(t, db.Create(&m).Error)
	return m.HallGroupID
}

func seedCourse(t *testing.T, db *gorm.DB, sessionID uuid.UUID, code, name string) uuid.UUID {
	t.Helper()
	m := coursemodel.CourseModel{
		CourseSessionID:     sessionID,
		CourseCode:          code,
		CourseName:          name,
		CourseTotalSessions: 12,
	}
	require.NoError(t, db.Create(&m).Error)
	return m.CourseID
}
