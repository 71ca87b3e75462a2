// file: internals/features/scheduling/schedtest/cascade_test.go
package schedtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseservice "campusku_backend/internals/features/scheduling/courses/service"
	"campusku_backend/internals/features/scheduling/errs"
	groupservice "campusku_backend/internals/features/scheduling/groups/service"
	sessionservice "campusku_backend/internals/features/scheduling/sessions/service"
)

func TestDeleteSessionReportsExactCounts(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	sessionID := seedSession(t, db, "2026/2027")

	s1 := seedStudent(t, db, sessionID, "S-0001", "Alia Rahman")
	s2 := seedStudent(t, db, sessionID, "S-0002", "Budi Santoso")
	f1 := seedFaculty(t, db, sessionID, "Dr. Siti Nurhaliza", "SN")
	h1 := seedHall(t, db, sessionID, "Main Hall")

	sg := seedStudentGroup(t, db, sessionID, "CS Year 1")
	fg := seedFacultyGroup(t, db, sessionID, "Math Dept")
	hg := seedHallGroup(t, db, sessionID, "Lecture Halls")

	_, err := groupservice.AddMembers(ctx, db, groupservice.StudentKind, sg, []uuid.UUID{s1, s2})
	require.NoError(t, err)
	_, err = groupservice.AddMembers(ctx, db, groupservice.FacultyKind, fg, []uuid.UUID{f1})
	require.NoError(t, err)
	_, err = groupservice.AddMembers(ctx, db, groupservice.HallKind, hg, []uuid.UUID{h1})
	require.NoError(t, err)

	courseID := seedCourse(t, db, sessionID, "CS101", "Algorithms")
	links := []struct {
		rel courseservice.RelKind
		ids []uuid.UUID
	}{
		{courseservice.RelEnrolledStudents, []uuid.UUID{s1, s2}},
		{courseservice.RelEnrolledStudentGroups, []uuid.UUID{sg}},
		{courseservice.RelCompulsoryFaculty, []uuid.UUID{f1}},
		{courseservice.RelCompulsoryHalls, []uuid.UUID{h1}},
		{courseservice.RelCompulsoryFacultyGroups, []uuid.UUID{fg}},
		{courseservice.RelCompulsoryHallGroups, []uuid.UUID{hg}},
	}
	for _, l := range links {
		res, err := courseservice.AddLinks(ctx, db, l.rel, courseID, l.ids)
		require.NoError(t, err)
		require.Len(t, res.Added, len(l.ids))
	}

	// a sibling session that the cascade must not touch
	otherID := seedSession(t, db, "2027/2028")
	seedStudent(t, db, otherID, "S-0900", "Citra Dewi")

	// row counts before the cascade are the expected report
	preLinks := map[string]int64{}
	for _, l := range links {
		preLinks[l.rel.Label] = tableCount(t, db, l.rel.Table)
	}

	report, err := sessionservice.DeleteSession(ctx, db, sessionID)
	require.NoError(t, err)

	assert.Equal(t, sessionID, report.SessionID)
	assert.Equal(t, preLinks["enrolled_students"], report.EnrolledStudents)
	assert.Equal(t, preLinks["enrolled_student_groups"], report.EnrolledStudentGroups)
	assert.Equal(t, preLinks["compulsory_faculty"], report.CompulsoryFaculty)
	assert.Equal(t, preLinks["compulsory_halls"], report.CompulsoryHalls)
	assert.Equal(t, preLinks["compulsory_faculty_groups"], report.CompulsoryFacultyGroups)
	assert.Equal(t, preLinks["compulsory_hall_groups"], report.CompulsoryHallGroups)
	assert.EqualValues(t, 1, report.Courses)
	assert.EqualValues(t, 2, report.StudentGroupMembers)
	assert.EqualValues(t, 1, report.FacultyGroupMembers)
	assert.EqualValues(t, 1, report.HallGroupMembers)
	assert.EqualValues(t, 2, report.Students)
	assert.EqualValues(t, 1, report.Faculty)
	assert.EqualValues(t, 1, report.Halls)
	assert.EqualValues(t, 1, report.StudentGroups)
	assert.EqualValues(t, 1, report.FacultyGroups)
	assert.EqualValues(t, 1, report.HallGroups)

	ok, err := sessionservice.SessionExists(ctx, db, sessionID)
	require.NoError(t, err)
	assert.False(t, ok)

	for _, table := range []string{
		"course_enrolled_students", "course_enrolled_student_groups",
		"course_compulsory_faculty", "course_compulsory_halls",
		"course_compulsory_faculty_groups", "course_compulsory_hall_groups",
		"student_group_members", "faculty_group_members", "hall_group_members",
	} {
		assert.EqualValues(t, 0, tableCount(t, db, table), table)
	}

	ok, err = sessionservice.SessionExists(ctx, db, otherID)
	require.NoError(t, err)
	assert.True(t, ok, "sibling session must survive")

	var alive int64
	require.NoError(t, db.Table("students").
		Where("student_deleted_at IS NULL").Count(&alive).Error)
	assert.EqualValues(t, 1, alive, "only the sibling's student stays alive")
}

func TestDeleteSessionUnknownID(t *testing.T) {
	db := requireDB(t)

	_, err := sessionservice.DeleteSession(context.Background(), db, uuid.New())
	require.ErrorIs(t, err, errs.ErrSessionNotFound)
}

func TestSessionRenameKeepsOwnName(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	sessionID := seedSession(t, db, "2026/2027")

	require.NoError(t, sessionservice.EnsureNameFree(ctx, db, "2026/2027", &sessionID),
		"renaming a session to its current name is a no-op")

	var conflict *errs.ConflictError
	require.ErrorAs(t, sessionservice.EnsureNameFree(ctx, db, "2026/2027", nil), &conflict)
}
