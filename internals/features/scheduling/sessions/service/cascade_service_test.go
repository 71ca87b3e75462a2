// file: internals/features/scheduling/sessions/service/cascade_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseservice "campusku_backend/internals/features/scheduling/courses/service"
)

func TestDeleteReportCounts(t *testing.T) {
	r := &DeleteReport{
		SessionID:               uuid.New(),
		EnrolledStudents:        3,
		EnrolledStudentGroups:   1,
		CompulsoryFacultyGroups: 4,
		CompulsoryHallGroups:    2,
		Courses:                 5,
		Students:                10,
	}

	counts := r.Counts()
	assert.Len(t, counts, 16, "one entry per cascade category")
	assert.Equal(t, int64(3), counts["enrolled_students"])
	assert.Equal(t, int64(5), counts["courses"])
	assert.Equal(t, int64(0), counts["hall_groups"])

	// the group-link identity the delete report must satisfy
	assert.Equal(t, int64(6), counts["compulsory_faculty_groups"]+counts["compulsory_hall_groups"])
}

func TestSetRelationCoversAllCourseJunctions(t *testing.T) {
	r := &DeleteReport{}
	for i, rel := range courseservice.AllRelations {
		r.setRelation(rel.Label, int64(i+1))
	}

	counts := r.Counts()
	for i, rel := range courseservice.AllRelations {
		require.Contains(t, counts, rel.Label)
		assert.Equal(t, int64(i+1), counts[rel.Label], rel.Label)
	}
}

func TestSetRelationIgnoresUnknownLabel(t *testing.T) {
	r := &DeleteReport{}
	r.setRelation("no_such_category", 99)
	for _, v := range r.Counts() {
		assert.Zero(t, v)
	}
}
