// file: internals/features/scheduling/sessions/service/cascade_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseservice "campusku_backend/internals/features/scheduling/courses/service"
	"campusku_backend/internals/features/scheduling/errs"
	groupservice "campusku_backend/internals/features/scheduling/groups/service"
)

/* =======================================================
   Session Boundary & Cascade Manager

   Deleting a session removes everything beneath it in a
   fixed dependency order, inside ONE transaction, and
   reports an exact per-category count even where the
   storage layer could have cascaded on its own.
   ======================================================= */

// DeleteReport is the per-category count record of one cascade.
type DeleteReport struct {
	SessionID uuid.UUID `json:"session_id"`

	// course-level junctions, in strip order
	EnrolledStudents        int64 `json:"enrolled_students"`
	EnrolledStudentGroups   int64 `json:"enrolled_student_groups"`
	CompulsoryFacultyGroups int64 `json:"compulsory_faculty_groups"`
	CompulsoryHallGroups    int64 `json:"compulsory_hall_groups"`
	CompulsoryFaculty       int64 `json:"compulsory_faculty"`
	CompulsoryHalls         int64 `json:"compulsory_halls"`

	Courses int64 `json:"courses"`

	// group memberships
	StudentGroupMembers int64 `json:"student_group_members"`
	FacultyGroupMembers int64 `json:"faculty_group_members"`
	HallGroupMembers    int64 `json:"hall_group_members"`

	// primary entities
	Students      int64 `json:"students"`
	StudentGroups int64 `json:"student_groups"`
	Faculty       int64 `json:"faculty"`
	FacultyGroups int64 `json:"faculty_groups"`
	Halls         int64 `json:"halls"`
	HallGroups    int64 `json:"hall_groups"`
}

// Counts flattens the report for logging and CascadeError payloads.
func (r *DeleteReport) Counts() map[string]int64 {
	return map[string]int64{
		"enrolled_students":         r.EnrolledStudents,
		"enrolled_student_groups":   r.EnrolledStudentGroups,
		"compulsory_faculty_groups": r.CompulsoryFacultyGroups,
		"compulsory_hall_groups":    r.CompulsoryHallGroups,
		"compulsory_faculty":        r.CompulsoryFaculty,
		"compulsory_halls":          r.CompulsoryHalls,
		"courses":                   r.Courses,
		"student_group_members":     r.StudentGroupMembers,
		"faculty_group_members":     r.FacultyGroupMembers,
		"hall_group_members":        r.HallGroupMembers,
		"students":                  r.Students,
		"student_groups":            r.StudentGroups,
		"faculty":                   r.Faculty,
		"faculty_groups":            r.FacultyGroups,
		"halls":                     r.Halls,
		"hall_groups":               r.HallGroups,
	}
}

func (r *DeleteReport) setRelation(label string, n int64) {
	switch label {
	case "enrolled_students":
		r.EnrolledStudents = n
	case "enrolled_student_groups":
		r.EnrolledStudentGroups = n
	case "compulsory_faculty_groups":
		r.CompulsoryFacultyGroups = n
	case "compulsory_hall_groups":
		r.CompulsoryHallGroups = n
	case "compulsory_faculty":
		r.CompulsoryFaculty = n
	case "compulsory_halls":
		r.CompulsoryHalls = n
	}
}

// SessionExists reports whether the session is alive.
func SessionExists(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).
		Table("sessions").
		Where("session_id = ? AND session_deleted_at IS NULL", sessionID).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("session: lookup: %w", err)
	}
	return n > 0, nil
}

// DeleteSession runs the full cascade. SessionNotFound fires before any
// mutation; any later failure rolls the transaction back and surfaces a
// CascadeError naming the last completed step with the partial counts.
func DeleteSession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*DeleteReport, error) {
	ok, err := SessionExists(ctx, db, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.ErrSessionNotFound
	}

	report := &DeleteReport{SessionID: sessionID}
	step := "resolve_scope"

	fail := func(cause error) error {
		return &errs.CascadeError{Step: step, Partial: report.Counts(), Err: cause}
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		courseScope := "SELECT course_id FROM courses WHERE course_session_id = ?"

		// 1) strip course-level junctions, in order
		for _, rel := range courseservice.AllRelations {
			res := tx.Exec(fmt.Sprintf(
				"DELETE FROM %s WHERE %s IN (%s)", rel.Table, rel.CourseCol, courseScope,
			), sessionID)
			if res.Error != nil {
				return fail(fmt.Errorf("strip %s: %w", rel.Label, res.Error))
			}
			report.setRelation(rel.Label, res.RowsAffected)
			step = "strip_" + rel.Label
		}

		// 2) courses themselves
		res := tx.Exec(
			"UPDATE courses SET course_deleted_at = ? WHERE course_session_id = ? AND course_deleted_at IS NULL",
			now, sessionID)
		if res.Error != nil {
			return fail(fmt.Errorf("delete courses: %w", res.Error))
		}
		report.Courses = res.RowsAffected
		step = "delete_courses"

		// 3) group memberships, per kind
		memberships := []struct {
			kind groupservice.Kind
			dst  *int64
			name string
		}{
			{kind: groupservice.StudentKind, dst: &report.StudentGroupMembers, name: "student_group_members"},
			{kind: groupservice.FacultyKind, dst: &report.FacultyGroupMembers, name: "faculty_group_members"},
			{kind: groupservice.HallKind, dst: &report.HallGroupMembers, name: "hall_group_members"},
		}
		for _, m := range memberships {
			res := tx.Exec(fmt.Sprintf(
				"DELETE FROM %s WHERE %s IN (SELECT %s FROM %s WHERE %s = ?)",
				m.kind.MemberTable, m.kind.MemberGroupCol,
				m.kind.GroupIDCol, m.kind.GroupTable, m.kind.GroupSessionCol,
			), sessionID)
			if res.Error != nil {
				return fail(fmt.Errorf("strip %s: %w", m.name, res.Error))
			}
			*m.dst = res.RowsAffected
			step = "strip_" + m.name
		}

		// 4) primary entities
		primaries := []struct {
			table, sessionCol, deletedCol string
			dst                           *int64
		}{
			{"students", "student_session_id", "student_deleted_at", &report.Students},
			{"student_groups", "student_group_session_id", "student_group_deleted_at", &report.StudentGroups},
			{"faculty", "faculty_session_id", "faculty_deleted_at", &report.Faculty},
			{"faculty_groups", "faculty_group_session_id", "faculty_group_deleted_at", &report.FacultyGroups},
			{"halls", "hall_session_id", "hall_deleted_at", &report.Halls},
			{"hall_groups", "hall_group_session_id", "hall_group_deleted_at", &report.HallGroups},
		}
		for _, p := range primaries {
			res := tx.Exec(fmt.Sprintf(
				"UPDATE %s SET %s = ? WHERE %s = ? AND %s IS NULL",
				p.table, p.deletedCol, p.sessionCol, p.deletedCol,
			), now, sessionID)
			if res.Error != nil {
				return fail(fmt.Errorf("delete %s: %w", p.table, res.Error))
			}
			*p.dst = res.RowsAffected
			step = "delete_" + p.table
		}

		// 5) session row last
		res = tx.Exec(
			"UPDATE sessions SET session_deleted_at = ? WHERE session_id = ? AND session_deleted_at IS NULL",
			now, sessionID)
		if res.Error != nil {
			return fail(fmt.Errorf("delete session: %w", res.Error))
		}
		if res.RowsAffected == 0 {
			return fail(errs.ErrSessionNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
