// file: internals/features/scheduling/courses/service/relations.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/errs"
)

/* =======================================================
   Course relation sets — six junctions, one contract.

   Same ledger semantics as group memberships: the whole
   batch is rejected when a target is missing or outside
   the course's session; once past that check, insertion
   is per-item and duplicates are dropped silently.
   ======================================================= */

type RelKind struct {
	Label string

	Table     string
	CourseCol string
	TargetCol string

	TargetTable      string
	TargetIDCol      string
	TargetSessionCol string
	TargetDeletedCol string
}

var (
	RelCompulsoryFaculty = RelKind{
		Label:     "compulsory_faculty",
		Table:     "course_compulsory_faculty",
		CourseCol: "course_faculty_course_id",
		TargetCol: "course_faculty_faculty_id",

		TargetTable:      "faculty",
		TargetIDCol:      "faculty_id",
		TargetSessionCol: "faculty_session_id",
		TargetDeletedCol: "faculty_deleted_at",
	}

	RelCompulsoryHalls = RelKind{
		Label:     "compulsory_halls",
		Table:     "course_compulsory_halls",
		CourseCol: "course_hall_course_id",
		TargetCol: "course_hall_hall_id",

		TargetTable:      "halls",
		TargetIDCol:      "hall_id",
		TargetSessionCol: "hall_session_id",
		TargetDeletedCol: "hall_deleted_at",
	}

	RelCompulsoryFacultyGroups = RelKind{
		Label:     "compulsory_faculty_groups",
		Table:     "course_compulsory_faculty_groups",
		CourseCol: "course_faculty_group_course_id",
		TargetCol: "course_faculty_group_group_id",

		TargetTable:      "faculty_groups",
		TargetIDCol:      "faculty_group_id",
		TargetSessionCol: "faculty_group_session_id",
		TargetDeletedCol: "faculty_group_deleted_at",
	}

	RelCompulsoryHallGroups = RelKind{
		Label:     "compulsory_hall_groups",
		Table:     "course_compulsory_hall_groups",
		CourseCol: "course_hall_group_course_id",
		TargetCol: "course_hall_group_group_id",

		TargetTable:      "hall_groups",
		TargetIDCol:      "hall_group_id",
		TargetSessionCol: "hall_group_session_id",
		TargetDeletedCol: "hall_group_deleted_at",
	}

	RelEnrolledStudents = RelKind{
		Label:     "enrolled_students",
		Table:     "course_enrolled_students",
		CourseCol: "course_student_course_id",
		TargetCol: "course_student_student_id",

		TargetTable:      "students",
		TargetIDCol:      "student_id",
		TargetSessionCol: "student_session_id",
		TargetDeletedCol: "student_deleted_at",
	}

	RelEnrolledStudentGroups = RelKind{
		Label:     "enrolled_student_groups",
		Table:     "course_enrolled_student_groups",
		CourseCol: "course_student_group_course_id",
		TargetCol: "course_student_group_group_id",

		TargetTable:      "student_groups",
		TargetIDCol:      "student_group_id",
		TargetSessionCol: "student_group_session_id",
		TargetDeletedCol: "student_group_deleted_at",
	}
)

type LinkResult struct {
	Added       []uuid.UUID `json:"added"`
	FailedCount int         `json:"failed_count"`
}

// CourseSession resolves the owning session of an alive course.
func CourseSession(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (uuid.UUID, error) {
	var sid uuid.UUID
	res := db.WithContext(ctx).
		Table("courses").
		Select("course_session_id").
		Where("course_id = ? AND course_deleted_at IS NULL", courseID).
		Limit(1).
		Scan(&sid)
	if res.Error != nil {
		return uuid.Nil, fmt.Errorf("course: resolve session: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, errs.ErrCourseNotFound
	}
	return sid, nil
}

// AddLinks attaches targets to one of the course's relation sets.
func AddLinks(ctx context.Context, db *gorm.DB, rel RelKind, courseID uuid.UUID, targetIDs []uuid.UUID) (*LinkResult, error) {
	sessionID, err := CourseSession(ctx, db, courseID)
	if err != nil {
		return nil, err
	}

	out := &LinkResult{Added: []uuid.UUID{}}
	if len(targetIDs) == 0 {
		return out, nil
	}

	var found []uuid.UUID
	if err := db.WithContext(ctx).
		Table(rel.TargetTable).
		Where(fmt.Sprintf("%s IN ? AND %s = ? AND %s IS NULL",
			rel.TargetIDCol, rel.TargetSessionCol, rel.TargetDeletedCol),
			dedupe(targetIDs), sessionID).
		Pluck(rel.TargetIDCol, &found).Error; err != nil {
		return nil, fmt.Errorf("%s: verify targets: %w", rel.Label, err)
	}
	if invalid := missingFrom(targetIDs, found); len(invalid) > 0 {
		return nil, &errs.CrossSessionError{InvalidIDs: invalid}
	}

	for _, tid := range targetIDs {
		res := db.WithContext(ctx).Exec(fmt.Sprintf(
			"INSERT INTO %s (%s, %s) VALUES (?, ?) ON CONFLICT (%s, %s) DO NOTHING",
			rel.Table, rel.CourseCol, rel.TargetCol, rel.CourseCol, rel.TargetCol,
		), courseID, tid)
		if res.Error != nil {
			return nil, fmt.Errorf("%s: insert link %s: %w", rel.Label, tid, res.Error)
		}
		if res.RowsAffected == 0 {
			out.FailedCount++
			continue
		}
		out.Added = append(out.Added, tid)
	}
	return out, nil
}

// RemoveLinks detaches targets; absent links are a no-op.
func RemoveLinks(ctx context.Context, db *gorm.DB, rel RelKind, courseID uuid.UUID, targetIDs []uuid.UUID) (int64, error) {
	if _, err := CourseSession(ctx, db, courseID); err != nil {
		return 0, err
	}
	if len(targetIDs) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).Exec(fmt.Sprintf(
		"DELETE FROM %s WHERE %s = ? AND %s IN ?",
		rel.Table, rel.CourseCol, rel.TargetCol,
	), courseID, dedupe(targetIDs))
	if res.Error != nil {
		return 0, fmt.Errorf("%s: remove links: %w", rel.Label, res.Error)
	}
	return res.RowsAffected, nil
}

// ListLinkIDs returns the target ids of one relation set (export path).
func ListLinkIDs(ctx context.Context, db *gorm.DB, rel RelKind, courseID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := db.WithContext(ctx).
		Table(rel.Table).
		Where(fmt.Sprintf("%s = ?", rel.CourseCol), courseID).
		Order(fmt.Sprintf("%s ASC", rel.TargetCol)).
		Pluck(rel.TargetCol, &ids).Error; err != nil {
		return nil, fmt.Errorf("%s: list links: %w", rel.Label, err)
	}
	return ids, nil
}

/* =======================================================
   pure helpers (shared with the membership ledger shape)
   ======================================================= */

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingFrom(requested, found []uuid.UUID) []uuid.UUID {
	have := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	var invalid []uuid.UUID
	for _, id := range dedupe(requested) {
		if _, ok := have[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	return invalid
}
