// file: internals/features/scheduling/courses/service/course_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/errs"
)

// AllRelations in the strip order used by course and session deletion.
var AllRelations = []RelKind{
	RelEnrolledStudents,
	RelEnrolledStudentGroups,
	RelCompulsoryFacultyGroups,
	RelCompulsoryHallGroups,
	RelCompulsoryFaculty,
	RelCompulsoryHalls,
}

// EnsureCodeFree enforces per-session course-code uniqueness among alive rows.
func EnsureCodeFree(ctx context.Context, db *gorm.DB, sessionID uuid.UUID, code string, excludeID *uuid.UUID) error {
	q := db.WithContext(ctx).
		Table("courses").
		Where("course_session_id = ? AND course_code = ? AND course_deleted_at IS NULL", sessionID, code)
	if excludeID != nil {
		q = q.Where("course_id <> ?", *excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return fmt.Errorf("course: code check: %w", err)
	}
	if n > 0 {
		return &errs.ConflictError{Entity: "course", Value: code}
	}
	return nil
}

// DeleteCourse strips all six relation sets and soft-deletes the course,
// reporting per-relation counts.
func DeleteCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (map[string]int64, error) {
	counts := make(map[string]int64, len(AllRelations))
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Table("courses").
			Where("course_id = ? AND course_deleted_at IS NULL", courseID).
			Count(&exists).Error; err != nil {
			return fmt.Errorf("course: lookup: %w", err)
		}
		if exists == 0 {
			return errs.ErrCourseNotFound
		}

		for _, rel := range AllRelations {
			res := tx.Exec(fmt.Sprintf(
				"DELETE FROM %s WHERE %s = ?", rel.Table, rel.CourseCol,
			), courseID)
			if res.Error != nil {
				return fmt.Errorf("%s: strip: %w", rel.Label, res.Error)
			}
			counts[rel.Label] = res.RowsAffected
		}

		res := tx.Exec(
			"UPDATE courses SET course_deleted_at = ? WHERE course_id = ? AND course_deleted_at IS NULL",
			time.Now(), courseID)
		if res.Error != nil {
			return fmt.Errorf("course: delete: %w", res.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
