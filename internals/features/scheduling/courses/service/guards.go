// file: internals/features/scheduling/courses/service/guards.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Referential guards for resource deletion.

   A hall still mandated by a course, a faculty member
   still mandated, or a student still enrolled blocks the
   delete; the caller gets the exact dependent count and
   must strip the links first.
   ======================================================= */

func countDependents(ctx context.Context, db *gorm.DB, rel RelKind, targetID uuid.UUID) (int64, error) {
	var n int64
	if err := db.WithContext(ctx).
		Table(rel.Table).
		Where(fmt.Sprintf("%s = ?", rel.TargetCol), targetID).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%s: count dependents: %w", rel.Label, err)
	}
	return n, nil
}

func CountHallDependents(ctx context.Context, db *gorm.DB, hallID uuid.UUID) (int64, error) {
	return countDependents(ctx, db, RelCompulsoryHalls, hallID)
}

func CountFacultyDependents(ctx context.Context, db *gorm.DB, facultyID uuid.UUID) (int64, error) {
	return countDependents(ctx, db, RelCompulsoryFaculty, facultyID)
}

func CountStudentDependents(ctx context.Context, db *gorm.DB, studentID uuid.UUID) (int64, error) {
	return countDependents(ctx, db, RelEnrolledStudents, studentID)
}
