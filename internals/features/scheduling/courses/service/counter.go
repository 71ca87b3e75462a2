// file: internals/features/scheduling/courses/service/counter.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusku_backend/internals/features/scheduling/courses/model"
	"campusku_backend/internals/features/scheduling/errs"
)

/* =======================================================
   Scheduled-count adjustment

   Signed, unclamped: the layer applies arbitrary deltas
   and leaves bounding policy to the caller. The increment
   happens in the database so concurrent adjustments never
   race through read-modify-write.
   ======================================================= */

// ParseDelta accepts an integer-valued JSON number. "3" and "3.0" pass,
// "3.5" and non-numeric input fail with ErrInvalidDelta.
func ParseDelta(n json.Number) (int64, error) {
	if n == "" {
		return 0, errs.ErrInvalidDelta
	}
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, errs.ErrInvalidDelta
	}
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, errs.ErrInvalidDelta
	}
	return int64(f), nil
}

// AdjustScheduledCount applies delta atomically and returns the updated row.
func AdjustScheduledCount(ctx context.Context, db *gorm.DB, courseID uuid.UUID, delta int64) (*model.CourseModel, error) {
	var m model.CourseModel
	res := db.WithContext(ctx).
		Model(&m).
		Clauses(clause.Returning{}).
		Where("course_id = ? AND course_deleted_at IS NULL", courseID).
		Update("course_scheduled_count", gorm.Expr("course_scheduled_count + ?", delta))
	if res.Error != nil {
		return nil, fmt.Errorf("course: adjust scheduled count: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrCourseNotFound
	}
	return &m, nil
}
