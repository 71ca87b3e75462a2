// file: internals/features/scheduling/sessions/service/session_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/errs"
)

// EnsureNameFree enforces global session-name uniqueness among alive rows.
// excludeID skips the session itself on rename.
func EnsureNameFree(ctx context.Context, db *gorm.DB, name string, excludeID *uuid.UUID) error {
	q := db.WithContext(ctx).
		Table("sessions").
		Where("session_name = ? AND session_deleted_at IS NULL", name)
	if excludeID != nil {
		q = q.Where("session_id <> ?", *excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return fmt.Errorf("session: name check: %w", err)
	}
	if n > 0 {
		return &errs.ConflictError{Entity: "session", Value: name}
	}
	return nil
}
