// file: internals/features/scheduling/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   CourseModel — map ke tabel courses
   ======================================================= */

type CourseModel struct {
	// PK
	CourseID uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey;column:course_id;default:gen_random_uuid()"`

	// Scope
	CourseSessionID uuid.UUID `json:"course_session_id" gorm:"type:uuid;not null;column:course_session_id;index"`

	// Code unique per session among alive rows (partial unique idx in migrations)
	CourseCode string `json:"course_code" gorm:"type:varchar(32);not null;column:course_code"`
	CourseName string `json:"course_name" gorm:"type:varchar(160);not null;column:course_name"`

	// Progress: scheduled_count starts at 0 and moves by signed deltas.
	// This layer applies no clamping against [0, total_sessions].
	CourseTotalSessions  int `json:"course_total_sessions" gorm:"column:course_total_sessions;not null;default:0"`
	CourseScheduledCount int `json:"course_scheduled_count" gorm:"column:course_scheduled_count;not null;default:0"`

	CourseCreatedAt time.Time      `json:"course_created_at" gorm:"column:course_created_at;type:timestamptz;not null;autoCreateTime"`
	CourseUpdatedAt time.Time      `json:"course_updated_at" gorm:"column:course_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `json:"course_deleted_at" gorm:"column:course_deleted_at;index"`
}

func (CourseModel) TableName() string { return "courses" }
