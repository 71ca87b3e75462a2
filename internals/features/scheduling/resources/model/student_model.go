// file: internals/features/scheduling/resources/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/timetable"
)

/* =======================================================
   StudentModel — map ke tabel students
   ======================================================= */

type StudentModel struct {
	// PK
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id;default:gen_random_uuid()"`

	// Scope
	StudentSessionID uuid.UUID `json:"student_session_id" gorm:"type:uuid;not null;column:student_session_id;index"`

	// Identity: campus-issued digital id + display name
	StudentDigitalID string `json:"student_digital_id" gorm:"type:varchar(64);not null;column:student_digital_id"`
	StudentName      string `json:"student_name" gorm:"type:varchar(120);not null;column:student_name"`

	// Working-hours window (start < end; hour 0..23, minute 0..59)
	StudentWindow timetable.Window `json:"student_window" gorm:"embedded;embeddedPrefix:student_window_"`

	// Weekly occupancy grid; every slot must fall inside the window
	StudentTimetable datatypes.JSON `json:"student_timetable" gorm:"type:jsonb;not null;default:'{}';column:student_timetable"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }
