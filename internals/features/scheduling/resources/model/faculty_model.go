// file: internals/features/scheduling/resources/model/faculty_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/timetable"
)

/* =======================================================
   FacultyModel — map ke tabel faculty
   ======================================================= */

type FacultyModel struct {
	// PK
	FacultyID uuid.UUID `json:"faculty_id" gorm:"type:uuid;primaryKey;column:faculty_id;default:gen_random_uuid()"`

	// Scope
	FacultySessionID uuid.UUID `json:"faculty_session_id" gorm:"type:uuid;not null;column:faculty_session_id;index"`

	// Identity: full name + short form used on printed timetables
	FacultyName      string `json:"faculty_name" gorm:"type:varchar(120);not null;column:faculty_name"`
	FacultyShortForm string `json:"faculty_short_form" gorm:"type:varchar(16);not null;column:faculty_short_form"`

	FacultyWindow timetable.Window `json:"faculty_window" gorm:"embedded;embeddedPrefix:faculty_window_"`

	FacultyTimetable datatypes.JSON `json:"faculty_timetable" gorm:"type:jsonb;not null;default:'{}';column:faculty_timetable"`

	FacultyCreatedAt time.Time      `json:"faculty_created_at" gorm:"column:faculty_created_at;type:timestamptz;not null;autoCreateTime"`
	FacultyUpdatedAt time.Time      `json:"faculty_updated_at" gorm:"column:faculty_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FacultyDeletedAt gorm.DeletedAt `json:"faculty_deleted_at" gorm:"column:faculty_deleted_at;index"`
}

func (FacultyModel) TableName() string { return "faculty" }
