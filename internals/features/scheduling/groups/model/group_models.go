// file: internals/features/scheduling/groups/model/group_models.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/timetable"
)

/* =======================================================
   Groups — one model per resource kind.

   A group's timetable is its own data: it is never derived
   from members and never re-aggregated on membership change.
   Name is unique per session among alive rows (partial
   unique idx in migrations).
   ======================================================= */

type StudentGroupModel struct {
	StudentGroupID        uuid.UUID `json:"student_group_id" gorm:"type:uuid;primaryKey;column:student_group_id;default:gen_random_uuid()"`
	StudentGroupSessionID uuid.UUID `json:"student_group_session_id" gorm:"type:uuid;not null;column:student_group_session_id;index"`

	StudentGroupName string `json:"student_group_name" gorm:"type:varchar(120);not null;column:student_group_name"`

	StudentGroupWindow    timetable.Window `json:"student_group_window" gorm:"embedded;embeddedPrefix:student_group_window_"`
	StudentGroupTimetable datatypes.JSON   `json:"student_group_timetable" gorm:"type:jsonb;not null;default:'{}';column:student_group_timetable"`

	StudentGroupCreatedAt time.Time      `json:"student_group_created_at" gorm:"column:student_group_created_at;type:timestamptz;not null;autoCreateTime"`
	StudentGroupUpdatedAt time.Time      `json:"student_group_updated_at" gorm:"column:student_group_updated_at;type:timestamptz;not null;autoUpdateTime"`
	StudentGroupDeletedAt gorm.DeletedAt `json:"student_group_deleted_at" gorm:"column:student_group_deleted_at;index"`
}

func (StudentGroupModel) TableName() string { return "student_groups" }

type FacultyGroupModel struct {
	FacultyGroupID        uuid.UUID `json:"faculty_group_id" gorm:"type:uuid;primaryKey;column:faculty_group_id;default:gen_random_uuid()"`
	FacultyGroupSessionID uuid.UUID `json:"faculty_group_session_id" gorm:"type:uuid;not null;column:faculty_group_session_id;index"`

	FacultyGroupName string `json:"faculty_group_name" gorm:"type:varchar(120);not null;column:faculty_group_name"`

	FacultyGroupWindow    timetable.Window `json:"faculty_group_window" gorm:"embedded;embeddedPrefix:faculty_group_window_"`
	FacultyGroupTimetable datatypes.JSON   `json:"faculty_group_timetable" gorm:"type:jsonb;not null;default:'{}';column:faculty_group_timetable"`

	FacultyGroupCreatedAt time.Time      `json:"faculty_group_created_at" gorm:"column:faculty_group_created_at;type:timestamptz;not null;autoCreateTime"`
	FacultyGroupUpdatedAt time.Time      `json:"faculty_group_updated_at" gorm:"column:faculty_group_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FacultyGroupDeletedAt gorm.DeletedAt `json:"faculty_group_deleted_at" gorm:"column:faculty_group_deleted_at;index"`
}

func (FacultyGroupModel) TableName() string { return "faculty_groups" }

type HallGroupModel struct {
	HallGroupID        uuid.UUID `json:"hall_group_id" gorm:"type:uuid;primaryKey;column:hall_group_id;default:gen_random_uuid()"`
	HallGroupSessionID uuid.UUID `json:"hall_group_session_id" gorm:"type:uuid;not null;column:hall_group_session_id;index"`

	HallGroupName string `json:"hall_group_name" gorm:"type:varchar(120);not null;column:hall_group_name"`

	HallGroupWindow    timetable.Window `json:"hall_group_window" gorm:"embedded;embeddedPrefix:hall_group_window_"`
	HallGroupTimetable datatypes.JSON   `json:"hall_group_timetable" gorm:"type:jsonb;not null;default:'{}';column:hall_group_timetable"`

	HallGroupCreatedAt time.Time      `json:"hall_group_created_at" gorm:"column:hall_group_created_at;type:timestamptz;not null;autoCreateTime"`
	HallGroupUpdatedAt time.Time      `json:"hall_group_updated_at" gorm:"column:hall_group_updated_at;type:timestamptz;not null;autoUpdateTime"`
	HallGroupDeletedAt gorm.DeletedAt `json:"hall_group_deleted_at" gorm:"column:hall_group_deleted_at;index"`
}

func (HallGroupModel) TableName() string { return "hall_groups" }
