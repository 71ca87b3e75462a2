// file: internals/features/scheduling/resources/model/hall_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/timetable"
)

/* =======================================================
   HallModel — map ke tabel halls
   ======================================================= */

type HallModel struct {
	// PK
	HallID uuid.UUID `json:"hall_id" gorm:"type:uuid;primaryKey;column:hall_id;default:gen_random_uuid()"`

	// Scope
	HallSessionID uuid.UUID `json:"hall_session_id" gorm:"type:uuid;not null;column:hall_session_id;index"`

	// Identity: name + physical location
	HallName     string `json:"hall_name" gorm:"type:varchar(120);not null;column:hall_name"`
	HallBuilding string `json:"hall_building" gorm:"type:varchar(120);not null;column:hall_building"`
	HallFloor    int    `json:"hall_floor" gorm:"column:hall_floor;not null;default:0"`
	HallCapacity *int   `json:"hall_capacity,omitempty" gorm:"column:hall_capacity"`

	HallWindow timetable.Window `json:"hall_window" gorm:"embedded;embeddedPrefix:hall_window_"`

	HallTimetable datatypes.JSON `json:"hall_timetable" gorm:"type:jsonb;not null;default:'{}';column:hall_timetable"`

	HallCreatedAt time.Time      `json:"hall_created_at" gorm:"column:hall_created_at;type:timestamptz;not null;autoCreateTime"`
	HallUpdatedAt time.Time      `json:"hall_updated_at" gorm:"column:hall_updated_at;type:timestamptz;not null;autoUpdateTime"`
	HallDeletedAt gorm.DeletedAt `json:"hall_deleted_at" gorm:"column:hall_deleted_at;index"`
}

func (HallModel) TableName() string { return "halls" }
