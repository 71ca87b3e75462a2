// file: internals/features/scheduling/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   SessionModel — map ke tabel sessions
   ======================================================= */

// SessionModel is the root scope: every other entity hangs off exactly one
// session, and deleting a session cascades to all of it.
type SessionModel struct {
	// PK
	SessionID uuid.UUID `json:"session_id" gorm:"type:uuid;primaryKey;column:session_id;default:gen_random_uuid()"`

	// Unique among alive rows (partial unique idx in migrations)
	SessionName string `json:"session_name" gorm:"type:varchar(120);not null;column:session_name"`

	// Free-form details + tags
	SessionDetails datatypes.JSON `json:"session_details" gorm:"type:jsonb;column:session_details"`
	SessionTags    pq.StringArray `json:"session_tags" gorm:"type:text[];column:session_tags"`

	SessionCreatedAt time.Time      `json:"session_created_at" gorm:"column:session_created_at;type:timestamptz;not null;autoCreateTime"`
	SessionUpdatedAt time.Time      `json:"session_updated_at" gorm:"column:session_updated_at;type:timestamptz;not null;autoUpdateTime"`
	SessionDeletedAt gorm.DeletedAt `json:"session_deleted_at" gorm:"column:session_deleted_at;index"`
}

func (SessionModel) TableName() string { return "sessions" }
