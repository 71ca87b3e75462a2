// file: internals/features/scheduling/sessions/dto/session_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"campusku_backend/internals/features/scheduling/sessions/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateSessionRequest struct {
	SessionName    string         `json:"session_name" validate:"required,min=2,max=120"`
	SessionDetails datatypes.JSON `json:"session_details" validate:"omitempty"`
	SessionTags    []string       `json:"session_tags" validate:"omitempty,dive,max=40"`
}

func (r *CreateSessionRequest) Normalize() {
	r.SessionName = strings.TrimSpace(r.SessionName)
	for i := range r.SessionTags {
		r.SessionTags[i] = strings.TrimSpace(r.SessionTags[i])
	}
}

type UpdateSessionRequest struct {
	SessionName    *string         `json:"session_name,omitempty" validate:"omitempty,min=2,max=120"`
	SessionDetails *datatypes.JSON `json:"session_details,omitempty"`
	SessionTags    *[]string       `json:"session_tags,omitempty" validate:"omitempty,dive,max=40"`
}

func (r *UpdateSessionRequest) Normalize() {
	if r.SessionName != nil {
		v := strings.TrimSpace(*r.SessionName)
		r.SessionName = &v
	}
}

// BuildUpdateMap maps only the supplied fields onto columns.
func (r *UpdateSessionRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.SessionName != nil {
		up["session_name"] = *r.SessionName
	}
	if r.SessionDetails != nil {
		up["session_details"] = *r.SessionDetails
	}
	if r.SessionTags != nil {
		up["session_tags"] = pq.StringArray(*r.SessionTags)
	}
	return up
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type SessionResponse struct {
	SessionID      uuid.UUID      `json:"session_id"`
	SessionName    string         `json:"session_name"`
	SessionDetails datatypes.JSON `json:"session_details,omitempty"`
	SessionTags    []string       `json:"session_tags"`

	SessionCreatedAt time.Time `json:"session_created_at"`
	SessionUpdatedAt time.Time `json:"session_updated_at"`
}

func ToSessionResponse(m model.SessionModel) SessionResponse {
	tags := []string(m.SessionTags)
	if tags == nil {
		tags = []string{}
	}
	return SessionResponse{
		SessionID:        m.SessionID,
		SessionName:      m.SessionName,
		SessionDetails:   m.SessionDetails,
		SessionTags:      tags,
		SessionCreatedAt: m.SessionCreatedAt,
		SessionUpdatedAt: m.SessionUpdatedAt,
	}
}

/* =======================================================
   QUERY FILTER DTO
   ======================================================= */

type ListSessionsQuery struct {
	Search string `query:"search"`
	Sort   string `query:"sort"`
}

func (q *ListSessionsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}
