// file: internals/features/scheduling/groups/dto/group_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campusku_backend/internals/features/scheduling/groups/service"
	"campusku_backend/internals/features/scheduling/timetable"
)

/* =======================================================
   REQUEST DTOs — shared by the three group kinds
   ======================================================= */

type CreateGroupRequest struct {
	GroupSessionID uuid.UUID `json:"group_session_id" validate:"required"`
	GroupName      string    `json:"group_name" validate:"required,min=1,max=120"`

	GroupWindow    timetable.Window `json:"group_window"`
	GroupTimetable timetable.Week   `json:"group_timetable" validate:"omitempty"`
}

func (r *CreateGroupRequest) Normalize() {
	r.GroupName = strings.TrimSpace(r.GroupName)
}

type UpdateGroupRequest struct {
	GroupName      *string           `json:"group_name,omitempty" validate:"omitempty,min=1,max=120"`
	GroupWindow    *timetable.Window `json:"group_window,omitempty"`
	GroupTimetable *timetable.Week   `json:"group_timetable,omitempty"`
}

func (r *UpdateGroupRequest) Normalize() {
	if r.GroupName != nil {
		v := strings.TrimSpace(*r.GroupName)
		r.GroupName = &v
	}
}

// BuildUpdateMap maps supplied fields onto the kind's columns; the timetable
// column is handled by the controller after validation.
func (r *UpdateGroupRequest) BuildUpdateMap(k service.Kind) map[string]interface{} {
	up := make(map[string]interface{})
	if r.GroupName != nil {
		up[k.GroupNameCol] = *r.GroupName
	}
	if r.GroupWindow != nil {
		up[k.GroupWindowPrefix+"start_hour"] = r.GroupWindow.StartHour
		up[k.GroupWindowPrefix+"start_minute"] = r.GroupWindow.StartMinute
		up[k.GroupWindowPrefix+"end_hour"] = r.GroupWindow.EndHour
		up[k.GroupWindowPrefix+"end_minute"] = r.GroupWindow.EndMinute
	}
	return up
}

/* =======================================================
   MEMBERSHIP DTOs
   ======================================================= */

type MemberIDsRequest struct {
	ResourceIDs []uuid.UUID `json:"resource_ids" validate:"required,min=1,dive,required"`
}

type RemoveMembersResponse struct {
	RemovedCount int64 `json:"removed_count"`
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type GroupResponse struct {
	GroupID        uuid.UUID `json:"group_id"`
	GroupSessionID uuid.UUID `json:"group_session_id"`
	GroupName      string    `json:"group_name"`

	GroupWindow    timetable.Window `json:"group_window"`
	GroupTimetable timetable.Week   `json:"group_timetable"`

	GroupCreatedAt time.Time `json:"group_created_at"`
	GroupUpdatedAt time.Time `json:"group_updated_at"`
}

func ToGroupResponse(row service.GroupRow) (GroupResponse, error) {
	week, err := timetable.Decode(row.Timetable)
	if err != nil {
		return GroupResponse{}, err
	}
	return GroupResponse{
		GroupID:        row.GroupID,
		GroupSessionID: row.SessionID,
		GroupName:      row.GroupName,
		GroupWindow:    row.Window(),
		GroupTimetable: week,
		GroupCreatedAt: row.CreatedAt,
		GroupUpdatedAt: row.UpdatedAt,
	}, nil
}

/* =======================================================
   QUERY FILTER DTO
   ======================================================= */

type ListGroupsQuery struct {
	SessionID *uuid.UUID `query:"session_id"`
	Search    string     `query:"search"`
	Sort      string     `query:"sort"`
}

func (q *ListGroupsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}
