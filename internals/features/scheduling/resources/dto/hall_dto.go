// file: internals/features/scheduling/resources/dto/hall_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campusku_backend/internals/features/scheduling/resources/model"
	"campusku_backend/internals/features/scheduling/timetable"
)

type CreateHallRequest struct {
	HallSessionID uuid.UUID `json:"hall_session_id" validate:"required"`

	HallName     string `json:"hall_name" validate:"required,min=1,max=120"`
	HallBuilding string `json:"hall_building" validate:"required,min=1,max=120"`
	HallFloor    int    `json:"hall_floor" validate:"min=-5,max=200"`
	HallCapacity *int   `json:"hall_capacity,omitempty" validate:"omitempty,min=0"`

	HallWindow    timetable.Window `json:"hall_window"`
	HallTimetable timetable.Week   `json:"hall_timetable" validate:"omitempty"`
}

func (r *CreateHallRequest) Normalize() {
	r.HallName = strings.TrimSpace(r.HallName)
	r.HallBuilding = strings.TrimSpace(r.HallBuilding)
}

type UpdateHallRequest struct {
	HallName     *string `json:"hall_name,omitempty" validate:"omitempty,min=1,max=120"`
	HallBuilding *string `json:"hall_building,omitempty" validate:"omitempty,min=1,max=120"`
	HallFloor    *int    `json:"hall_floor,omitempty" validate:"omitempty,min=-5,max=200"`
	HallCapacity *int    `json:"hall_capacity,omitempty" validate:"omitempty,min=0"`

	HallWindow    *timetable.Window `json:"hall_window,omitempty"`
	HallTimetable *timetable.Week   `json:"hall_timetable,omitempty"`
}

func (r *UpdateHallRequest) Normalize() {
	if r.HallName != nil {
		v := strings.TrimSpace(*r.HallName)
		r.HallName = &v
	}
	if r.HallBuilding != nil {
		v := strings.TrimSpace(*r.HallBuilding)
		r.HallBuilding = &v
	}
}

func (r *UpdateHallRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.HallName != nil {
		up["hall_name"] = *r.HallName
	}
	if r.HallBuilding != nil {
		up["hall_building"] = *r.HallBuilding
	}
	if r.HallFloor != nil {
		up["hall_floor"] = *r.HallFloor
	}
	if r.HallCapacity != nil {
		up["hall_capacity"] = r.HallCapacity
	}
	if r.HallWindow != nil {
		up["hall_window_start_hour"] = r.HallWindow.StartHour
		up["hall_window_start_minute"] = r.HallWindow.StartMinute
		up["hall_window_end_hour"] = r.HallWindow.EndHour
		up["hall_window_end_minute"] = r.HallWindow.EndMinute
	}
	return up
}

type HallResponse struct {
	HallID        uuid.UUID `json:"hall_id"`
	HallSessionID uuid.UUID `json:"hall_session_id"`

	HallName     string `json:"hall_name"`
	HallBuilding string `json:"hall_building"`
	HallFloor    int    `json:"hall_floor"`
	HallCapacity *int   `json:"hall_capacity,omitempty"`

	HallWindow    timetable.Window `json:"hall_window"`
	HallTimetable timetable.Week   `json:"hall_timetable"`

	HallCreatedAt time.Time `json:"hall_created_at"`
	HallUpdatedAt time.Time `json:"hall_updated_at"`
}

func ToHallResponse(m model.HallModel) (HallResponse, error) {
	week, err := timetable.Decode(m.HallTimetable)
	if err != nil {
		return HallResponse{}, err
	}
	return HallResponse{
		HallID:        m.HallID,
		HallSessionID: m.HallSessionID,
		HallName:      m.HallName,
		HallBuilding:  m.HallBuilding,
		HallFloor:     m.HallFloor,
		HallCapacity:  m.HallCapacity,
		HallWindow:    m.HallWindow,
		HallTimetable: week,
		HallCreatedAt: m.HallCreatedAt,
		HallUpdatedAt: m.HallUpdatedAt,
	}, nil
}

type ListHallsQuery struct {
	SessionID *uuid.UUID `query:"session_id"`
	Building  string     `query:"building"`
	Search    string     `query:"search"`
	Sort      string     `query:"sort"`
}

func (q *ListHallsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Building = strings.TrimSpace(q.Building)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}
