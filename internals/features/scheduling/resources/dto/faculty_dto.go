// file: internals/features/scheduling/resources/dto/faculty_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campusku_backend/internals/features/scheduling/resources/model"
	"campusku_backend/internals/features/scheduling/timetable"
)

type CreateFacultyRequest struct {
	FacultySessionID uuid.UUID `json:"faculty_session_id" validate:"required"`

	FacultyName      string `json:"faculty_name" validate:"required,min=2,max=120"`
	FacultyShortForm string `json:"faculty_short_form" validate:"required,min=1,max=16"`

	FacultyWindow    timetable.Window `json:"faculty_window"`
	FacultyTimetable timetable.Week   `json:"faculty_timetable" validate:"omitempty"`
}

func (r *CreateFacultyRequest) Normalize() {
	r.FacultyName = strings.TrimSpace(r.FacultyName)
	r.FacultyShortForm = strings.TrimSpace(r.FacultyShortForm)
}

type UpdateFacultyRequest struct {
	FacultyName      *string `json:"faculty_name,omitempty" validate:"omitempty,min=2,max=120"`
	FacultyShortForm *string `json:"faculty_short_form,omitempty" validate:"omitempty,min=1,max=16"`

	FacultyWindow    *timetable.Window `json:"faculty_window,omitempty"`
	FacultyTimetable *timetable.Week   `json:"faculty_timetable,omitempty"`
}

func (r *UpdateFacultyRequest) Normalize() {
	if r.FacultyName != nil {
		v := strings.TrimSpace(*r.FacultyName)
		r.FacultyName = &v
	}
	if r.FacultyShortForm != nil {
		v := strings.TrimSpace(*r.FacultyShortForm)
		r.FacultyShortForm = &v
	}
}

func (r *UpdateFacultyRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.FacultyName != nil {
		up["faculty_name"] = *r.FacultyName
	}
	if r.FacultyShortForm != nil {
		up["faculty_short_form"] = *r.FacultyShortForm
	}
	if r.FacultyWindow != nil {
		up["faculty_window_start_hour"] = r.FacultyWindow.StartHour
		up["faculty_window_start_minute"] = r.FacultyWindow.StartMinute
		up["faculty_window_end_hour"] = r.FacultyWindow.EndHour
		up["faculty_window_end_minute"] = r.FacultyWindow.EndMinute
	}
	return up
}

type FacultyResponse struct {
	FacultyID        uuid.UUID `json:"faculty_id"`
	FacultySessionID uuid.UUID `json:"faculty_session_id"`

	FacultyName      string `json:"faculty_name"`
	FacultyShortForm string `json:"faculty_short_form"`

	FacultyWindow    timetable.Window `json:"faculty_window"`
	FacultyTimetable timetable.Week   `json:"faculty_timetable"`

	FacultyCreatedAt time.Time `json:"faculty_created_at"`
	FacultyUpdatedAt time.Time `json:"faculty_updated_at"`
}

func ToFacultyResponse(m model.FacultyModel) (FacultyResponse, error) {
	week, err := timetable.Decode(m.FacultyTimetable)
	if err != nil {
		return FacultyResponse{}, err
	}
	return FacultyResponse{
		FacultyID:        m.FacultyID,
		FacultySessionID: m.FacultySessionID,
		FacultyName:      m.FacultyName,
		FacultyShortForm: m.FacultyShortForm,
		FacultyWindow:    m.FacultyWindow,
		FacultyTimetable: week,
		FacultyCreatedAt: m.FacultyCreatedAt,
		FacultyUpdatedAt: m.FacultyUpdatedAt,
	}, nil
}

type ListFacultyQuery struct {
	SessionID *uuid.UUID `query:"session_id"`
	Search    string     `query:"search"`
	Sort      string     `query:"sort"`
}

func (q *ListFacultyQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}
