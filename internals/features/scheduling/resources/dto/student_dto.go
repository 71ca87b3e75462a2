// file: internals/features/scheduling/resources/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campusku_backend/internals/features/scheduling/resources/model"
	"campusku_backend/internals/features/scheduling/timetable"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateStudentRequest struct {
	StudentSessionID uuid.UUID `json:"student_session_id" validate:"required"`

	StudentDigitalID string `json:"student_digital_id" validate:"required,min=1,max=64"`
	StudentName      string `json:"student_name" validate:"required,min=2,max=120"`

	StudentWindow    timetable.Window `json:"student_window"`
	StudentTimetable timetable.Week   `json:"student_timetable" validate:"omitempty"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentDigitalID = strings.TrimSpace(r.StudentDigitalID)
	r.StudentName = strings.TrimSpace(r.StudentName)
}

// UpdateStudentRequest is a partial update: only supplied fields change.
// A supplied timetable replaces the stored one wholesale (no per-day merge).
type UpdateStudentRequest struct {
	StudentDigitalID *string `json:"student_digital_id,omitempty" validate:"omitempty,min=1,max=64"`
	StudentName      *string `json:"student_name,omitempty" validate:"omitempty,min=2,max=120"`

	StudentWindow    *timetable.Window `json:"student_window,omitempty"`
	StudentTimetable *timetable.Week   `json:"student_timetable,omitempty"`
}

func (r *UpdateStudentRequest) Normalize() {
	if r.StudentDigitalID != nil {
		v := strings.TrimSpace(*r.StudentDigitalID)
		r.StudentDigitalID = &v
	}
	if r.StudentName != nil {
		v := strings.TrimSpace(*r.StudentName)
		r.StudentName = &v
	}
}

func (r *UpdateStudentRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.StudentDigitalID != nil {
		up["student_digital_id"] = *r.StudentDigitalID
	}
	if r.StudentName != nil {
		up["student_name"] = *r.StudentName
	}
	if r.StudentWindow != nil {
		up["student_window_start_hour"] = r.StudentWindow.StartHour
		up["student_window_start_minute"] = r.StudentWindow.StartMinute
		up["student_window_end_hour"] = r.StudentWindow.EndHour
		up["student_window_end_minute"] = r.StudentWindow.EndMinute
	}
	// timetable handled by the controller (validated + encoded)
	return up
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentSessionID uuid.UUID `json:"student_session_id"`

	StudentDigitalID string `json:"student_digital_id"`
	StudentName      string `json:"student_name"`

	StudentWindow    timetable.Window `json:"student_window"`
	StudentTimetable timetable.Week   `json:"student_timetable"`

	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func ToStudentResponse(m model.StudentModel) (StudentResponse, error) {
	week, err := timetable.Decode(m.StudentTimetable)
	if err != nil {
		return StudentResponse{}, err
	}
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentSessionID: m.StudentSessionID,
		StudentDigitalID: m.StudentDigitalID,
		StudentName:      m.StudentName,
		StudentWindow:    m.StudentWindow,
		StudentTimetable: week,
		StudentCreatedAt: m.StudentCreatedAt,
		StudentUpdatedAt: m.StudentUpdatedAt,
	}, nil
}

/* =======================================================
   QUERY FILTER DTO
   ======================================================= */

type ListStudentsQuery struct {
	SessionID *uuid.UUID `query:"session_id"`
	Search    string     `query:"search"`
	Sort      string     `query:"sort"`
}

func (q *ListStudentsQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}
