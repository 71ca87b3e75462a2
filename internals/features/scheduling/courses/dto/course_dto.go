// file: internals/features/scheduling/courses/dto/course_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"campusku_backend/internals/features/scheduling/courses/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateCourseRequest struct {
	CourseSessionID uuid.UUID `json:"course_session_id" validate:"required"`

	CourseCode string `json:"course_code" validate:"required,min=1,max=32"`
	CourseName string `json:"course_name" validate:"required,min=1,max=160"`

	CourseTotalSessions int `json:"course_total_sessions" validate:"min=0"`
}

func (r *CreateCourseRequest) Normalize() {
	r.CourseCode = strings.ToUpper(strings.TrimSpace(r.CourseCode))
	r.CourseName = strings.TrimSpace(r.CourseName)
}

type UpdateCourseRequest struct {
	CourseCode          *string `json:"course_code,omitempty" validate:"omitempty,min=1,max=32"`
	CourseName          *string `json:"course_name,omitempty" validate:"omitempty,min=1,max=160"`
	CourseTotalSessions *int    `json:"course_total_sessions,omitempty" validate:"omitempty,min=0"`
}

func (r *UpdateCourseRequest) Normalize() {
	if r.CourseCode != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.CourseCode))
		r.CourseCode = &v
	}
	if r.CourseName != nil {
		v := strings.TrimSpace(*r.CourseName)
		r.CourseName = &v
	}
}

func (r *UpdateCourseRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.CourseCode != nil {
		up["course_code"] = *r.CourseCode
	}
	if r.CourseName != nil {
		up["course_name"] = *r.CourseName
	}
	if r.CourseTotalSessions != nil {
		up["course_total_sessions"] = *r.CourseTotalSessions
	}
	return up
}

// AdjustScheduledCountRequest carries the signed delta. json.Number keeps
// non-integer input detectable instead of silently truncating it.
type AdjustScheduledCountRequest struct {
	Delta json.Number `json:"delta" validate:"required"`
}

// LinkIDsRequest feeds the relation add/remove endpoints.
type LinkIDsRequest struct {
	TargetIDs []uuid.UUID `json:"target_ids" validate:"required,min=1,dive,required"`
}

type RemoveLinksResponse struct {
	RemovedCount int64 `json:"removed_count"`
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type CourseResponse struct {
	CourseID        uuid.UUID `json:"course_id"`
	CourseSessionID uuid.UUID `json:"course_session_id"`

	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`

	CourseTotalSessions  int `json:"course_total_sessions"`
	CourseScheduledCount int `json:"course_scheduled_count"`

	CourseCreatedAt time.Time `json:"course_created_at"`
	CourseUpdatedAt time.Time `json:"course_updated_at"`
}

func ToCourseResponse(m model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:             m.CourseID,
		CourseSessionID:      m.CourseSessionID,
		CourseCode:           m.CourseCode,
		CourseName:           m.CourseName,
		CourseTotalSessions:  m.CourseTotalSessions,
		CourseScheduledCount: m.CourseScheduledCount,
		CourseCreatedAt:      m.CourseCreatedAt,
		CourseUpdatedAt:      m.CourseUpdatedAt,
	}
}

/* =======================================================
   QUERY FILTER DTO
   ======================================================= */

type ListCoursesQuery struct {
	SessionID *uuid.UUID `query:"session_id"`
	Search    string     `query:"search"`
	Sort      string     `query:"sort"`
}

func (q *ListCoursesQuery) Normalize() {
	q.Search = strings.TrimSpace(q.Search)
	q.Sort = strings.TrimSpace(strings.ToLower(q.Sort))
}
