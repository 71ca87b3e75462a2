// file: internals/features/scheduling/sessions/service/export_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "campusku_backend/internals/features/scheduling/courses/model"
	courseservice "campusku_backend/internals/features/scheduling/courses/service"
	"campusku_backend/internals/features/scheduling/errs"
	groupModel "campusku_backend/internals/features/scheduling/groups/model"
	resourceModel "campusku_backend/internals/features/scheduling/resources/model"
	sessionModel "campusku_backend/internals/features/scheduling/sessions/model"
)

/* =======================================================
   Session export — full denormalized snapshot for the
   downstream scheduler: resources, groups, memberships,
   and courses with their requirement/enrollment id lists.
   ======================================================= */

type CourseExport struct {
	Course courseModel.CourseModel `json:"course"`

	CompulsoryFaculty       []uuid.UUID `json:"compulsory_faculty"`
	CompulsoryHalls         []uuid.UUID `json:"compulsory_halls"`
	CompulsoryFacultyGroups []uuid.UUID `json:"compulsory_faculty_groups"`
	CompulsoryHallGroups    []uuid.UUID `json:"compulsory_hall_groups"`
	EnrolledStudents        []uuid.UUID `json:"enrolled_students"`
	EnrolledStudentGroups   []uuid.UUID `json:"enrolled_student_groups"`
}

type SessionExport struct {
	Session sessionModel.SessionModel `json:"session"`

	Students []resourceModel.StudentModel `json:"students"`
	Faculty  []resourceModel.FacultyModel `json:"faculty"`
	Halls    []resourceModel.HallModel    `json:"halls"`

	StudentGroups []groupModel.StudentGroupModel `json:"student_groups"`
	FacultyGroups []groupModel.FacultyGroupModel `json:"faculty_groups"`
	HallGroups    []groupModel.HallGroupModel    `json:"hall_groups"`

	StudentGroupMembers []groupModel.StudentGroupMemberModel `json:"student_group_members"`
	FacultyGroupMembers []groupModel.FacultyGroupMemberModel `json:"faculty_group_members"`
	HallGroupMembers    []groupModel.HallGroupMemberModel    `json:"hall_group_members"`

	Courses []CourseExport `json:"courses"`
}

// ExportSession loads everything under one session in a read-only pass.
func ExportSession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*SessionExport, error) {
	out := &SessionExport{}
	tx := db.WithContext(ctx)

	if err := tx.Where("session_id = ?", sessionID).
		First(&out.Session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.ErrSessionNotFound
		}
		return nil, fmt.Errorf("export: load session: %w", err)
	}

	if err := tx.Where("student_session_id = ?", sessionID).
		Order("student_digital_id ASC").Find(&out.Students).Error; err != nil {
		return nil, fmt.Errorf("export: load students: %w", err)
	}
	if err := tx.Where("faculty_session_id = ?", sessionID).
		Order("faculty_short_form ASC").Find(&out.Faculty).Error; err != nil {
		return nil, fmt.Errorf("export: load faculty: %w", err)
	}
	if err := tx.Where("hall_session_id = ?", sessionID).
		Order("hall_name ASC").Find(&out.Halls).Error; err != nil {
		return nil, fmt.Errorf("export: load halls: %w", err)
	}

	if err := tx.Where("student_group_session_id = ?", sessionID).
		Order("student_group_name ASC").Find(&out.StudentGroups).Error; err != nil {
		return nil, fmt.Errorf("export: load student groups: %w", err)
	}
	if err := tx.Where("faculty_group_session_id = ?", sessionID).
		Order("faculty_group_name ASC").Find(&out.FacultyGroups).Error; err != nil {
		return nil, fmt.Errorf("export: load faculty groups: %w", err)
	}
	if err := tx.Where("hall_group_session_id = ?", sessionID).
		Order("hall_group_name ASC").Find(&out.HallGroups).Error; err != nil {
		return nil, fmt.Errorf("export: load hall groups: %w", err)
	}

	if err := tx.
		Where("student_group_member_group_id IN (SELECT student_group_id FROM student_groups WHERE student_group_session_id = ? AND student_group_deleted_at IS NULL)", sessionID).
		Find(&out.StudentGroupMembers).Error; err != nil {
		return nil, fmt.Errorf("export: load student memberships: %w", err)
	}
	if err := tx.
		Where("faculty_group_member_group_id IN (SELECT faculty_group_id FROM faculty_groups WHERE faculty_group_session_id = ? AND faculty_group_deleted_at IS NULL)", sessionID).
		Find(&out.FacultyGroupMembers).Error; err != nil {
		return nil, fmt.Errorf("export: load faculty memberships: %w", err)
	}
	if err := tx.
		Where("hall_group_member_group_id IN (SELECT hall_group_id FROM hall_groups WHERE hall_group_session_id = ? AND hall_group_deleted_at IS NULL)", sessionID).
		Find(&out.HallGroupMembers).Error; err != nil {
		return nil, fmt.Errorf("export: load hall memberships: %w", err)
	}

	var courses []courseModel.CourseModel
	if err := tx.Where("course_session_id = ?", sessionID).
		Order("course_code ASC").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("export: load courses: %w", err)
	}

	out.Courses = make([]CourseExport, 0, len(courses))
	for _, course := range courses {
		ce := CourseExport{Course: course}

		var err error
		if ce.CompulsoryFaculty, err = courseservice.ListLinkIDs(ctx, db, courseservice.RelCompulsoryFaculty, course.CourseID); err != nil {
			return nil, err
		}
		if ce.CompulsoryHalls, err = courseservice.ListLinkIDs(ctx, db, courseservice.RelCompulsoryHalls, course.CourseID); err != nil {
			return nil, err
		}
		if ce.CompulsoryFacultyGroups, err = courseservice.ListLinkIDs(ctx, db, courseservice.RelCompulsoryFacultyGroups, course.CourseID); err != nil {
			return nil, err
		}
		if ce.CompulsoryHallGroups, err = courseservice.ListLinkIDs(ctx, db, courseservice.RelCompulsoryHallGroups, course.CourseID); err != nil {
			return nil, err
		}
		if ce.EnrolledStudents, err = courseservice.ListLinkIDs(ctx, db, courseservice.RelEnrolledStudents, course.CourseID); err != nil {
			return nil, err
		}
		if ce.EnrolledStudentGroups, err = courseservice.ListLinkIDs(ctx, db, courseservice.RelEnrolledStudentGroups, course.CourseID); err != nil {
			return nil, err
		}
		out.Courses = append(out.Courses, ce)
	}
	return out, nil
}
