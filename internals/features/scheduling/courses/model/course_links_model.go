// file: internals/features/scheduling/courses/model/course_links_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Course relation sets — six hard-deleted junction tables.

   Compulsory resources/groups the course mandates, plus
   enrollment. Pair unique; no availability validation
   happens here (the external scheduler owns that).
   ======================================================= */

type CourseFacultyModel struct {
	CourseFacultyID        uuid.UUID `json:"course_faculty_id" gorm:"type:uuid;primaryKey;column:course_faculty_id;default:gen_random_uuid()"`
	CourseFacultyCourseID  uuid.UUID `json:"course_faculty_course_id" gorm:"type:uuid;not null;column:course_faculty_course_id;uniqueIndex:uq_course_faculty_pair;index"`
	CourseFacultyFacultyID uuid.UUID `json:"course_faculty_faculty_id" gorm:"type:uuid;not null;column:course_faculty_faculty_id;uniqueIndex:uq_course_faculty_pair;index"`

	CourseFacultyCreatedAt time.Time `json:"course_faculty_created_at" gorm:"column:course_faculty_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (CourseFacultyModel) TableName() string { return "course_compulsory_faculty" }

type CourseHallModel struct {
	CourseHallID       uuid.UUID `json:"course_hall_id" gorm:"type:uuid;primaryKey;column:course_hall_id;default:gen_random_uuid()"`
	CourseHallCourseID uuid.UUID `json:"course_hall_course_id" gorm:"type:uuid;not null;column:course_hall_course_id;uniqueIndex:uq_course_hall_pair;index"`
	CourseHallHallID   uuid.UUID `json:"course_hall_hall_id" gorm:"type:uuid;not null;column:course_hall_hall_id;uniqueIndex:uq_course_hall_pair;index"`

	CourseHallCreatedAt time.Time `json:"course_hall_created_at" gorm:"column:course_hall_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (CourseHallModel) TableName() string { return "course_compulsory_halls" }

type CourseFacultyGroupModel struct {
	CourseFacultyGroupID        uuid.UUID `json:"course_faculty_group_id" gorm:"type:uuid;primaryKey;column:course_faculty_group_id;default:gen_random_uuid()"`
	CourseFacultyGroupCourseID  uuid.UUID `json:"course_faculty_group_course_id" gorm:"type:uuid;not null;column:course_faculty_group_course_id;uniqueIndex:uq_course_faculty_group_pair;index"`
	CourseFacultyGroupGroupID   uuid.UUID `json:"course_faculty_group_group_id" gorm:"type:uuid;not null;column:course_faculty_group_group_id;uniqueIndex:uq_course_faculty_group_pair;index"`

	CourseFacultyGroupCreatedAt time.Time `json:"course_faculty_group_created_at" gorm:"column:course_faculty_group_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (CourseFacultyGroupModel) TableName() string { return "course_compulsory_faculty_groups" }

type CourseHallGroupModel struct {
	CourseHallGroupID       uuid.UUID `json:"course_hall_group_id" gorm:"type:uuid;primaryKey;column:course_hall_group_id;default:gen_random_uuid()"`
	CourseHallGroupCourseID uuid.UUID `json:"course_hall_group_course_id" gorm:"type:uuid;not null;column:course_hall_group_course_id;uniqueIndex:uq_course_hall_group_pair;index"`
	CourseHallGroupGroupID  uuid.UUID `json:"course_hall_group_group_id" gorm:"type:uuid;not null;column:course_hall_group_group_id;uniqueIndex:uq_course_hall_group_pair;index"`

	CourseHallGroupCreatedAt time.Time `json:"course_hall_group_created_at" gorm:"column:course_hall_group_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (CourseHallGroupModel) TableName() string { return "course_compulsory_hall_groups" }

type CourseStudentModel struct {
	CourseStudentID        uuid.UUID `json:"course_student_id" gorm:"type:uuid;primaryKey;column:course_student_id;default:gen_random_uuid()"`
	CourseStudentCourseID  uuid.UUID `json:"course_student_course_id" gorm:"type:uuid;not null;column:course_student_course_id;uniqueIndex:uq_course_student_pair;index"`
	CourseStudentStudentID uuid.UUID `json:"course_student_student_id" gorm:"type:uuid;not null;column:course_student_student_id;uniqueIndex:uq_course_student_pair;index"`

	CourseStudentCreatedAt time.Time `json:"course_student_created_at" gorm:"column:course_student_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (CourseStudentModel) TableName() string { return "course_enrolled_students" }

type CourseStudentGroupModel struct {
	CourseStudentGroupID       uuid.UUID `json:"course_student_group_id" gorm:"type:uuid;primaryKey;column:course_student_group_id;default:gen_random_uuid()"`
	CourseStudentGroupCourseID uuid.UUID `json:"course_student_group_course_id" gorm:"type:uuid;not null;column:course_student_group_course_id;uniqueIndex:uq_course_student_group_pair;index"`
	CourseStudentGroupGroupID  uuid.UUID `json:"course_student_group_group_id" gorm:"type:uuid;not null;column:course_student_group_group_id;uniqueIndex:uq_course_student_group_pair;index"`

	CourseStudentGroupCreatedAt time.Time `json:"course_student_group_created_at" gorm:"column:course_student_group_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (CourseStudentGroupModel) TableName() string { return "course_enrolled_student_groups" }
