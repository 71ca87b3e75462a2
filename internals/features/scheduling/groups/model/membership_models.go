// file: internals/features/scheduling/groups/model/membership_models.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Membership join rows — hard-deleted, pair unique.

   (resource, group) appears at most once; the unique idx
   backs the OnConflict DoNothing insert path in the
   membership service.
   ======================================================= */

type StudentGroupMemberModel struct {
	StudentGroupMemberID        uuid.UUID `json:"student_group_member_id" gorm:"type:uuid;primaryKey;column:student_group_member_id;default:gen_random_uuid()"`
	StudentGroupMemberGroupID   uuid.UUID `json:"student_group_member_group_id" gorm:"type:uuid;not null;column:student_group_member_group_id;uniqueIndex:uq_student_group_member_pair;index"`
	StudentGroupMemberStudentID uuid.UUID `json:"student_group_member_student_id" gorm:"type:uuid;not null;column:student_group_member_student_id;uniqueIndex:uq_student_group_member_pair"`

	StudentGroupMemberCreatedAt time.Time `json:"student_group_member_created_at" gorm:"column:student_group_member_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (StudentGroupMemberModel) TableName() string { return "student_group_members" }

type FacultyGroupMemberModel struct {
	FacultyGroupMemberID        uuid.UUID `json:"faculty_group_member_id" gorm:"type:uuid;primaryKey;column:faculty_group_member_id;default:gen_random_uuid()"`
	FacultyGroupMemberGroupID   uuid.UUID `json:"faculty_group_member_group_id" gorm:"type:uuid;not null;column:faculty_group_member_group_id;uniqueIndex:uq_faculty_group_member_pair;index"`
	FacultyGroupMemberFacultyID uuid.UUID `json:"faculty_group_member_faculty_id" gorm:"type:uuid;not null;column:faculty_group_member_faculty_id;uniqueIndex:uq_faculty_group_member_pair"`

	FacultyGroupMemberCreatedAt time.Time `json:"faculty_group_member_created_at" gorm:"column:faculty_group_member_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (FacultyGroupMemberModel) TableName() string { return "faculty_group_members" }

type HallGroupMemberModel struct {
	HallGroupMemberID      uuid.UUID `json:"hall_group_member_id" gorm:"type:uuid;primaryKey;column:hall_group_member_id;default:gen_random_uuid()"`
	HallGroupMemberGroupID uuid.UUID `json:"hall_group_member_group_id" gorm:"type:uuid;not null;column:hall_group_member_group_id;uniqueIndex:uq_hall_group_member_pair;index"`
	HallGroupMemberHallID  uuid.UUID `json:"hall_group_member_hall_id" gorm:"type:uuid;not null;column:hall_group_member_hall_id;uniqueIndex:uq_hall_group_member_pair"`

	HallGroupMemberCreatedAt time.Time `json:"hall_group_member_created_at" gorm:"column:hall_group_member_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (HallGroupMemberModel) TableName() string { return "hall_group_members" }
