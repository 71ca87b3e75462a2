// file: internals/features/scheduling/groups/service/kinds.go
package service

/* =======================================================
   Kind descriptors — one per group/resource pairing.

   The ledger logic is identical for students, faculty and
   halls; only table/column names differ, so the service
   works against these descriptors.
   ======================================================= */

type Kind struct {
	Label string // for error messages / cascade report keys

	GroupTable        string
	GroupIDCol        string
	GroupSessionCol   string
	GroupNameCol      string
	GroupWindowPrefix string // window column prefix, e.g. student_group_window_
	GroupTimetableCol string
	GroupCreatedCol   string
	GroupUpdatedCol   string
	GroupDeletedCol   string

	MemberTable       string
	MemberGroupCol    string
	MemberResourceCol string

	ResourceTable      string
	ResourceIDCol      string
	ResourceSessionCol string
	ResourceDeletedCol string
}

var StudentKind = Kind{
	Label: "student_group",

	GroupTable:        "student_groups",
	GroupIDCol:        "student_group_id",
	GroupSessionCol:   "student_group_session_id",
	GroupNameCol:      "student_group_name",
	GroupWindowPrefix: "student_group_window_",
	GroupTimetableCol: "student_group_timetable",
	GroupCreatedCol:   "student_group_created_at",
	GroupUpdatedCol:   "student_group_updated_at",
	GroupDeletedCol:   "student_group_deleted_at",

	MemberTable:       "student_group_members",
	MemberGroupCol:    "student_group_member_group_id",
	MemberResourceCol: "student_group_member_student_id",

	ResourceTable:      "students",
	ResourceIDCol:      "student_id",
	ResourceSessionCol: "student_session_id",
	ResourceDeletedCol: "student_deleted_at",
}

var FacultyKind = Kind{
	Label: "faculty_group",

	GroupTable:        "faculty_groups",
	GroupIDCol:        "faculty_group_id",
	GroupSessionCol:   "faculty_group_session_id",
	GroupNameCol:      "faculty_group_name",
	GroupWindowPrefix: "faculty_group_window_",
	GroupTimetableCol: "faculty_group_timetable",
	GroupCreatedCol:   "faculty_group_created_at",
	GroupUpdatedCol:   "faculty_group_updated_at",
	GroupDeletedCol:   "faculty_group_deleted_at",

	MemberTable:       "faculty_group_members",
	MemberGroupCol:    "faculty_group_member_group_id",
	MemberResourceCol: "faculty_group_member_faculty_id",

	ResourceTable:      "faculty",
	ResourceIDCol:      "faculty_id",
	ResourceSessionCol: "faculty_session_id",
	ResourceDeletedCol: "faculty_deleted_at",
}

var HallKind = Kind{
	Label: "hall_group",

	GroupTable:        "hall_groups",
	GroupIDCol:        "hall_group_id",
	GroupSessionCol:   "hall_group_session_id",
	GroupNameCol:      "hall_group_name",
	GroupWindowPrefix: "hall_group_window_",
	GroupTimetableCol: "hall_group_timetable",
	GroupCreatedCol:   "hall_group_created_at",
	GroupUpdatedCol:   "hall_group_updated_at",
	GroupDeletedCol:   "hall_group_deleted_at",

	MemberTable:       "hall_group_members",
	MemberGroupCol:    "hall_group_member_group_id",
	MemberResourceCol: "hall_group_member_hall_id",

	ResourceTable:      "halls",
	ResourceIDCol:      "hall_id",
	ResourceSessionCol: "hall_session_id",
	ResourceDeletedCol: "hall_deleted_at",
}
