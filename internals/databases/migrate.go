// file: internals/databases/migrate.go
package database

import (
	"log"

	coursemodel "campusku_backend/internals/features/scheduling/courses/model"
	groupmodel "campusku_backend/internals/features/scheduling/groups/model"
	resourcemodel "campusku_backend/internals/features/scheduling/resources/model"
	sessionmodel "campusku_backend/internals/features/scheduling/sessions/model"
)

// AutoMigrateAll creates/updates every scheduling table. The SQL files under
// migrations/ stay the source of truth for partial unique indexes; this is
// for dev environments.
func AutoMigrateAll() {
	err := DB.AutoMigrate(
		&sessionmodel.SessionModel{},

		&resourcemodel.StudentModel{},
		&resourcemodel.FacultyModel{},
		&resourcemodel.HallModel{},

		&groupmodel.StudentGroupModel{},
		&groupmodel.FacultyGroupModel{},
		&groupmodel.HallGroupModel{},
		&groupmodel.StudentGroupMemberModel{},
		&groupmodel.FacultyGroupMemberModel{},
		&groupmodel.HallGroupMemberModel{},

		&coursemodel.CourseModel{},
		&coursemodel.CourseFacultyModel{},
		&coursemodel.CourseHallModel{},
		&coursemodel.CourseFacultyGroupModel{},
		&coursemodel.CourseHallGroupModel{},
		&coursemodel.CourseStudentModel{},
		&coursemodel.CourseStudentGroupModel{},
	)
	if err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}
	log.Println("auto-migrate done.")
}
