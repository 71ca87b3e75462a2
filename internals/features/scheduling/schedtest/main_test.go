// file: internals/features/scheduling/schedtest/main_test.go
package schedtest

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/* =======================================================
   Database-backed suite for the scheduling core.

   Wired once in TestMain against the database named by
   SCHED_TEST_DB_DSN; every test skips when the variable
   is unset. The shipped migration files are applied
   down-then-up so the suite runs against the real schema,
   including its unique indexes and column defaults.
   ======================================================= */

var testDB *gorm.DB

func TestMain(m *testing.M) {
	if dsn := os.Getenv("SCHED_TEST_DB_DSN"); dsn != "" {
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // migration files are multi-statement
		}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			fmt.Fprintf(os.Stderr, "open test database: %v\n", err)
			os.Exit(1)
		}
		if err := applyMigrations(db); err != nil {
			fmt.Fprintf(os.Stderr, "apply migrations: %v\n", err)
			os.Exit(1)
		}
		testDB = db
	}
	os.Exit(m.Run())
}

// requireDB hands out an empty database, or skips the test when no DSN is set.
func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("SCHED_TEST_DB_DSN not set")
	}
	err := testDB.Exec(`TRUNCATE TABLE
		course_enrolled_student_groups, course_enrolled_students,
		course_compulsory_hall_groups, course_compulsory_faculty_groups,
		course_compulsory_halls, course_compulsory_faculty, courses,
		hall_group_members, faculty_group_members, student_group_members,
		hall_groups, faculty_groups, student_groups,
		halls, faculty, students, sessions CASCADE`).Error
	require.NoError(t, err, "reset tables")
	return testDB
}

func applyMigrations(db *gorm.DB) error {
	for _, name := range []string{"0001_init.down.sql", "0001_init.up.sql"} {
		raw, err := os.ReadFile(migrationFile(name))
		if err != nil {
			return err
		}
		if err := db.Exec(string(raw)).Error; err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func migrationFile(name string) string {
	_, self, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(self), "..", "..", "..", "..", "migrations", name)
}

func tableCount(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
