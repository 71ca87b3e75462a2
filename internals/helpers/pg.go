// file: internals/helpers/pg.go
package helper

import "strings"

// IsUniqueViolation detects Postgres unique violations by message so it works
// for both lib/pq and wrapped pgx errors.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}
