// file: internals/helpers/pg_test.go
package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_sessions_name_alive" (SQLSTATE 23505)`)))
	assert.True(t, IsUniqueViolation(errors.New("unique constraint failed")))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
}
