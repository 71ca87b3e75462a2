// file: internals/features/scheduling/courses/service/counter_test.go
package service

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusku_backend/internals/features/scheduling/errs"
)

func TestParseDelta(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"-1", -1, false},
		{"0", 0, false},
		{"42", 42, false},
		{"3.0", 3, false},
		{"-2.0", -2, false},
		{"3.5", 0, true},
		{"-0.1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1e2", 100, false}, // 100.0 is integer-valued
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDelta(json.Number(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidDelta)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDeltaInverse(t *testing.T) {
	plus, err := ParseDelta(json.Number("1"))
	require.NoError(t, err)
	minus, err := ParseDelta(json.Number("-1"))
	require.NoError(t, err)
	assert.Zero(t, plus+minus, "+1 then -1 cancels out")
}

func TestRelationDescriptors(t *testing.T) {
	assert.Len(t, AllRelations, 6)

	seen := map[string]bool{}
	for _, rel := range AllRelations {
		assert.NotEmpty(t, rel.Label)
		assert.NotEmpty(t, rel.Table)
		assert.NotEmpty(t, rel.CourseCol)
		assert.NotEmpty(t, rel.TargetCol)
		assert.NotEmpty(t, rel.TargetTable)
		assert.NotEmpty(t, rel.TargetSessionCol)
		assert.False(t, seen[rel.Table], "relation tables must be distinct")
		seen[rel.Table] = true
	}
}

func TestMissingFromCourseTargets(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, []uuid.UUID{b}, missingFrom([]uuid.UUID{a, b}, []uuid.UUID{a}))
	assert.Empty(t, missingFrom([]uuid.UUID{a}, []uuid.UUID{a, b}))
}
