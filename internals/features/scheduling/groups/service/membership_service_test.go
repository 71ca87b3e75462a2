// file: internals/features/scheduling/groups/service/membership_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.Equal(t, []uuid.UUID{a, b}, dedupe([]uuid.UUID{a, b, a, a, b}))
	assert.Empty(t, dedupe(nil))
}

func TestMissingFrom(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	t.Run("all found", func(t *testing.T) {
		assert.Empty(t, missingFrom([]uuid.UUID{a, b}, []uuid.UUID{b, a}))
	})

	t.Run("one missing", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{c}, missingFrom([]uuid.UUID{a, c}, []uuid.UUID{a}))
	})

	t.Run("repeated requests reported once", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{c}, missingFrom([]uuid.UUID{c, c, a}, []uuid.UUID{a}))
	})
}

func TestKindDescriptorsAreComplete(t *testing.T) {
	for _, k := range []Kind{StudentKind, FacultyKind, HallKind} {
		assert.NotEmpty(t, k.Label)
		assert.NotEmpty(t, k.GroupTable)
		assert.NotEmpty(t, k.GroupIDCol)
		assert.NotEmpty(t, k.GroupSessionCol)
		assert.NotEmpty(t, k.GroupNameCol)
		assert.NotEmpty(t, k.GroupWindowPrefix)
		assert.NotEmpty(t, k.GroupTimetableCol)
		assert.NotEmpty(t, k.GroupCreatedCol)
		assert.NotEmpty(t, k.GroupUpdatedCol)
		assert.NotEmpty(t, k.GroupDeletedCol)
		assert.NotEmpty(t, k.MemberTable)
		assert.NotEmpty(t, k.MemberGroupCol)
		assert.NotEmpty(t, k.MemberResourceCol)
		assert.NotEmpty(t, k.ResourceTable)
		assert.NotEmpty(t, k.ResourceIDCol)
		assert.NotEmpty(t, k.ResourceSessionCol)
		assert.NotEmpty(t, k.ResourceDeletedCol)
	}
}
