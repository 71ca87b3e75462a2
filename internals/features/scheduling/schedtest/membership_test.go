// file: internals/features/scheduling/schedtest/membership_test.go
package schedtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusku_backend/internals/features/scheduling/errs"
	groupservice "campusku_backend/internals/features/scheduling/groups/service"
)

func TestAddMembersDuplicateWithinBatch(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	sessionID := seedSession(t, db, "2026/2027")
	groupID := seedStudentGroup(t, db, sessionID, "CS Year 1")
	studentID := seedStudent(t, db, sessionID, "S-0001", "Alia Rahman")

	res, err := groupservice.AddMembers(ctx, db, groupservice.StudentKind, groupID,
		[]uuid.UUID{studentID, studentID})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{studentID}, res.Added)
	assert.Equal(t, 1, res.FailedCount)
	assert.EqualValues(t, 1, tableCount(t, db, "student_group_members"),
		"the pair must exist exactly once")
}

func TestAddMembersExistingPairCountsAsFailed(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	sessionID := seedSession(t, db, "2026/2027")
	groupID := seedStudentGroup(t, db, sessionID, "CS Year 1")
	studentID := seedStudent(t, db, sessionID, "S-0001", "Alia Rahman")

	first, err := groupservice.AddMembers(ctx, db, groupservice.StudentKind, groupID,
		[]uuid.UUID{studentID})
	require.NoError(t, err)
	require.Len(t, first.Added, 1)

	second, err := groupservice.AddMembers(ctx, db, groupservice.StudentKind, groupID,
		[]uuid.UUID{studentID})
	require.NoError(t, err)

	assert.Empty(t, second.Added)
	assert.Equal(t, 1, second.FailedCount)
	assert.EqualValues(t, 1, tableCount(t, db, "student_group_members"))
}

func TestAddMembersRejectsForeignCandidates(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	sessionID := seedSession(t, db, "2026/2027")
	otherID := seedSession(t, db, "2027/2028")
	groupID := seedStudentGroup(t, db, sessionID, "CS Year 1")
	localID := seedStudent(t, db, sessionID, "S-0001", "Alia Rahman")
	foreignID := seedStudent(t, db, otherID, "S-0900", "Budi Santoso")

	res, err := groupservice.AddMembers(ctx, db, groupservice.StudentKind, groupID,
		[]uuid.UUID{localID, foreignID})

	var cross *errs.CrossSessionError
	require.ErrorAs(t, err, &cross)
	assert.Equal(t, []uuid.UUID{foreignID}, cross.InvalidIDs)
	assert.Nil(t, res)
	assert.EqualValues(t, 0, tableCount(t, db, "student_group_members"),
		"a rejected batch must write nothing, valid candidates included")
}

func TestRemoveMembersReportsRemovedCount(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	sessionID := seedSession(t, db, "2026/2027")
	groupID := seedStudentGroup(t, db, sessionID, "CS Year 1")
	aID := seedStudent(t, db, sessionID, "S-0001", "Alia Rahman")
	bID := seedStudent(t, db, sessionID, "S-0002", "Budi Santoso")

	_, err := groupservice.AddMembers(ctx, db, groupservice.StudentKind, groupID,
		[]uuid.UUID{aID, bID})
	require.NoError(t, err)

	removed, err := groupservice.RemoveMembers(ctx, db, groupservice.StudentKind, groupID,
		[]uuid.UUID{aID, uuid.New()})
	require.NoError(t, err)

	assert.EqualValues(t, 1, removed)
	assert.EqualValues(t, 1, tableCount(t, db, "student_group_members"))
}

func TestGroupRenameKeepsOwnName(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	sessionID := seedSession(t, db, "2026/2027")
	groupID := seedStudentGroup(t, db, sessionID, "CS Year 1")

	require.NoError(t, groupservice.EnsureNameFree(
		ctx, db, groupservice.StudentKind, sessionID, "CS Year 1", &groupID),
		"renaming a group to its current name is a no-op")

	var conflict *errs.ConflictError
	err := groupservice.EnsureNameFree(ctx, db, groupservice.StudentKind, sessionID, "CS Year 1", nil)
	require.ErrorAs(t, err, &conflict)
}
