// file: internals/features/scheduling/groups/service/membership_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/errs"
)

/* =======================================================
   Group Membership Ledger

   AddMembers: all-or-nothing session precondition, then
   per-item best-effort insertion (a duplicate never
   poisons the batch). RemoveMembers: set subtraction.
   ======================================================= */

type AddResult struct {
	Added       []uuid.UUID `json:"added"`
	FailedCount int         `json:"failed_count"`
}

// GroupSession resolves the owning session of an alive group.
func GroupSession(ctx context.Context, db *gorm.DB, k Kind, groupID uuid.UUID) (uuid.UUID, error) {
	var sid uuid.UUID
	res := db.WithContext(ctx).
		Table(k.GroupTable).
		Select(k.GroupSessionCol).
		Where(fmt.Sprintf("%s = ? AND %s IS NULL", k.GroupIDCol, k.GroupDeletedCol), groupID).
		Limit(1).
		Scan(&sid)
	if res.Error != nil {
		return uuid.Nil, fmt.Errorf("%s: resolve session: %w", k.Label, res.Error)
	}
	if res.RowsAffected == 0 {
		return uuid.Nil, errs.ErrGroupNotFound
	}
	return sid, nil
}

// AddMembers verifies every candidate exists alive in the group's session
// (whole batch rejected otherwise), then inserts per item; rows already
// present — including duplicates within the batch — count as failed.
func AddMembers(ctx context.Context, db *gorm.DB, k Kind, groupID uuid.UUID, resourceIDs []uuid.UUID) (*AddResult, error) {
	sessionID, err := GroupSession(ctx, db, k, groupID)
	if err != nil {
		return nil, err
	}

	out := &AddResult{Added: []uuid.UUID{}}
	if len(resourceIDs) == 0 {
		return out, nil
	}

	var found []uuid.UUID
	if err := db.WithContext(ctx).
		Table(k.ResourceTable).
		Where(fmt.Sprintf("%s IN ? AND %s = ? AND %s IS NULL",
			k.ResourceIDCol, k.ResourceSessionCol, k.ResourceDeletedCol),
			dedupe(resourceIDs), sessionID).
		Pluck(k.ResourceIDCol, &found).Error; err != nil {
		return nil, fmt.Errorf("%s: verify candidates: %w", k.Label, err)
	}

	if invalid := missingFrom(resourceIDs, found); len(invalid) > 0 {
		return nil, &errs.CrossSessionError{InvalidIDs: invalid}
	}

	for _, rid := range resourceIDs {
		res := db.WithContext(ctx).Exec(fmt.Sprintf(
			"INSERT INTO %s (%s, %s) VALUES (?, ?) ON CONFLICT (%s, %s) DO NOTHING",
			k.MemberTable, k.MemberGroupCol, k.MemberResourceCol,
			k.MemberGroupCol, k.MemberResourceCol,
		), groupID, rid)
		if res.Error != nil {
			return nil, fmt.Errorf("%s: insert member %s: %w", k.Label, rid, res.Error)
		}
		if res.RowsAffected == 0 {
			out.FailedCount++
			continue
		}
		out.Added = append(out.Added, rid)
	}
	return out, nil
}

// RemoveMembers deletes all memberships matching (group, resource ∈ set) and
// reports the count actually removed; absent pairs are a no-op.
func RemoveMembers(ctx context.Context, db *gorm.DB, k Kind, groupID uuid.UUID, resourceIDs []uuid.UUID) (int64, error) {
	if _, err := GroupSession(ctx, db, k, groupID); err != nil {
		return 0, err
	}
	if len(resourceIDs) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).Exec(fmt.Sprintf(
		"DELETE FROM %s WHERE %s = ? AND %s IN ?",
		k.MemberTable, k.MemberGroupCol, k.MemberResourceCol,
	), groupID, dedupe(resourceIDs))
	if res.Error != nil {
		return 0, fmt.Errorf("%s: remove members: %w", k.Label, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteGroup soft-deletes the group and hard-deletes its membership rows.
// Resources survive; course links referencing the group are left to the
// session cascade.
func DeleteGroup(ctx context.Context, db *gorm.DB, k Kind, groupID uuid.UUID) (int64, error) {
	var removed int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(fmt.Sprintf(
			"UPDATE %s SET %s = ? WHERE %s = ? AND %s IS NULL",
			k.GroupTable, k.GroupDeletedCol, k.GroupIDCol, k.GroupDeletedCol,
		), time.Now(), groupID)
		if res.Error != nil {
			return fmt.Errorf("%s: delete group: %w", k.Label, res.Error)
		}
		if res.RowsAffected == 0 {
			return errs.ErrGroupNotFound
		}

		mem := tx.Exec(fmt.Sprintf(
			"DELETE FROM %s WHERE %s = ?",
			k.MemberTable, k.MemberGroupCol,
		), groupID)
		if mem.Error != nil {
			return fmt.Errorf("%s: strip memberships: %w", k.Label, mem.Error)
		}
		removed = mem.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// EnsureNameFree enforces per-session name uniqueness among alive groups.
// excludeID skips the group itself so a rename to its current name is a no-op.
func EnsureNameFree(ctx context.Context, db *gorm.DB, k Kind, sessionID uuid.UUID, name string, excludeID *uuid.UUID) error {
	q := db.WithContext(ctx).
		Table(k.GroupTable).
		Where(fmt.Sprintf("%s = ? AND %s = ? AND %s IS NULL",
			k.GroupSessionCol, k.GroupNameCol, k.GroupDeletedCol), sessionID, name)
	if excludeID != nil {
		q = q.Where(fmt.Sprintf("%s <> ?", k.GroupIDCol), *excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return fmt.Errorf("%s: name check: %w", k.Label, err)
	}
	if n > 0 {
		return &errs.ConflictError{Entity: k.Label, Value: name}
	}
	return nil
}

/* =======================================================
   pure helpers
   ======================================================= */

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// missingFrom returns the distinct requested ids that are not in found.
func missingFrom(requested, found []uuid.UUID) []uuid.UUID {
	have := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	var invalid []uuid.UUID
	for _, id := range dedupe(requested) {
		if _, ok := have[id]; !ok {
			invalid = append(invalid, id)
		}
	}
	return invalid
}
