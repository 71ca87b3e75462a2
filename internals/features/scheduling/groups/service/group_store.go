// file: internals/features/scheduling/groups/service/group_store.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/errs"
	"campusku_backend/internals/features/scheduling/timetable"
)

/* =======================================================
   Kind-agnostic group store.

   The three group tables share one shape, so reads alias
   their columns onto GroupRow and one code path serves
   students, faculty and halls alike.
   ======================================================= */

type GroupRow struct {
	GroupID   uuid.UUID `gorm:"column:group_id" json:"group_id"`
	SessionID uuid.UUID `gorm:"column:session_id" json:"session_id"`
	GroupName string    `gorm:"column:group_name" json:"group_name"`

	StartHour   int `gorm:"column:start_hour" json:"-"`
	StartMinute int `gorm:"column:start_minute" json:"-"`
	EndHour     int `gorm:"column:end_hour" json:"-"`
	EndMinute   int `gorm:"column:end_minute" json:"-"`

	Timetable datatypes.JSON `gorm:"column:group_timetable" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (r GroupRow) Window() timetable.Window {
	return timetable.Window{
		StartHour:   r.StartHour,
		StartMinute: r.StartMinute,
		EndHour:     r.EndHour,
		EndMinute:   r.EndMinute,
	}
}

func selectCols(k Kind) string {
	return fmt.Sprintf(
		"%s AS group_id, %s AS session_id, %s AS group_name, "+
			"%sstart_hour AS start_hour, %sstart_minute AS start_minute, "+
			"%send_hour AS end_hour, %send_minute AS end_minute, "+
			"%s AS group_timetable, %s AS created_at, %s AS updated_at",
		k.GroupIDCol, k.GroupSessionCol, k.GroupNameCol,
		k.GroupWindowPrefix, k.GroupWindowPrefix,
		k.GroupWindowPrefix, k.GroupWindowPrefix,
		k.GroupTimetableCol, k.GroupCreatedCol, k.GroupUpdatedCol,
	)
}

// GetGroup loads one alive group.
func GetGroup(ctx context.Context, db *gorm.DB, k Kind, groupID uuid.UUID) (*GroupRow, error) {
	var row GroupRow
	res := db.WithContext(ctx).
		Table(k.GroupTable).
		Select(selectCols(k)).
		Where(fmt.Sprintf("%s = ? AND %s IS NULL", k.GroupIDCol, k.GroupDeletedCol), groupID).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, fmt.Errorf("%s: get: %w", k.Label, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrGroupNotFound
	}
	return &row, nil
}

// ListGroups returns one page of alive groups plus the total.
func ListGroups(ctx context.Context, db *gorm.DB, k Kind, sessionID *uuid.UUID, search, sort string, limit, offset int) ([]GroupRow, int64, error) {
	q := db.WithContext(ctx).
		Table(k.GroupTable).
		Where(fmt.Sprintf("%s IS NULL", k.GroupDeletedCol))
	if sessionID != nil {
		q = q.Where(fmt.Sprintf("%s = ?", k.GroupSessionCol), *sessionID)
	}
	if search != "" {
		q = q.Where(fmt.Sprintf("LOWER(%s) LIKE ?", k.GroupNameCol), "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", k.Label, err)
	}

	switch sort {
	case "name_desc":
		q = q.Order(k.GroupNameCol + " DESC")
	case "created_asc":
		q = q.Order(k.GroupCreatedCol + " ASC")
	case "created_desc":
		q = q.Order(k.GroupCreatedCol + " DESC")
	default:
		q = q.Order(k.GroupNameCol + " ASC")
	}

	rows := []GroupRow{}
	if err := q.Select(selectCols(k)).Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("%s: list: %w", k.Label, err)
	}
	return rows, total, nil
}

// CreateGroup enforces the per-session name invariant and inserts the row.
func CreateGroup(ctx context.Context, db *gorm.DB, k Kind, sessionID uuid.UUID, name string, win timetable.Window, tt datatypes.JSON) (*GroupRow, error) {
	if err := EnsureNameFree(ctx, db, k, sessionID, name, nil); err != nil {
		return nil, err
	}

	var id uuid.UUID
	insert := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %sstart_hour, %sstart_minute, %send_hour, %send_minute, %s) "+
			"VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING %s",
		k.GroupTable, k.GroupSessionCol, k.GroupNameCol,
		k.GroupWindowPrefix, k.GroupWindowPrefix, k.GroupWindowPrefix, k.GroupWindowPrefix,
		k.GroupTimetableCol, k.GroupIDCol,
	)
	if err := db.WithContext(ctx).
		Raw(insert, sessionID, name, win.StartHour, win.StartMinute, win.EndHour, win.EndMinute, tt).
		Scan(&id).Error; err != nil {
		return nil, fmt.Errorf("%s: create: %w", k.Label, err)
	}
	return GetGroup(ctx, db, k, id)
}

// UpdateGroup applies a partial column map to one alive group.
func UpdateGroup(ctx context.Context, db *gorm.DB, k Kind, groupID uuid.UUID, updates map[string]interface{}) (*GroupRow, error) {
	if len(updates) == 0 {
		return GetGroup(ctx, db, k, groupID)
	}
	updates[k.GroupUpdatedCol] = time.Now()

	res := db.WithContext(ctx).
		Table(k.GroupTable).
		Where(fmt.Sprintf("%s = ? AND %s IS NULL", k.GroupIDCol, k.GroupDeletedCol), groupID).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("%s: update: %w", k.Label, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrGroupNotFound
	}
	return GetGroup(ctx, db, k, groupID)
}
