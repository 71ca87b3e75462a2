// file: internals/features/scheduling/groups/controller/group_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/errs"
	"campusku_backend/internals/features/scheduling/groups/dto"
	"campusku_backend/internals/features/scheduling/groups/service"
	sessionservice "campusku_backend/internals/features/scheduling/sessions/service"
	"campusku_backend/internals/features/scheduling/timetable"
	helper "campusku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER

   One controller serves all three group kinds; the route
   layer instantiates it with the matching Kind descriptor.
   ======================================================= */

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Kind     service.Kind
}

func NewGroupController(db *gorm.DB, v *validator.Validate, k service.Kind) *GroupController {
	return &GroupController{DB: db, Validate: v, Kind: k}
}

func (ctl *GroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := sessionservice.SessionExists(c.UserContext(), ctl.DB, req.GroupSessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if !ok {
		return helper.FromDomainError(c, errs.ErrSessionNotFound)
	}

	week, err := req.GroupTimetable.Normalize()
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if err := timetable.Validate(week, req.GroupWindow); err != nil {
		return helper.FromDomainError(c, err)
	}
	raw, err := timetable.Encode(week)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	row, err := service.CreateGroup(c.UserContext(), ctl.DB, ctl.Kind, req.GroupSessionID, req.GroupName, req.GroupWindow, raw)
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FromDomainError(c, &errs.ConflictError{Entity: ctl.Kind.Label, Value: req.GroupName})
		}
		return helper.FromDomainError(c, err)
	}

	resp, err := dto.ToGroupResponse(*row)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Group created", resp)
}

func (ctl *GroupController) List(c *fiber.Ctx) error {
	var q dto.ListGroupsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()
	paging := helper.ResolvePaging(c, 20, 200)

	rows, total, err := service.ListGroups(c.UserContext(), ctl.DB, ctl.Kind, q.SessionID, q.Search, q.Sort, paging.Limit, paging.Offset)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	out := make([]dto.GroupResponse, 0, len(rows))
	for _, row := range rows {
		resp, err := dto.ToGroupResponse(row)
		if err != nil {
			return helper.FromDomainError(c, err)
		}
		out = append(out, resp)
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPagination(total, paging, len(out)),
	})
}

func (ctl *GroupController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	row, err := service.GetGroup(c.UserContext(), ctl.DB, ctl.Kind, id)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	resp, err := dto.ToGroupResponse(*row)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "OK", resp)
}

func (ctl *GroupController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	cur, err := service.GetGroup(c.UserContext(), ctl.DB, ctl.Kind, id)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	if req.GroupName != nil && *req.GroupName != cur.GroupName {
		if err := service.EnsureNameFree(c.UserContext(), ctl.DB, ctl.Kind, cur.SessionID, *req.GroupName, &id); err != nil {
			return helper.FromDomainError(c, err)
		}
	}

	updates := req.BuildUpdateMap(ctl.Kind)

	// recheck the effective window/timetable pair when either side moved
	if req.GroupWindow != nil || req.GroupTimetable != nil {
		win := cur.Window()
		if req.GroupWindow != nil {
			win = *req.GroupWindow
		}
		week, err := timetable.Decode(cur.Timetable)
		if err != nil {
			return helper.FromDomainError(c, err)
		}
		if req.GroupTimetable != nil {
			week, err = req.GroupTimetable.Normalize()
			if err != nil {
				return helper.FromDomainError(c, err)
			}
		}
		if err := timetable.Validate(week, win); err != nil {
			return helper.FromDomainError(c, err)
		}
		if req.GroupTimetable != nil {
			raw, err := timetable.Encode(week)
			if err != nil {
				return helper.FromDomainError(c, err)
			}
			updates[ctl.Kind.GroupTimetableCol] = raw
		}
	}

	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	row, err := service.UpdateGroup(c.UserContext(), ctl.DB, ctl.Kind, id, updates)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	resp, err := dto.ToGroupResponse(*row)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Group updated", resp)
}

// Delete removes the group and its membership rows; links from courses to the
// group stay untouched until the owning session is torn down.
func (ctl *GroupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	removed, err := service.DeleteGroup(c.UserContext(), ctl.DB, ctl.Kind, id)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Group deleted", fiber.Map{
		"group_id":        id,
		"removed_members": removed,
	})
}

/* =======================================================
   MEMBERSHIP ENDPOINTS
   ======================================================= */

func (ctl *GroupController) AddMembers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.MemberIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := service.AddMembers(c.UserContext(), ctl.DB, ctl.Kind, id, req.ResourceIDs)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Members added", res)
}

func (ctl *GroupController) RemoveMembers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.MemberIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	n, err := service.RemoveMembers(c.UserContext(), ctl.DB, ctl.Kind, id, req.ResourceIDs)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Members removed", dto.RemoveMembersResponse{RemovedCount: n})
}
