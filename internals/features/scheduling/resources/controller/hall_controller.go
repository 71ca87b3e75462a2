// file: internals/features/scheduling/resources/controller/hall_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseservice "campusku_backend/internals/features/scheduling/courses/service"
	"campusku_backend/internals/features/scheduling/errs"
	"campusku_backend/internals/features/scheduling/resources/dto"
	"campusku_backend/internals/features/scheduling/resources/model"
	sessionservice "campusku_backend/internals/features/scheduling/sessions/service"
	helper "campusku_backend/internals/helpers"
)

type HallController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHallController(db *gorm.DB, v *validator.Validate) *HallController {
	return &HallController{DB: db, Validate: v}
}

func (ctl *HallController) Create(c *fiber.Ctx) error {
	var req dto.CreateHallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := sessionservice.SessionExists(c.UserContext(), ctl.DB, req.HallSessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if !ok {
		return helper.FromDomainError(c, errs.ErrSessionNotFound)
	}

	raw, err := checkAvailability(req.HallWindow, req.HallTimetable)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	m := model.HallModel{
		HallSessionID: req.HallSessionID,
		HallName:      req.HallName,
		HallBuilding:  req.HallBuilding,
		HallFloor:     req.HallFloor,
		HallCapacity:  req.HallCapacity,
		HallWindow:    req.HallWindow,
		HallTimetable: raw,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FromDomainError(c, &errs.ConflictError{Entity: "hall", Value: req.HallName})
		}
		return helper.FromDomainError(c, err)
	}

	resp, err := dto.ToHallResponse(m)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Hall created", resp)
}

func (ctl *HallController) List(c *fiber.Ctx) error {
	var q dto.ListHallsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.HallModel{})
	if q.SessionID != nil {
		db = db.Where("hall_session_id = ?", *q.SessionID)
	}
	if q.Building != "" {
		db = db.Where("hall_building = ?", q.Building)
	}
	if q.Search != "" {
		db = db.Where("LOWER(hall_name) LIKE ?", helper.SearchPattern(q.Search))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	switch q.Sort {
	case "name_desc":
		db = db.Order("hall_name DESC")
	case "created_asc":
		db = db.Order("hall_created_at ASC")
	case "created_desc":
		db = db.Order("hall_created_at DESC")
	default:
		db = db.Order("hall_name ASC")
	}

	var rows []model.HallModel
	if err := db.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	out := make([]dto.HallResponse, 0, len(rows))
	for _, m := range rows {
		resp, err := dto.ToHallResponse(m)
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

func (ctl *HallController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.HallModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("hall_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrResourceNotFound)
		}
		return helper.FromDomainError(c, err)
	}
	resp, err := dto.ToHallResponse(m)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "OK", resp)
}

func (ctl *HallController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateHallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.HallModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("hall_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrResourceNotFound)
		}
		return helper.FromDomainError(c, err)
	}

	updates := req.BuildUpdateMap()
	raw, err := revalidate(m.HallWindow, m.HallTimetable, req.HallWindow, req.HallTimetable)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if raw != nil {
		updates["hall_timetable"] = raw
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m).Updates(updates).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	var fresh model.HallModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("hall_id = ?", id).
		First(&fresh).Error; err != nil {
		return helper.FromDomainError(c, err)
	}
	resp, err := dto.ToHallResponse(fresh)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Hall updated", resp)
}

// Delete refuses while any course still mandates this hall.
func (ctl *HallController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.HallModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("hall_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrResourceNotFound)
		}
		return helper.FromDomainError(c, err)
	}

	n, err := courseservice.CountHallDependents(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if n > 0 {
		return helper.FromDomainError(c, &errs.ResourceInUseError{Resource: "hall", Count: n})
	}

	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM hall_group_members WHERE hall_group_member_hall_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Hall deleted", fiber.Map{"hall_id": id})
}
