// file: internals/features/scheduling/resources/controller/faculty_controller.go
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

type FacultyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFacultyController(db *gorm.DB, v *validator.Validate) *FacultyController {
	return &FacultyController{DB: db, Validate: v}
}

func (ctl *FacultyController) Create(c *fiber.Ctx) error {
	var req dto.CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := sessionservice.SessionExists(c.UserContext(), ctl.DB, req.FacultySessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if !ok {
		return helper.FromDomainError(c, errs.ErrSessionNotFound)
	}

	raw, err := checkAvailability(req.FacultyWindow, req.FacultyTimetable)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	m := model.FacultyModel{
		FacultySessionID: req.FacultySessionID,
		FacultyName:      req.FacultyName,
		FacultyShortForm: req.FacultyShortForm,
		FacultyWindow:    req.FacultyWindow,
		FacultyTimetable: raw,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FromDomainError(c, &errs.ConflictError{Entity: "faculty", Value: req.FacultyShortForm})
		}
		return helper.FromDomainError(c, err)
	}

	resp, err := dto.ToFacultyResponse(m)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Faculty created", resp)
}

func (ctl *FacultyController) List(c *fiber.Ctx) error {
	var q dto.ListFacultyQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.FacultyModel{})
	if q.SessionID != nil {
		db = db.Where("faculty_session_id = ?", *q.SessionID)
	}
	if q.Search != "" {
		pattern := helper.SearchPattern(q.Search)
		db = db.Where("LOWER(faculty_name) LIKE ? OR LOWER(faculty_short_form) LIKE ?",
			pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	switch q.Sort {
	case "name_desc":
		db = db.Order("faculty_name DESC")
	case "created_asc":
		db = db.Order("faculty_created_at ASC")
	case "created_desc":
		db = db.Order("faculty_created_at DESC")
	default:
		db = db.Order("faculty_name ASC")
	}

	var rows []model.FacultyModel
	if err := db.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	out := make([]dto.FacultyResponse, 0, len(rows))
	for _, m := range rows {
		resp, err := dto.ToFacultyResponse(m)
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

func (ctl *FacultyController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.FacultyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("faculty_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrResourceNotFound)
		}
		return helper.FromDomainError(c, err)
	}
	resp, err := dto.ToFacultyResponse(m)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "OK", resp)
}

func (ctl *FacultyController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.FacultyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("faculty_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrResourceNotFound)
		}
		return helper.FromDomainError(c, err)
	}

	updates := req.BuildUpdateMap()
	raw, err := revalidate(m.FacultyWindow, m.FacultyTimetable, req.FacultyWindow, req.FacultyTimetable)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if raw != nil {
		updates["faculty_timetable"] = raw
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m).Updates(updates).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	var fresh model.FacultyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("faculty_id = ?", id).
		First(&fresh).Error; err != nil {
		return helper.FromDomainError(c, err)
	}
	resp, err := dto.ToFacultyResponse(fresh)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Faculty updated", resp)
}

// Delete refuses while any course still mandates this faculty member.
func (ctl *FacultyController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.FacultyModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("faculty_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrResourceNotFound)
		}
		return helper.FromDomainError(c, err)
	}

	n, err := courseservice.CountFacultyDependents(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if n > 0 {
		return helper.FromDomainError(c, &errs.ResourceInUseError{Resource: "faculty", Count: n})
	}

	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM faculty_group_members WHERE faculty_group_member_faculty_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Faculty deleted", fiber.Map{"faculty_id": id})
}
