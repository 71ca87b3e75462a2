// file: internals/features/scheduling/resources/controller/student_controller.go
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

/* =======================================================
   CONTROLLER
   ======================================================= */

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := sessionservice.SessionExists(c.UserContext(), ctl.DB, req.StudentSessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if !ok {
		return helper.FromDomainError(c, errs.ErrSessionNotFound)
	}

	raw, err := checkAvailability(req.StudentWindow, req.StudentTimetable)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	m := model.StudentModel{
		StudentSessionID: req.StudentSessionID,
		StudentDigitalID: req.StudentDigitalID,
		StudentName:      req.StudentName,
		StudentWindow:    req.StudentWindow,
		StudentTimetable: raw,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FromDomainError(c, &errs.ConflictError{Entity: "student", Value: req.StudentDigitalID})
		}
		return helper.FromDomainError(c, err)
	}

	resp, err := dto.ToStudentResponse(m)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", resp)
}

func (ctl *StudentController) List(c *fiber.Ctx) error {
	var q dto.ListStudentsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if q.SessionID != nil {
		db = db.Where("student_session_id = ?", *q.SessionID)
	}
	if q.Search != "" {
		pattern := helper.SearchPattern(q.Search)
		db = db.Where("LOWER(student_name) LIKE ? OR LOWER(student_digital_id) LIKE ?",
			pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	switch q.Sort {
	case "name_desc":
		db = db.Order("student_name DESC")
	case "created_asc":
		db = db.Order("student_created_at ASC")
	case "created_desc":
		db = db.Order("student_created_at DESC")
	default:
		db = db.Order("student_name ASC")
	}

	var rows []model.StudentModel
	if err := db.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for _, m := range rows {
		resp, err := dto.ToStudentResponse(m)
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

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrResourceNotFound)
		}
		return helper.FromDomainError(c, err)
	}
	resp, err := dto.ToStudentResponse(m)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "OK", resp)
}

// Patch revalidates the effective window + timetable pair, whichever side
// the request touched.
func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrResourceNotFound)
		}
		return helper.FromDomainError(c, err)
	}

	updates := req.BuildUpdateMap()
	raw, err := revalidate(m.StudentWindow, m.StudentTimetable, req.StudentWindow, req.StudentTimetable)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if raw != nil {
		updates["student_timetable"] = raw
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FromDomainError(c, &errs.ConflictError{Entity: "student", Value: m.StudentDigitalID})
		}
		return helper.FromDomainError(c, err)
	}

	var fresh model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).
		First(&fresh).Error; err != nil {
		return helper.FromDomainError(c, err)
	}
	resp, err := dto.ToStudentResponse(fresh)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Student updated", resp)
}

// Delete refuses while the student is still enrolled in any course.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrResourceNotFound)
		}
		return helper.FromDomainError(c, err)
	}

	n, err := courseservice.CountStudentDependents(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if n > 0 {
		return helper.FromDomainError(c, &errs.ResourceInUseError{Resource: "student", Count: n})
	}

	if err := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		// membership rows go with the student
		if err := tx.Exec("DELETE FROM student_group_members WHERE student_group_member_student_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Student deleted", fiber.Map{"student_id": id})
}
