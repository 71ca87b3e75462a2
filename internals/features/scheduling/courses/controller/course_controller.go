// file: internals/features/scheduling/courses/controller/course_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusku_backend/internals/features/scheduling/courses/dto"
	"campusku_backend/internals/features/scheduling/courses/model"
	"campusku_backend/internals/features/scheduling/courses/service"
	"campusku_backend/internals/features/scheduling/errs"
	sessionservice "campusku_backend/internals/features/scheduling/sessions/service"
	helper "campusku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB, v *validator.Validate) *CourseController {
	return &CourseController{DB: db, Validate: v}
}

func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := sessionservice.SessionExists(c.UserContext(), ctl.DB, req.CourseSessionID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if !ok {
		return helper.FromDomainError(c, errs.ErrSessionNotFound)
	}

	if err := service.EnsureCodeFree(c.UserContext(), ctl.DB, req.CourseSessionID, req.CourseCode, nil); err != nil {
		return helper.FromDomainError(c, err)
	}

	m := model.CourseModel{
		CourseSessionID:     req.CourseSessionID,
		CourseCode:          req.CourseCode,
		CourseName:          req.CourseName,
		CourseTotalSessions: req.CourseTotalSessions,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FromDomainError(c, &errs.ConflictError{Entity: "course", Value: req.CourseCode})
		}
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course created", dto.ToCourseResponse(m))
}

func (ctl *CourseController) List(c *fiber.Ctx) error {
	var q dto.ListCoursesQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if q.SessionID != nil {
		db = db.Where("course_session_id = ?", *q.SessionID)
	}
	if q.Search != "" {
		pattern := helper.SearchPattern(q.Search)
		db = db.Where("LOWER(course_name) LIKE ? OR LOWER(course_code) LIKE ?",
			pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	switch q.Sort {
	case "name_asc":
		db = db.Order("course_name ASC")
	case "name_desc":
		db = db.Order("course_name DESC")
	case "created_desc":
		db = db.Order("course_created_at DESC")
	default:
		db = db.Order("course_code ASC")
	}

	var rows []model.CourseModel
	if err := db.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	out := make([]dto.CourseResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToCourseResponse(m))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPagination(total, paging, len(out)),
	})
}

func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("course_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrCourseNotFound)
		}
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "OK", dto.ToCourseResponse(m))
}

func (ctl *CourseController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("course_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrCourseNotFound)
		}
		return helper.FromDomainError(c, err)
	}

	if req.CourseCode != nil && *req.CourseCode != m.CourseCode {
		if err := service.EnsureCodeFree(c.UserContext(), ctl.DB, m.CourseSessionID, *req.CourseCode, &id); err != nil {
			return helper.FromDomainError(c, err)
		}
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FromDomainError(c, &errs.ConflictError{Entity: "course", Value: m.CourseCode})
		}
		return helper.FromDomainError(c, err)
	}

	var fresh model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("course_id = ?", id).
		First(&fresh).Error; err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Course updated", dto.ToCourseResponse(fresh))
}

// Delete soft-deletes the course after stripping all six relation tables;
// the response reports how many rows each table lost.
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	counts, err := service.DeleteCourse(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Course deleted", fiber.Map{
		"course_id":     id,
		"removed_links": counts,
	})
}

// AdjustScheduledCount applies a signed integer delta atomically and returns
// the updated course. Negative results are allowed and left to the caller.
func (ctl *CourseController) AdjustScheduledCount(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.AdjustScheduledCountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	delta, err := service.ParseDelta(req.Delta)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	m, err := service.AdjustScheduledCount(c.UserContext(), ctl.DB, id, delta)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Scheduled count adjusted", dto.ToCourseResponse(*m))
}

/* =======================================================
   RELATION ENDPOINTS

   Route layer binds one handler pair per RelKind.
   ======================================================= */

func (ctl *CourseController) AddLinks(rel service.RelKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
		}

		var req dto.LinkIDsRequest
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
		}
		if err := ctl.Validate.Struct(&req); err != nil {
			return helper.ValidationError(c, err)
		}

		res, err := service.AddLinks(c.UserContext(), ctl.DB, rel, id, req.TargetIDs)
		if err != nil {
			return helper.FromDomainError(c, err)
		}
		return helper.Success(c, "Links added", res)
	}
}

func (ctl *CourseController) RemoveLinks(rel service.RelKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
		}

		var req dto.LinkIDsRequest
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
		}
		if err := ctl.Validate.Struct(&req); err != nil {
			return helper.ValidationError(c, err)
		}

		n, err := service.RemoveLinks(c.UserContext(), ctl.DB, rel, id, req.TargetIDs)
		if err != nil {
			return helper.FromDomainError(c, err)
		}
		return helper.Success(c, "Links removed", dto.RemoveLinksResponse{RemovedCount: n})
	}
}

func (ctl *CourseController) ListLinks(rel service.RelKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
		}

		// 404 for a dead course beats an empty list that lies
		if _, err := service.CourseSession(c.UserContext(), ctl.DB, id); err != nil {
			return helper.FromDomainError(c, err)
		}

		ids, err := service.ListLinkIDs(c.UserContext(), ctl.DB, rel, id)
		if err != nil {
			return helper.FromDomainError(c, err)
		}
		return helper.Success(c, "OK", fiber.Map{"target_ids": ids})
	}
}
