// file: internals/features/scheduling/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusku_backend/internals/features/scheduling/errs"
	"campusku_backend/internals/features/scheduling/sessions/dto"
	"campusku_backend/internals/features/scheduling/sessions/model"
	"campusku_backend/internals/features/scheduling/sessions/service"
	helper "campusku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB, v *validator.Validate) *SessionController {
	return &SessionController{DB: db, Validate: v}
}

func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.EnsureNameFree(c.UserContext(), ctl.DB, req.SessionName, nil); err != nil {
		return helper.FromDomainError(c, err)
	}

	m := model.SessionModel{
		SessionName:    req.SessionName,
		SessionDetails: req.SessionDetails,
		SessionTags:    pq.StringArray(req.SessionTags),
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FromDomainError(c, &errs.ConflictError{Entity: "session", Value: req.SessionName})
		}
		return helper.FromDomainError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Session created", dto.ToSessionResponse(m))
}

func (ctl *SessionController) List(c *fiber.Ctx) error {
	var q dto.ListSessionsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query")
	}
	q.Normalize()
	paging := helper.ResolvePaging(c, 20, 200)

	db := ctl.DB.WithContext(c.UserContext()).Model(&model.SessionModel{})
	if q.Search != "" {
		db = db.Where("LOWER(session_name) LIKE ?", helper.SearchPattern(q.Search))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	switch q.Sort {
	case "name_desc":
		db = db.Order("session_name DESC")
	case "created_asc":
		db = db.Order("session_created_at ASC")
	case "created_desc":
		db = db.Order("session_created_at DESC")
	default:
		db = db.Order("session_name ASC")
	}

	var rows []model.SessionModel
	if err := db.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.FromDomainError(c, err)
	}

	out := make([]dto.SessionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToSessionResponse(m))
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      out,
		"pagination": helper.BuildPagination(total, paging, len(out)),
	})
}

func (ctl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var m model.SessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("session_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrSessionNotFound)
		}
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "OK", dto.ToSessionResponse(m))
}

func (ctl *SessionController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.SessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("session_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromDomainError(c, errs.ErrSessionNotFound)
		}
		return helper.FromDomainError(c, err)
	}

	// renaming to the current name is a no-op, not a conflict
	if req.SessionName != nil && *req.SessionName != m.SessionName {
		if err := service.EnsureNameFree(c.UserContext(), ctl.DB, *req.SessionName, &id); err != nil {
			return helper.FromDomainError(c, err)
		}
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m).Clauses(clause.Returning{}).
		Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.FromDomainError(c, &errs.ConflictError{Entity: "session", Value: m.SessionName})
		}
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Session updated", dto.ToSessionResponse(m))
}

// Delete runs the full cascade and returns the per-category count report.
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	report, err := service.DeleteSession(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	log.Printf("[Session.Delete] id=%s report=%v", id, report.Counts())
	return helper.Success(c, "Session deleted", report)
}

// Export returns the denormalized snapshot for the downstream scheduler.
func (ctl *SessionController) Export(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}

	snapshot, err := service.ExportSession(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "OK", snapshot)
}
