// file: internals/helpers/response.go
package helper

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	scherrs "campusku_backend/internals/features/scheduling/errs"
	"campusku_backend/internals/features/scheduling/timetable"
)

/* =======================================================
   JSON envelope
   ======================================================= */

// Success responds 200 with the standard envelope.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// SuccessWithCode responds with a custom code (e.g. 201 for created).
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  details,
	})
}

// ValidationError renders validator.v10 failures field by field.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", fields)
}

/* =======================================================
   Domain error mapping
   ======================================================= */

// FromDomainError maps a scheduling service error onto the envelope.
// Validation/not-found/conflict categories surface as structured failures;
// cascade and storage errors are logged with context and reported opaquely.
func FromDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scherrs.ErrSessionNotFound),
		errors.Is(err, scherrs.ErrGroupNotFound),
		errors.Is(err, scherrs.ErrCourseNotFound),
		errors.Is(err, scherrs.ErrResourceNotFound):
		return Error(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, scherrs.ErrInvalidDelta):
		return Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var conflict *scherrs.ConflictError
	if errors.As(err, &conflict) {
		return Error(c, fiber.StatusConflict, conflict.Error())
	}

	var cross *scherrs.CrossSessionError
	if errors.As(err, &cross) {
		return ErrorWithDetails(c, fiber.StatusUnprocessableEntity,
			"Some candidates are missing or belong to another session",
			fiber.Map{"invalid_ids": cross.InvalidIDs})
	}

	var inUse *scherrs.ResourceInUseError
	if errors.As(err, &inUse) {
		return ErrorWithDetails(c, fiber.StatusConflict, inUse.Error(),
			fiber.Map{"dependent_count": inUse.Count})
	}

	var winErr *timetable.WindowError
	if errors.As(err, &winErr) {
		return Error(c, fiber.StatusUnprocessableEntity, winErr.Error())
	}
	var dayErr *timetable.UnknownDayError
	if errors.As(err, &dayErr) {
		return Error(c, fiber.StatusUnprocessableEntity, dayErr.Error())
	}
	var oow *timetable.OutOfWindowError
	if errors.As(err, &oow) {
		return ErrorWithDetails(c, fiber.StatusUnprocessableEntity, oow.Error(),
			fiber.Map{"day": oow.Day, "slot_index": oow.Index})
	}
	var overlap *timetable.OverlapError
	if errors.As(err, &overlap) {
		return ErrorWithDetails(c, fiber.StatusUnprocessableEntity, overlap.Error(),
			fiber.Map{"day": overlap.Day})
	}

	var cascade *scherrs.CascadeError
	if errors.As(err, &cascade) {
		log.Printf("[CASCADE] failed after step=%q partial=%v err=%v", cascade.Step, cascade.Partial, cascade.Err)
		return ErrorWithDetails(c, fiber.StatusInternalServerError,
			"Cascade delete failed; no partial state was committed",
			fiber.Map{"completed_step": cascade.Step, "partial_counts": cascade.Partial})
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}

	log.Printf("[STORAGE] unexpected error: %v", err)
	return Error(c, fiber.StatusInternalServerError, "Internal error")
}
