// file: internals/features/scheduling/schedtest/hall_api_test.go
package schedtest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	courseservice "campusku_backend/internals/features/scheduling/courses/service"
	resourcectl "campusku_backend/internals/features/scheduling/resources/controller"
)

func newHallApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := resourcectl.NewHallController(db, validator.New())
	app.Get("/halls", ctl.List)
	app.Delete("/halls/:id", ctl.Delete)
	return app
}

// A hall still mandated by a course is refused with the dependent count;
// once the link is removed the same request goes through.
func TestHallDeleteBlockedWhileMandatedThenSucceeds(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	sessionID := seedSession(t, db, "2026/2027")
	hallID := seedHall(t, db, sessionID, "Main Hall")
	courseID := seedCourse(t, db, sessionID, "CS101", "Algorithms")

	res, err := courseservice.AddLinks(ctx, db, courseservice.RelCompulsoryHalls,
		courseID, []uuid.UUID{hallID})
	require.NoError(t, err)
	require.Len(t, res.Added, 1)

	app := newHallApp(db)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/halls/"+hallID.String(), nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var blocked struct {
		Errors struct {
			DependentCount int64 `json:"dependent_count"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&blocked))
	assert.EqualValues(t, 1, blocked.Errors.DependentCount)

	removed, err := courseservice.RemoveLinks(ctx, db, courseservice.RelCompulsoryHalls,
		courseID, []uuid.UUID{hallID})
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/halls/"+hallID.String(), nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var alive int64
	require.NoError(t, db.Table("halls").
		Where("hall_deleted_at IS NULL").Count(&alive).Error)
	assert.Zero(t, alive)
}

func TestHallListSearchFoldsCase(t *testing.T) {
	db := requireDB(t)

	sessionID := seedSession(t, db, "2026/2027")
	seedHall(t, db, sessionID, "Main Hall")
	seedHall(t, db, sessionID, "Annex Lab")

	app := newHallApp(db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/halls?search=MAIN", nil), 5000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Items []struct {
				HallName string `json:"hall_name"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "Main Hall", body.Data.Items[0].HallName)
}
