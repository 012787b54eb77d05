package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pola route harus sama dengan deklarasi di internals/route/details.
const gradeItemsPath = "/courses/:course_id/grade-items"

func newParamTestApp() *fiber.App {
	app := fiber.New()
	app.Get(gradeItemsPath, func(c *fiber.Ctx) error {
		courseID, err := parseCourseID(c)
		if err != nil {
			return err
		}
		return c.SendString(courseID.String())
	})
	return app
}

// Nama param di route dan di Params() harus identik: kalau melenceng, UUID
// valid pun akan terbaca kosong dan ditolak 400.
func TestCourseParamNameMatchesRoute(t *testing.T) {
	app := newParamTestApp()
	id := uuid.NewString()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/courses/"+id+"/grade-items", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, id, string(body))
}

func TestCourseParamMalformedRejected(t *testing.T) {
	app := newParamTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/courses/bukan-uuid/grade-items", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
