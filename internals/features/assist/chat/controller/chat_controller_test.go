package controller

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	out string
	err error
}

func (s *stubGenerator) Generate(_ context.Context, _ string, _ string) (string, error) {
	return s.out, s.err
}

// App test tanpa DB: hanya jalur yang gagal sebelum query yang diuji.
func newGenerateTestApp(gen *stubGenerator, premium bool) *fiber.App {
	ctrl := NewChatController(nil, gen)
	app := fiber.New()
	app.Post("/assist/generate", func(c *fiber.Ctx) error {
		c.Locals("is_premium", premium)
		c.Locals("user_id", uuid.New())
		return ctrl.Generate(c)
	})
	return app
}

func postJSON(app *fiber.App, path, body string) (int, error) {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func TestGenerateRequiresPremium(t *testing.T) {
	app := newGenerateTestApp(&stubGenerator{out: "x"}, false)

	code, err := postJSON(app, "/assist/generate", `{"task":"summary","input":"materi"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, code)
}

// session_id rusak → 400, bukan 404 "tidak ditemukan"
func TestGenerateMalformedSessionIDRejected(t *testing.T) {
	app := newGenerateTestApp(&stubGenerator{out: "x"}, true)

	code, err := postJSON(app, "/assist/generate", `{"task":"summary","input":"materi","session_id":"bukan-uuid"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestGenerateUnknownTaskRejected(t *testing.T) {
	app := newGenerateTestApp(&stubGenerator{out: "x"}, true)

	code, err := postJSON(app, "/assist/generate", `{"task":"essay","input":"materi"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestGenerateWithoutSessionReturnsOutput(t *testing.T) {
	app := newGenerateTestApp(&stubGenerator{out: "ringkasan"}, true)

	code, err := postJSON(app, "/assist/generate", `{"task":"summary","input":"materi"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestGenerateUpstreamFailure(t *testing.T) {
	app := newGenerateTestApp(&stubGenerator{err: errors.New("timeout")}, true)

	code, err := postJSON(app, "/assist/generate", `{"task":"quiz","input":"materi"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, code)
}
