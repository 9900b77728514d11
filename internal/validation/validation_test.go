package validation

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bigBrother1996/devConnector/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(rules ...Rule) *fiber.App {
	app := fiber.New()
	app.Post("/", Body(rules...), func(c *fiber.Ctx) error {
		return c.SendString("handler reached")
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestBody_PassesValidInput(t *testing.T) {
	app := testApp(
		NotEmpty("name", "Name is required"),
		IsEmail("email", "Please include valid email"),
		MinLength("password", "too short", 6),
	)

	status, body := post(t, app, `{"name":"Jane","email":"jane@example.com","password":"secret1"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "handler reached", body)
}

func TestBody_ShortCircuitsWithFieldErrors(t *testing.T) {
	app := testApp(
		NotEmpty("name", "Name is required"),
		IsEmail("email", "Please include valid email"),
		MinLength("password", "too short", 6),
	)

	status, body := post(t, app, `{"email":"not-an-email","password":"abc"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var resp dto.ValidationErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Errors, 3)
	assert.Equal(t, "name", resp.Errors[0].Field)
	assert.Equal(t, "Name is required", resp.Errors[0].Message)
	assert.Equal(t, "email", resp.Errors[1].Field)
	assert.Equal(t, "password", resp.Errors[2].Field)
}

func TestBody_UnparseableBodyFailsEveryRule(t *testing.T) {
	app := testApp(NotEmpty("status", "Status is required"))

	status, body := post(t, app, `{{{`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "Status is required")
}

func TestIsEmail(t *testing.T) {
	rule := IsEmail("email", "bad")
	assert.True(t, rule.Check("dev@example.com"))
	assert.False(t, rule.Check("dev@example"))
	assert.False(t, rule.Check("devexample.com"))
	assert.False(t, rule.Check(""))
	assert.False(t, rule.Check("a b@example.com"))
}

func TestNotEmpty_RejectsWhitespace(t *testing.T) {
	rule := NotEmpty("name", "required")
	assert.False(t, rule.Check("   "))
	assert.True(t, rule.Check("x"))
}

func TestMinLength(t *testing.T) {
	rule := MinLength("password", "too short", 6)
	assert.False(t, rule.Check("12345"))
	assert.True(t, rule.Check("123456"))
}

func TestBody_NonStringScalarCoerced(t *testing.T) {
	app := testApp(NotEmpty("status", "Status is required"))

	status, _ := post(t, app, `{"status":42}`)
	assert.Equal(t, fiber.StatusOK, status)
}
