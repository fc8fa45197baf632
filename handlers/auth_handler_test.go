package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterUserValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/auth/register", RegisterUser)

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("not-json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/auth/register", map[string]string{
			"full_name": "Test Customer",
			"email":     "not-an-email",
			"password":  "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects short password", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/auth/register", map[string]string{
			"full_name": "Test Customer",
			"email":     "customer@example.com",
			"password":  "abc",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRegisterUserDuplicateKey(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/auth/register", RegisterUser)

	body := map[string]string{
		"full_name": "Test Customer",
		"email":     "customer@example.com",
		"password":  "secret123",
	}

	t.Run("taken email conflicts", func(t *testing.T) {
		mock := setupMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE referral_code = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(gorm.ErrDuplicatedKey)
		mock.ExpectRollback()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		resp := postJSON(t, app, "/api/v1/auth/register", body)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("raced referral code is retried with a fresh one", func(t *testing.T) {
		mock := setupMockDB(t)

		// First attempt collides on the generated code, not the email.
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE referral_code = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(gorm.ErrDuplicatedKey)
		mock.ExpectRollback()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		// Second attempt succeeds with a new code.
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE referral_code = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
		mock.ExpectCommit()

		resp := postJSON(t, app, "/api/v1/auth/register", body)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResetPasswordNilExpiry(t *testing.T) {
	mock := setupMockDB(t)

	app := fiber.New()
	app.Post("/api/v1/auth/reset-password", ResetPassword)

	token := "deadbeefdeadbeef"
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE reset_password_token = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "reset_password_token", "reset_password_token_expires_at"}).
			AddRow(uuid.New(), "customer@example.com", "Test Customer", token, nil))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// A token row without an expiry is treated as expired, not a crash.
	resp := postJSON(t, app, "/api/v1/auth/reset-password", map[string]string{
		"token":        token,
		"new_password": "newsecret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUserValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/auth/login", LoginUser)

	t.Run("rejects missing password", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/auth/login", map[string]string{
			"email": "customer@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects missing email", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/auth/login", map[string]string{
			"password": "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
