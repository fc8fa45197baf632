package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promotionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "discount_percent", "free_delivery", "min_order", "category", "day_of_week", "start_date", "end_date", "is_active"})
}

// Rows come back filtered by is_active in SQL; the day-of-week rotation
// happens in Go, so a promotion pinned to another weekday must not leak
// into the response.
func TestListActivePromotionsRotation(t *testing.T) {
	mock := setupMockDB(t)

	today := int(time.Now().Weekday())
	otherDay := (today + 1) % 7
	percent := 15

	rows := promotionRows().
		AddRow(uuid.New(), "Today Only", "", percent, false, 10.0, "all", today, nil, nil, true).
		AddRow(uuid.New(), "Wrong Day", "", percent, false, 10.0, "all", otherDay, nil, nil, true).
		AddRow(uuid.New(), "Every Day", "", percent, false, 10.0, "all", nil, nil, nil, true)

	mock.ExpectQuery(`SELECT \* FROM "promotions" WHERE is_active = \$1`).
		WillReturnRows(rows)

	app := fiber.New()
	app.Get("/api/v1/promotions", ListActivePromotions)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/promotions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var promotions []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &promotions))

	titles := make([]string, 0, len(promotions))
	for _, p := range promotions {
		titles = append(titles, p["title"].(string))
	}

	assert.ElementsMatch(t, []string{"Today Only", "Every Day"}, titles)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestValidatePromoCodeValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/v1/promotions/validate", ValidatePromoCode)

	resp := postJSON(t, app, "/api/v1/promotions/validate", map[string]interface{}{
		"subtotal": 25.0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
