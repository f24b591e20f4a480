package units

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"brickvale-backend/internal/models"
	"brickvale-backend/internal/pkg/response"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Project{}, &models.Unit{},
		&models.Payment{}, &models.MediaFile{},
	))

	handlers := &Handlers{Service: &Service{DB: db}}
	app := fiber.New()
	app.Post("/api/v1/units", handlers.Create)
	app.Get("/api/v1/units", handlers.List)
	app.Get("/api/v1/units/:id", handlers.Get)
	app.Patch("/api/v1/units/:id", handlers.Update)
	app.Delete("/api/v1/units/:id", handlers.Delete)
	app.Get("/api/v1/units/:id/payment-summary", handlers.GetSummary)
	app.Get("/api/v1/units/:id/graph-data", handlers.GetGraph)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeSuccess(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var envelope response.SuccessBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestCreateUnit_GeneratesSchedule(t *testing.T) {
	app, db := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/units", fiber.Map{
		"name":                     "Maple Court 4B",
		"amount":                   10000000,
		"expected_initial_payment": 2000000,
		"installment":              4,
		"payment_plan":             true,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeSuccess(t, resp)
	unitID := data["id"].(string)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).
		Where("unit_id = ?", unitID).Count(&count).Error)
	// 1 initial obligation + 4 installments
	assert.EqualValues(t, 5, count)
}

func TestCreateUnit_RejectsBadTerms(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/units", fiber.Map{
		"name":         "Bad Terms",
		"amount":       1000000,
		"installment":  -2,
		"payment_plan": true,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUnit_NotFoundAndBadID(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/units/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/units/not-a-uuid", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPatchUnit_RecalculatesSchedule(t *testing.T) {
	app, db := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/units", fiber.Map{
		"name":         "Recalc Lane 1",
		"amount":       8000000,
		"installment":  4,
		"payment_plan": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	unitID := decodeSuccess(t, resp)["id"].(string)

	body, _ := json.Marshal(fiber.Map{"installment": 2})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/units/"+unitID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payments []models.Payment
	require.NoError(t, db.Where("unit_id = ? AND deleted = ?", unitID, false).
		Find(&payments).Error)
	require.Len(t, payments, 2)
	for _, p := range payments {
		assert.Equal(t, "4000000", p.Amount.String())
	}
}

func TestDeleteUnit_RequiresReason(t *testing.T) {
	app, db := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/units", fiber.Map{
		"name":   "Doomed Duplex",
		"amount": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	unitID := decodeSuccess(t, resp)["id"].(string)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/units/"+unitID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/units/"+unitID+"?reason=sold+off+plan", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var unit models.Unit
	require.NoError(t, db.First(&unit, "id = ?", unitID).Error)
	assert.True(t, unit.Deleted)
}

func TestGetSummary_OverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/v1/units", fiber.Map{
		"name":                     "Summary House",
		"amount":                   10000000,
		"expected_initial_payment": 2000000,
		"installment":              4,
		"payment_plan":             true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	unitID := decodeSuccess(t, resp)["id"].(string)

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/units/%s/payment-summary", unitID), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeSuccess(t, resp)
	// decimals serialize as bare numbers
	assert.EqualValues(t, 10000000, data["total"])
	assert.EqualValues(t, 8000000, data["outstanding"])
	assert.EqualValues(t, 2000000, data["installment_amount"])
	assert.Equal(t, false, data["balanced"])
}
