package cashflowController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gameonesoft123/gameon-v2-sub001/config"
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	cashflowRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/cashflowRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	app     *fiber.App
	db      *gorm.DB
	store   models.Store
	machine models.Machine
	token   string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	config.LoadConfig()
	db := database.ConnectTestDb()

	store := models.Store{Name: "Galaxy Arcade", Code: "cash-store", IsActive: true}
	require.NoError(t, db.Create(&store).Error)

	owner := models.User{
		StoreID:  store.ID,
		Name:     "Olive Owner",
		Email:    "owner@galaxy.test",
		Role:     models.RoleOwner,
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&owner).Error)

	machine := models.Machine{StoreID: store.ID, Name: "Crane 1", Status: models.MachineStatusActive}
	require.NoError(t, db.Create(&machine).Error)

	token, err := middleware.GenerateJWT(owner.ID, store.ID, owner.Name, owner.Role, owner.Email)
	require.NoError(t, err)

	app := fiber.New()
	cashflowRoutes.SetupCashflowRoutes(app)

	return &testEnv{app: app, db: db, store: store, machine: machine, token: token}
}

func (e *testEnv) request(t *testing.T, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)

	var envelope struct {
		Status  bool                   `json:"status"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope))
	}
	return resp, envelope.Data
}

func (e *testEnv) logCash(t *testing.T, direction, category string, amount float64) (*http.Response, map[string]interface{}) {
	t.Helper()
	return e.request(t, "POST", "/cashflow/", map[string]interface{}{
		"machineId": e.machine.ID,
		"direction": direction,
		"category":  category,
		"amount":    amount,
	})
}

func TestLogCashCreatesEntry(t *testing.T) {
	env := setupEnv(t)

	resp, data := env.logCash(t, "IN", models.CashCategoryCollection, 120.556)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "IN", data["direction"])
	assert.Equal(t, models.CashCategoryCollection, data["category"])
	// Amount is rounded to cents on the way in
	assert.Equal(t, 120.56, data["amount"])

	var entry models.CashLog
	require.NoError(t, env.db.First(&entry).Error)
	assert.Equal(t, env.store.ID, entry.StoreID)
	require.NotNil(t, entry.MachineID)
	assert.Equal(t, env.machine.ID, *entry.MachineID)
}

func TestLogCashDefaultsCategory(t *testing.T) {
	env := setupEnv(t)

	resp, data := env.request(t, "POST", "/cashflow/", map[string]interface{}{
		"direction": "OUT",
		"amount":    15.0,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, models.CashCategoryOther, data["category"])
}

func TestLogCashValidation(t *testing.T) {
	env := setupEnv(t)

	t.Run("Bad direction", func(t *testing.T) {
		resp, _ := env.logCash(t, "SIDEWAYS", "", 10)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("Zero amount", func(t *testing.T) {
		resp, _ := env.logCash(t, "IN", "", 0)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("Unknown category", func(t *testing.T) {
		resp, _ := env.logCash(t, "IN", "bribes", 10)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestLogCashUnknownMachine(t *testing.T) {
	env := setupEnv(t)

	resp, _ := env.request(t, "POST", "/cashflow/", map[string]interface{}{
		"machineId": 99999,
		"direction": "IN",
		"amount":    10.0,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListCashFilters(t *testing.T) {
	env := setupEnv(t)

	_, _ = env.logCash(t, "IN", models.CashCategoryCollection, 100)
	_, _ = env.logCash(t, "IN", models.CashCategoryRefill, 40)
	_, _ = env.logCash(t, "OUT", models.CashCategoryPayout, 25)

	t.Run("All entries", func(t *testing.T) {
		resp, data := env.request(t, "GET", "/cashflow/list", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		entries := data["entries"].([]interface{})
		assert.Len(t, entries, 3)
	})

	t.Run("By direction", func(t *testing.T) {
		resp, data := env.request(t, "GET", "/cashflow/list?direction=OUT", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		entries := data["entries"].([]interface{})
		require.Len(t, entries, 1)
		entry := entries[0].(map[string]interface{})
		assert.Equal(t, 25.0, entry["amount"])
	})

	t.Run("Pagination", func(t *testing.T) {
		resp, data := env.request(t, "GET", "/cashflow/list?page=1&limit=2", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		entries := data["entries"].([]interface{})
		assert.Len(t, entries, 2)
		pagination := data["pagination"].(map[string]interface{})
		assert.Equal(t, 3.0, pagination["total"])
	})
}

func TestDailySummary(t *testing.T) {
	env := setupEnv(t)

	_, _ = env.logCash(t, "IN", models.CashCategoryCollection, 200)
	_, _ = env.logCash(t, "IN", models.CashCategoryRefill, 50.25)
	_, _ = env.logCash(t, "OUT", models.CashCategoryPayout, 75.10)

	// An entry from yesterday stays out of today's summary
	yesterday := models.CashLog{
		StoreID:   env.store.ID,
		Direction: models.CashDirectionIn,
		Category:  models.CashCategoryOther,
		Amount:    999,
		LogDate:   time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, env.db.Create(&yesterday).Error)

	resp, data := env.request(t, "GET", "/cashflow/daily-summary", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 250.25, data["cashIn"])
	assert.Equal(t, 75.10, data["cashOut"])
	assert.Equal(t, 175.15, data["net"])
	assert.Equal(t, time.Now().Format(models.MatchDayFormat), data["date"])
}

func TestDailySummaryBadDate(t *testing.T) {
	env := setupEnv(t)

	resp, _ := env.request(t, "GET", "/cashflow/daily-summary?date=18-03-2026", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
