package bonusController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gameonesoft123/gameon-v2-sub001/config"
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	bonusRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/bonusRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	store    models.Store
	customer models.Customer
	token    string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	config.LoadConfig()
	db := database.ConnectTestDb()

	store := models.Store{Name: "Galaxy Arcade", Code: "bonus-store", IsActive: true}
	require.NoError(t, db.Create(&store).Error)

	owner := models.User{
		StoreID:  store.ID,
		Name:     "Olive Owner",
		Email:    "owner@galaxy.test",
		Role:     models.RoleOwner,
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&owner).Error)

	customer := models.Customer{StoreID: store.ID, FirstName: "John", LastName: "Smith"}
	require.NoError(t, db.Create(&customer).Error)

	token, err := middleware.GenerateJWT(owner.ID, store.ID, owner.Name, owner.Role, owner.Email)
	require.NoError(t, err)

	app := fiber.New()
	bonusRoutes.SetupBonusRoutes(app)

	return &testEnv{app: app, db: db, store: store, customer: customer, token: token}
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

func (e *testEnv) bonus(t *testing.T, action string, customerID uint, amount float64, reason string) (*http.Response, map[string]interface{}) {
	t.Helper()
	return e.request(t, "POST", "/bonus/"+action, map[string]interface{}{
		"customerId": customerID,
		"amount":     amount,
		"reason":     reason,
	})
}

func TestAddBonusUpdatesBalance(t *testing.T) {
	env := setupEnv(t)

	resp, data := env.bonus(t, "add", env.customer.ID, 25.50, "birthday promo")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0.0, data["balanceBefore"])
	assert.Equal(t, 25.50, data["balanceAfter"])
	assert.Equal(t, string(models.BonusTypeEarn), data["type"])

	var customer models.Customer
	require.NoError(t, env.db.First(&customer, env.customer.ID).Error)
	assert.Equal(t, 25.50, customer.BonusBalance)
}

func TestRedeemBonusUpdatesBalance(t *testing.T) {
	env := setupEnv(t)

	_, _ = env.bonus(t, "add", env.customer.ID, 50, "")
	resp, data := env.bonus(t, "redeem", env.customer.ID, 20, "prize")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 50.0, data["balanceBefore"])
	assert.Equal(t, 30.0, data["balanceAfter"])
	assert.Equal(t, string(models.BonusTypeRedeem), data["type"])

	var customer models.Customer
	require.NoError(t, env.db.First(&customer, env.customer.ID).Error)
	assert.Equal(t, 30.0, customer.BonusBalance)
}

func TestRedeemBonusRejectsOverdraw(t *testing.T) {
	env := setupEnv(t)

	_, _ = env.bonus(t, "add", env.customer.ID, 10, "")
	resp, _ := env.bonus(t, "redeem", env.customer.ID, 10.01, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Balance and ledger are untouched by the rejected redemption
	var customer models.Customer
	require.NoError(t, env.db.First(&customer, env.customer.ID).Error)
	assert.Equal(t, 10.0, customer.BonusBalance)

	var count int64
	env.db.Model(&models.BonusTransaction{}).Where("customer_id = ?", env.customer.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdjustBonus(t *testing.T) {
	env := setupEnv(t)

	_, _ = env.bonus(t, "add", env.customer.ID, 30, "")

	t.Run("Negative correction", func(t *testing.T) {
		resp, data := env.bonus(t, "adjust", env.customer.ID, -10, "entry error")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, 20.0, data["balanceAfter"])
		assert.Equal(t, string(models.BonusTypeAdjust), data["type"])
	})

	t.Run("Requires a reason", func(t *testing.T) {
		resp, _ := env.bonus(t, "adjust", env.customer.ID, 5, "")
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("Cannot go negative", func(t *testing.T) {
		resp, _ := env.bonus(t, "adjust", env.customer.ID, -100, "entry error")
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		var customer models.Customer
		require.NoError(t, env.db.First(&customer, env.customer.ID).Error)
		assert.Equal(t, 20.0, customer.BonusBalance)
	})
}

func TestBonusValidation(t *testing.T) {
	env := setupEnv(t)

	resp, _ := env.bonus(t, "add", 0, 0, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestBonusUnknownCustomer(t *testing.T) {
	env := setupEnv(t)

	resp, _ := env.bonus(t, "add", 99999, 10, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBonusHistory(t *testing.T) {
	env := setupEnv(t)

	_, _ = env.bonus(t, "add", env.customer.ID, 40, "promo")
	_, _ = env.bonus(t, "redeem", env.customer.ID, 15, "prize")

	resp, data := env.request(t, "GET",
		fmt.Sprintf("/bonus/history?customerId=%d", env.customer.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 25.0, data["currentBalance"])

	entries, ok := data["entries"].([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 2)

	pagination, ok := data["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 2.0, pagination["total"])
}

func TestBonusHistoryRequiresCustomer(t *testing.T) {
	env := setupEnv(t)

	resp, _ := env.request(t, "GET", "/bonus/history", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBonusStoreScope(t *testing.T) {
	env := setupEnv(t)

	other := models.Store{Name: "Other Arcade", Code: "other-bonus-store", IsActive: true}
	require.NoError(t, env.db.Create(&other).Error)
	stranger := models.Customer{StoreID: other.ID, FirstName: "Jane", LastName: "Doe"}
	require.NoError(t, env.db.Create(&stranger).Error)

	resp, _ := env.bonus(t, "add", stranger.ID, 10, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
