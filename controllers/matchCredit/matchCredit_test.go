package matchCreditController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gameonesoft123/gameon-v2-sub001/config"
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	"github.com/Gameonesoft123/gameon-v2-sub001/middleware"
	"github.com/Gameonesoft123/gameon-v2-sub001/models"
	matchCreditRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/matchCreditRoutes"
	"github.com/Gameonesoft123/gameon-v2-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	store    models.Store
	setting  models.StoreSetting
	owner    models.User
	customer models.Customer
	machine  models.Machine
	token    string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	config.LoadConfig()
	db := database.ConnectTestDb()

	store := models.Store{Name: "Galaxy Arcade", Code: "test-store-code", IsActive: true}
	require.NoError(t, db.Create(&store).Error)

	setting := models.StoreSetting{StoreID: store.ID, MatchExpiryDays: 30}
	require.NoError(t, db.Create(&setting).Error)

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

	machine := models.Machine{StoreID: store.ID, Name: "Crane 1", Status: models.MachineStatusActive}
	require.NoError(t, db.Create(&machine).Error)

	token, err := middleware.GenerateJWT(owner.ID, store.ID, owner.Name, owner.Role, owner.Email)
	require.NoError(t, err)

	app := fiber.New()
	matchCreditRoutes.SetupMatchCreditRoutes(app)

	return &testEnv{
		app: app, db: db,
		store: store, setting: setting, owner: owner,
		customer: customer, machine: machine, token: token,
	}
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

func (e *testEnv) createMatch(t *testing.T, customerID uint, amount, percentage float64) (*http.Response, map[string]interface{}) {
	t.Helper()
	return e.request(t, "POST", "/match-credit/", map[string]interface{}{
		"customerId":      customerID,
		"machineId":       e.machine.ID,
		"initialAmount":   amount,
		"matchPercentage": percentage,
	})
}

func TestCreateMatchComputesAmounts(t *testing.T) {
	env := setupEnv(t)

	resp, data := env.createMatch(t, env.customer.ID, 100, 100)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	assert.Equal(t, 100.00, data["matchedAmount"])
	assert.Equal(t, 200.00, data["totalCredits"])
	// Store threshold unset: default is 2x total credits
	assert.Equal(t, 400.00, data["redemptionThreshold"])
	assert.Equal(t, string(models.MatchStatusActive), data["status"])
	assert.NotEmpty(t, data["receiptNumber"])

	var stored models.MatchTransaction
	require.NoError(t, env.db.First(&stored, uint(data["transactionId"].(float64))).Error)
	assert.Equal(t, 100.00, stored.MatchedAmount)
	assert.Equal(t, 200.00, stored.TotalCredits)
	assert.Equal(t, 400.00, stored.RedemptionThreshold)
	assert.Equal(t, time.Now().Format(models.MatchDayFormat), stored.MatchDay)
	assert.Nil(t, stored.RedeemedAt)
}

func TestCreateMatchPartialPercentage(t *testing.T) {
	env := setupEnv(t)

	resp, data := env.createMatch(t, env.customer.ID, 50, 50)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 25.00, data["matchedAmount"])
	assert.Equal(t, 75.00, data["totalCredits"])
}

func TestCreateMatchUsesConfiguredThreshold(t *testing.T) {
	env := setupEnv(t)

	require.NoError(t, env.db.Model(&models.StoreSetting{}).
		Where("store_id = ?", env.store.ID).
		Update("match_redemption_threshold", 1000).Error)

	resp, data := env.createMatch(t, env.customer.ID, 100, 100)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1000.00, data["redemptionThreshold"])
}

func TestCreateMatchDefaultsPercentage(t *testing.T) {
	env := setupEnv(t)

	// Omitting matchPercentage applies the 100% default
	resp, data := env.request(t, "POST", "/match-credit/", map[string]interface{}{
		"customerId":    env.customer.ID,
		"machineId":     env.machine.ID,
		"initialAmount": 40,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 40.00, data["matchedAmount"])
	assert.Equal(t, 80.00, data["totalCredits"])
}

func TestCreateMatchRejectsZeroPercentage(t *testing.T) {
	env := setupEnv(t)

	// An explicit 0 is a validation error, not a request for the default
	resp, _ := env.request(t, "POST", "/match-credit/", map[string]interface{}{
		"customerId":      env.customer.ID,
		"machineId":       env.machine.ID,
		"initialAmount":   40,
		"matchPercentage": 0,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateMatchBlocksSecondSameDay(t *testing.T) {
	env := setupEnv(t)

	resp, _ := env.createMatch(t, env.customer.ID, 100, 100)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = env.createMatch(t, env.customer.ID, 25, 100)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// A different customer is unaffected
	other := models.Customer{StoreID: env.store.ID, FirstName: "Jane", LastName: "Doe"}
	require.NoError(t, env.db.Create(&other).Error)
	resp, _ = env.createMatch(t, other.ID, 25, 100)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestUniqueIndexStopsRacingInsert(t *testing.T) {
	env := setupEnv(t)

	day := time.Now().Format(models.MatchDayFormat)
	first := models.MatchTransaction{
		StoreID: env.store.ID, CustomerID: env.customer.ID, MachineID: env.machine.ID,
		InitialAmount: 10, MatchPercentage: 100, MatchedAmount: 10, TotalCredits: 20,
		RedemptionThreshold: 40, Status: models.MatchStatusActive, MatchDay: day,
	}
	require.NoError(t, env.db.Create(&first).Error)

	// A second insert for the same customer and day must fail at the index,
	// pre-check or not
	second := first
	second.ID = 0
	err := env.db.Create(&second).Error
	assert.Error(t, err)
}

func TestDailyMatchCheck(t *testing.T) {
	env := setupEnv(t)

	resp, data := env.request(t, "GET",
		fmt.Sprintf("/match-credit/daily-check?customerId=%d", env.customer.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, data["hasMatchToday"])

	respCreate, _ := env.createMatch(t, env.customer.ID, 100, 100)
	require.Equal(t, fiber.StatusCreated, respCreate.StatusCode)

	resp, data = env.request(t, "GET",
		fmt.Sprintf("/match-credit/daily-check?customerId=%d", env.customer.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, data["hasMatchToday"])
}

func TestRedeemSetsStatusAndTimestamp(t *testing.T) {
	env := setupEnv(t)

	respCreate, data := env.createMatch(t, env.customer.ID, 100, 100)
	require.Equal(t, fiber.StatusCreated, respCreate.StatusCode)
	id := uint(data["transactionId"].(float64))

	resp, _ := env.request(t, "POST", "/match-credit/redeem", map[string]interface{}{
		"transactionId": id,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.MatchTransaction
	require.NoError(t, env.db.First(&stored, id).Error)
	assert.Equal(t, models.MatchStatusRedeemed, stored.Status)
	require.NotNil(t, stored.RedeemedAt)
	assert.False(t, stored.RedeemedAt.Before(stored.CreatedAt))
}

func TestVoidLeavesRedeemedAtUnset(t *testing.T) {
	env := setupEnv(t)

	respCreate, data := env.createMatch(t, env.customer.ID, 100, 100)
	require.Equal(t, fiber.StatusCreated, respCreate.StatusCode)
	id := uint(data["transactionId"].(float64))

	resp, _ := env.request(t, "POST", "/match-credit/void", map[string]interface{}{
		"transactionId": id,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored models.MatchTransaction
	require.NoError(t, env.db.First(&stored, id).Error)
	assert.Equal(t, models.MatchStatusVoided, stored.Status)
	assert.Nil(t, stored.RedeemedAt)
}

func TestTransitionsAreTerminal(t *testing.T) {
	env := setupEnv(t)

	respCreate, data := env.createMatch(t, env.customer.ID, 100, 100)
	require.Equal(t, fiber.StatusCreated, respCreate.StatusCode)
	id := uint(data["transactionId"].(float64))

	resp, _ := env.request(t, "POST", "/match-credit/redeem", map[string]interface{}{"transactionId": id})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A redeemed transaction cannot be voided or redeemed again
	resp, _ = env.request(t, "POST", "/match-credit/void", map[string]interface{}{"transactionId": id})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp, _ = env.request(t, "POST", "/match-credit/redeem", map[string]interface{}{"transactionId": id})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var stored models.MatchTransaction
	require.NoError(t, env.db.First(&stored, id).Error)
	assert.Equal(t, models.MatchStatusRedeemed, stored.Status)
}

func TestTransitionUnknownTransaction(t *testing.T) {
	env := setupEnv(t)

	resp, _ := env.request(t, "POST", "/match-credit/redeem", map[string]interface{}{"transactionId": 9999})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func seedMatchAt(t *testing.T, env *testEnv, customerID uint, createdAt time.Time, status models.MatchStatus) models.MatchTransaction {
	t.Helper()
	txn := models.MatchTransaction{
		StoreID: env.store.ID, CustomerID: customerID, MachineID: env.machine.ID,
		InitialAmount: 10, MatchPercentage: 100, MatchedAmount: 10, TotalCredits: 20,
		RedemptionThreshold: 40, Status: status,
		MatchDay: createdAt.Format(models.MatchDayFormat),
	}
	txn.CreatedAt = createdAt
	require.NoError(t, env.db.Create(&txn).Error)
	return txn
}

func TestListFilters(t *testing.T) {
	env := setupEnv(t)

	jane := models.Customer{StoreID: env.store.ID, FirstName: "Jane", LastName: "Doe"}
	require.NoError(t, env.db.Create(&jane).Error)

	nowTs := time.Now()
	timestamps := []time.Time{
		nowTs,
		nowTs.AddDate(0, 0, -10),
		nowTs.AddDate(0, -2, 0),
	}
	seedMatchAt(t, env, env.customer.ID, timestamps[0], models.MatchStatusActive)
	seedMatchAt(t, env, jane.ID, timestamps[1], models.MatchStatusRedeemed)
	seedMatchAt(t, env, env.customer.ID, timestamps[2], models.MatchStatusVoided)

	countWithin := func(bucket string) int {
		start, end, ok := utils.BucketRange(bucket, nowTs)
		require.True(t, ok)
		n := 0
		for _, ts := range timestamps {
			if !ts.Before(start) && !ts.After(end) {
				n++
			}
		}
		return n
	}

	listLen := func(target string) int {
		resp, data := env.request(t, "GET", target, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		return len(data["transactions"].([]interface{}))
	}

	assert.Equal(t, 3, listLen("/match-credit/list"))
	assert.Equal(t, countWithin(utils.RangeToday), listLen("/match-credit/list?range=today"))
	assert.Equal(t, countWithin(utils.RangeWeek), listLen("/match-credit/list?range=week"))
	assert.Equal(t, countWithin(utils.RangeMonth), listLen("/match-credit/list?range=month"))

	// Status filters: single value and comma list
	assert.Equal(t, 1, listLen("/match-credit/list?status=active"))
	assert.Equal(t, 2, listLen("/match-credit/list?status=redeemed,voided"))

	// Customer-name substring, case-insensitive, over the combined name
	assert.Equal(t, 2, listLen("/match-credit/list?customer=SMI"))
	assert.Equal(t, 1, listLen("/match-credit/list?customer=doe"))
	assert.Equal(t, 1, listLen("/match-credit/list?customer=jane+doe"))
	assert.Equal(t, 0, listLen("/match-credit/list?customer=zzz"))
}

func TestMatchStats(t *testing.T) {
	env := setupEnv(t)

	jane := models.Customer{StoreID: env.store.ID, FirstName: "Jane", LastName: "Doe"}
	require.NoError(t, env.db.Create(&jane).Error)

	nowTs := time.Now()
	seedMatchAt(t, env, env.customer.ID, nowTs, models.MatchStatusActive)
	txn := models.MatchTransaction{
		StoreID: env.store.ID, CustomerID: jane.ID, MachineID: env.machine.ID,
		InitialAmount: 50, MatchPercentage: 50, MatchedAmount: 25, TotalCredits: 75,
		RedemptionThreshold: 150, Status: models.MatchStatusRedeemed,
		MatchDay: nowTs.Format(models.MatchDayFormat),
	}
	require.NoError(t, env.db.Create(&txn).Error)

	resp, data := env.request(t, "GET", "/match-credit/stats", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, 60.00, data["totalCash"])
	assert.Equal(t, 35.00, data["totalMatched"])
	assert.Equal(t, 95.00, data["totalCredits"])
	assert.Equal(t, float64(1), data["activeMatches"])
}

func TestStoreScopeIsolation(t *testing.T) {
	env := setupEnv(t)

	// A transaction in another store is invisible and untouchable
	otherStore := models.Store{Name: "Rival Arcade", Code: "rival-code", IsActive: true}
	require.NoError(t, env.db.Create(&otherStore).Error)
	otherCustomer := models.Customer{StoreID: otherStore.ID, FirstName: "Max"}
	require.NoError(t, env.db.Create(&otherCustomer).Error)
	foreign := models.MatchTransaction{
		StoreID: otherStore.ID, CustomerID: otherCustomer.ID, MachineID: env.machine.ID,
		InitialAmount: 10, MatchPercentage: 100, MatchedAmount: 10, TotalCredits: 20,
		RedemptionThreshold: 40, Status: models.MatchStatusActive,
		MatchDay: time.Now().Format(models.MatchDayFormat),
	}
	require.NoError(t, env.db.Create(&foreign).Error)

	resp, data := env.request(t, "GET", "/match-credit/list", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, data["transactions"].([]interface{}), 0)

	resp, _ = env.request(t, "POST", "/match-credit/redeem", map[string]interface{}{"transactionId": foreign.ID})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var stored models.MatchTransaction
	require.NoError(t, env.db.First(&stored, foreign.ID).Error)
	assert.Equal(t, models.MatchStatusActive, stored.Status)
}
