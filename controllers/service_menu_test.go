package controllers

import (
	"net/http"
	"testing"

	"github.com/softkr/timeheair/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceMenuFlatAndTiered(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	w := doRequest(t, r, "POST", "/api/services", map[string]interface{}{
		"category": "기본 서비스", "name": "남자컷트", "price": 11000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, r, "POST", "/api/services", map[string]interface{}{
		"category": "펌", "name": "기본 (건강모/일반)",
		"priceShort": 33000, "priceMedium": 44000, "priceLong": 55000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var menu models.ServiceMenu
	decodeBody(t, w, &menu)
	assert.True(t, menu.Tiered())
	assert.True(t, menu.IsActive)
}

func TestCreateServiceMenuStoresInactive(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	w := doRequest(t, r, "POST", "/api/services", map[string]interface{}{
		"category": "기본 서비스", "name": "준비중 항목", "price": 11000, "isActive": false,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.ServiceMenu
	decodeBody(t, w, &created)
	assert.False(t, created.IsActive)

	// The row itself must be inactive, not just the response
	var stored models.ServiceMenu
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.False(t, stored.IsActive)

	w = doRequest(t, r, "GET", "/api/services?active=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var menus []models.ServiceMenu
	decodeBody(t, w, &menus)
	assert.Empty(t, menus)
}

func TestCreateServiceMenuRejectsMixedPricing(t *testing.T) {
	setupTestDB(t)
	r := newTestRouter()

	// Flat price combined with a tier
	w := doRequest(t, r, "POST", "/api/services", map[string]interface{}{
		"category": "펌", "name": "이상한 항목", "price": 10000, "priceShort": 20000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Incomplete tiers
	w = doRequest(t, r, "POST", "/api/services", map[string]interface{}{
		"category": "펌", "name": "이상한 항목", "priceShort": 20000, "priceMedium": 30000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolvePriceEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	short, medium, long := 33000, 44000, 55000
	require.NoError(t, db.Create(&models.ServiceMenu{
		ID: "perm-basic", Category: "펌", Name: "기본 (건강모/일반)",
		PriceShort: &short, PriceMedium: &medium, PriceLong: &long, IsActive: true,
	}).Error)

	w := doRequest(t, r, "GET", "/api/services/perm-basic/price?length=medium", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resolved struct {
		Price int `json:"price"`
	}
	decodeBody(t, w, &resolved)
	assert.Equal(t, 44000, resolved.Price)

	// Tiered item without a length is a bad request
	w = doRequest(t, r, "GET", "/api/services/perm-basic/price", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, "GET", "/api/services/none/price?length=short", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetServiceMenusFilters(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	cut, perm := 11000, 80000
	require.NoError(t, db.Create(&models.ServiceMenu{
		ID: "cut-male", Category: "기본 서비스", Name: "남자컷트", Price: &cut, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.ServiceMenu{
		ID: "perm-old", Category: "펌", Name: "단종 펌", Price: &perm, IsActive: false,
	}).Error)

	w := doRequest(t, r, "GET", "/api/services?active=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var menus []models.ServiceMenu
	decodeBody(t, w, &menus)
	require.Len(t, menus, 1)
	assert.Equal(t, "cut-male", menus[0].ID)

	w = doRequest(t, r, "GET", "/api/services?category=펌", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &menus)
	require.Len(t, menus, 1)
	assert.Equal(t, "perm-old", menus[0].ID)
}

func TestUpdateAndDeleteServiceMenu(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	price := 11000
	require.NoError(t, db.Create(&models.ServiceMenu{
		ID: "cut-male", Category: "기본 서비스", Name: "남자컷트", Price: &price, IsActive: true,
	}).Error)

	w := doRequest(t, r, "PUT", "/api/services/cut-male", map[string]interface{}{
		"category": "기본 서비스", "name": "남자컷트", "price": 13000, "isActive": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.ServiceMenu
	decodeBody(t, w, &updated)
	require.NotNil(t, updated.Price)
	assert.Equal(t, 13000, *updated.Price)
	assert.False(t, updated.IsActive)

	w = doRequest(t, r, "DELETE", "/api/services/cut-male", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, "GET", "/api/services/cut-male", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
