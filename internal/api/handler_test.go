package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-service/internal/auth"
	"catalog-service/internal/catalog"
	"catalog-service/internal/chartclient"
	"catalog-service/internal/chatbridge"
	"catalog-service/internal/models"
	"catalog-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, rendererURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := catalog.NewStore()
	catalogService := service.NewCatalogService(store, nil)

	gate, err := auth.NewGate("test-secret", "admin", "password123", "")
	require.NoError(t, err)

	bridge := chatbridge.NewBroker(nil, "https://chat.example.com/embed", time.Hour, zap.NewNop())
	charts := chartclient.NewClient(rendererURL, time.Second)
	chatService := service.NewChatService(catalogService, bridge, charts)

	router := gin.New()
	NewHandler(catalogService, chatService, gate).SetupRoutes(router)
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func loginToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rr := doJSON(router, http.MethodPost, "/api/login", "", gin.H{
		"username": "admin",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success   bool   `json:"success"`
		Token     string `json:"token"`
		ExpiresIn string `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "24h", resp.ExpiresIn)
	return resp.Token
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t, "")

	rr := doJSON(router, http.MethodPost, "/api/login", "", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid credentials"}`, rr.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	router := newTestRouter(t, "")

	rr := doJSON(router, http.MethodPost, "/api/login", "", gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Username and password are required"}`, rr.Body.String())
}

func TestItemsRequireAuth(t *testing.T) {
	router := newTestRouter(t, "")

	rr := doJSON(router, http.MethodGet, "/api/items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Access token required")

	rr = doJSON(router, http.MethodGet, "/api/items", "bogus-token", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid or expired token")
}

func TestListItemsSeeded(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodGet, "/api/items", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool          `json:"success"`
		Count   int           `json:"count"`
		Data    []models.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 199, resp.Count)
	assert.Len(t, resp.Data, 199)
}

func TestItemRoundTrip(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	// Create.
	rr := doJSON(router, http.MethodPost, "/api/items", token, gin.H{
		"SKU": "90001", "PACK": "BAG", "SIZE": "50#", "BRAND": "WESTCO",
		"ITEM": "TEST MIX", "CATEGORY": "Cat 5 Mix Brownie", "PRICE": "123",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var createResp struct {
		Data models.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &createResp))
	id := createResp.Data.ID
	assert.Equal(t, 199, id, "seed ids run 0-198, so the next id is 199")

	// Fetch by id.
	rr = doJSON(router, http.MethodGet, fmt.Sprintf("/api/items/%d", id), token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// Patch only the price; everything else must survive, and an explicit
	// empty brand must clear.
	rr = doJSON(router, http.MethodPut, fmt.Sprintf("/api/items/%d", id), token, gin.H{
		"PRICE": "456",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var updateResp struct {
		Data models.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updateResp))
	assert.Equal(t, "456", updateResp.Data.Price)
	assert.Equal(t, "WESTCO", updateResp.Data.Brand)
	assert.Equal(t, "TEST MIX", updateResp.Data.Item)

	rr = doJSON(router, http.MethodPut, fmt.Sprintf("/api/items/%d", id), token, gin.H{
		"BRAND": "",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updateResp))
	assert.Equal(t, "", updateResp.Data.Brand)
	assert.Equal(t, "456", updateResp.Data.Price)

	// Delete returns the removed record; a re-fetch is a 404.
	rr = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Item deleted successfully")

	rr = doJSON(router, http.MethodGet, fmt.Sprintf("/api/items/%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Item not found")
}

func TestCreateMissingRequiredFields(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodPost, "/api/items", token, gin.H{
		"SKU": "90002", "ITEM": "NO PRICE", "CATEGORY": "Cat 5 Mix Brownie",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Required fields: SKU, ITEM, CATEGORY, PRICE"}`, rr.Body.String())
}

func TestGetItemBySKU(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodGet, "/api/items/sku/10050", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data models.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "10050", resp.Data.SKU)

	rr = doJSON(router, http.MethodGet, "/api/items/sku/does-not-exist", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetItemsByCategory(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodGet, "/api/items/category/Cat%2050%20Chocolate", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Count int           `json:"count"`
		Data  []models.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Greater(t, resp.Count, 0)

	// An unknown category is an empty list, not a 404.
	rr = doJSON(router, http.MethodGet, "/api/items/category/nope", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}

func TestSearchItems(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodGet, "/api/items/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(router, http.MethodGet, "/api/items/search?q=westco", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Count int    `json:"count"`
		Query string `json:"query"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "westco", resp.Query)
	assert.Greater(t, resp.Count, 0)
}

func TestFilterItems(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodPost, "/api/items/filter", token, gin.H{
		"brand":    "west",
		"maxPrice": 50,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Count int           `json:"count"`
		Data  []models.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Greater(t, resp.Count, 0)
	for _, it := range resp.Data {
		assert.Contains(t, strings.ToLower(it.Brand), "west")
	}
}

func TestListCategoriesAndBrands(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodGet, "/api/categories", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Count int      `json:"count"`
		Data  []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Count)
	assert.IsIncreasing(t, resp.Data)

	rr = doJSON(router, http.MethodGet, "/api/brands", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Greater(t, resp.Count, 0)
	assert.NotContains(t, resp.Data, "")
}

func TestChatSession(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodPost, "/api/chat/session", token, gin.H{"userId": "admin"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data chatbridge.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.SessionID)
	assert.Contains(t, resp.Data.EmbedURL, resp.Data.SessionID)

	// Same identity gets the same engagement id back.
	rr = doJSON(router, http.MethodPost, "/api/chat/session", token, gin.H{"userId": "admin"})
	require.Equal(t, http.StatusOK, rr.Code)
	var second struct {
		Data chatbridge.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &second))
	assert.Equal(t, resp.Data.SessionID, second.Data.SessionID)

	rr = doJSON(router, http.MethodPost, "/api/chat/session", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChatQuery(t *testing.T) {
	router := newTestRouter(t, "")
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodPost, "/api/chat/query", token, gin.H{
		"message": "chocolate chip cookies under $50",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool          `json:"success"`
		Reply   string        `json:"reply"`
		Count   int           `json:"count"`
		Data    []models.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Reply)
	assert.Equal(t, len(resp.Data), resp.Count)

	rr = doJSON(router, http.MethodPost, "/api/chat/query", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCategoryChart(t *testing.T) {
	renderer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("fake-png"))
	}))
	defer renderer.Close()

	router := newTestRouter(t, renderer.URL)
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodGet, "/api/chart/categories", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.Equal(t, "fake-png", rr.Body.String())
}

func TestCategoryChartRendererDown(t *testing.T) {
	renderer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer renderer.Close()

	router := newTestRouter(t, renderer.URL)
	token := loginToken(t, router)

	rr := doJSON(router, http.MethodGet, "/api/chart/categories", token, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Internal server error")
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t, "")

	rr := doJSON(router, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":"Endpoint not found"}`, rr.Body.String())
}
