package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"catalog-service/internal/auth"
	"catalog-service/internal/models"
	"catalog-service/internal/query"
	"catalog-service/internal/service"
	"catalog-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler contains HTTP handlers
type Handler struct {
	catalogService *service.CatalogService
	chatService    *service.ChatService
	gate           *auth.Gate
	logger         *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(catalogService *service.CatalogService, chatService *service.ChatService, gate *auth.Gate) *Handler {
	return &Handler{
		catalogService: catalogService,
		chatService:    chatService,
		gate:           gate,
		logger:         util.GetLogger(),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/api", h.apiInfo)
	router.POST("/api/login", h.login)

	protected := router.Group("/api")
	protected.Use(AuthRequired(h.gate))
	{
		protected.GET("/items", h.listItems)
		protected.GET("/items/search", h.searchItems)
		protected.POST("/items/filter", h.filterItems)
		protected.GET("/items/sku/:sku", h.getItemBySKU)
		protected.GET("/items/category/:category", h.getItemsByCategory)
		protected.GET("/items/:id", h.getItem)
		protected.POST("/items", h.createItem)
		protected.PUT("/items/:id", h.updateItem)
		protected.DELETE("/items/:id", h.deleteItem)

		protected.GET("/categories", h.listCategories)
		protected.GET("/brands", h.listBrands)

		protected.POST("/chat/session", h.chatSession)
		protected.POST("/chat/query", h.chatQuery)
		protected.GET("/chart/categories", h.categoryChart)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Endpoint not found",
		})
	})
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// apiInfo describes the API surface
func (h *Handler) apiInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":        "Product Catalog API",
		"version":        "1.0.0",
		"authentication": "Required - Use POST /api/login to get access token",
		"endpoints": gin.H{
			"login":           "POST /api/login - Get access token (username, password)",
			"items":           "GET /api/items - Get all items (requires auth)",
			"itemBySku":       "GET /api/items/sku/:sku - Get item by SKU (requires auth)",
			"itemById":        "GET /api/items/:id - Get item by ID (requires auth)",
			"categories":      "GET /api/categories - Get all categories (requires auth)",
			"brands":          "GET /api/brands - Get all brands (requires auth)",
			"itemsByCategory": "GET /api/items/category/:category - Get items by category (requires auth)",
			"search":          "GET /api/items/search?q=query - Search items (requires auth)",
			"filter":          "POST /api/items/filter - Structured filter (requires auth)",
			"create":          "POST /api/items - Create new item (requires auth)",
			"update":          "PUT /api/items/:id - Update item (requires auth)",
			"delete":          "DELETE /api/items/:id - Delete item (requires auth)",
			"chatSession":     "POST /api/chat/session - Bootstrap chat session (requires auth)",
			"chatQuery":       "POST /api/chat/query - Ask the catalog in plain language (requires auth)",
			"categoryChart":   "GET /api/chart/categories - Average price per category as PNG (requires auth)",
		},
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login validates admin credentials and issues a bearer token
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Username and password are required",
		})
		return
	}

	token, err := h.gate.Login(req.Username, req.Password)
	if err != nil {
		util.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid credentials",
		})
		return
	}

	util.LoginAttemptsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Login successful",
		"token":     token,
		"expiresIn": "24h",
	})
}

// listItems returns the full catalog
func (h *Handler) listItems(c *gin.Context) {
	items := h.catalogService.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// getItem returns a single item by id
func (h *Handler) getItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.notFound(c)
		return
	}

	item, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// getItemBySKU returns the first item with a matching SKU
func (h *Handler) getItemBySKU(c *gin.Context) {
	item, err := h.catalogService.GetBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// getItemsByCategory returns all items in a category; an unknown category
// yields an empty list, not a 404
func (h *Handler) getItemsByCategory(c *gin.Context) {
	items := h.catalogService.GetByCategory(c.Request.Context(), c.Param("category"))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// searchItems matches the query against every field of every item
func (h *Handler) searchItems(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   `Query parameter "q" is required`,
		})
		return
	}

	results := h.catalogService.Search(c.Request.Context(), q)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(results),
		"query":   q,
		"data":    results,
	})
}

type filterRequest struct {
	Item     string   `json:"item"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	MinPrice *float64 `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`
}

// filterItems applies the structured conjunctive filter
func (h *Handler) filterItems(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	results := h.catalogService.Filter(c.Request.Context(), query.Criteria{
		Item:     req.Item,
		Brand:    req.Brand,
		Category: req.Category,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(results),
		"data":    results,
	})
}

type createItemRequest struct {
	SKU      string `json:"SKU"`
	Pack     string `json:"PACK"`
	Size     string `json:"SIZE"`
	Brand    string `json:"BRAND"`
	Item     string `json:"ITEM"`
	Category string `json:"CATEGORY"`
	Price    string `json:"PRICE"`
}

// createItem validates and appends a new item
func (h *Handler) createItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	created, err := h.catalogService.Create(c.Request.Context(), models.Item{
		SKU:      req.SKU,
		Pack:     req.Pack,
		Size:     req.Size,
		Brand:    req.Brand,
		Item:     req.Item,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Item created successfully",
		"data":    created,
	})
}

// updateItem merge-patches an existing item
func (h *Handler) updateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.notFound(c)
		return
	}

	var patch models.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	updated, err := h.catalogService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item updated successfully",
		"data":    updated,
	})
}

// deleteItem removes an item and returns it
func (h *Handler) deleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.notFound(c)
		return
	}

	removed, err := h.catalogService.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item deleted successfully",
		"data":    removed,
	})
}

// listCategories returns the distinct category projection
func (h *Handler) listCategories(c *gin.Context) {
	categories := h.catalogService.Categories(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(categories),
		"data":    categories,
	})
}

// listBrands returns the distinct non-empty brand projection
func (h *Handler) listBrands(c *gin.Context) {
	brands := h.catalogService.Brands(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(brands),
		"data":    brands,
	})
}

type chatSessionRequest struct {
	UserID string `json:"userId"`
}

// chatSession bootstraps a session with the conversational widget
func (h *Handler) chatSession(c *gin.Context) {
	var req chatSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   `Field "userId" is required`,
		})
		return
	}

	session, err := h.chatService.BootstrapSession(c.Request.Context(), req.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    session,
	})
}

type chatQueryRequest struct {
	Message string `json:"message"`
}

// chatQuery answers a natural-language catalog question
func (h *Handler) chatQuery(c *gin.Context) {
	var req chatQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   `Field "message" is required`,
		})
		return
	}

	reply, results := h.chatService.Answer(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reply":   reply,
		"count":   len(results),
		"data":    results,
	})
}

// categoryChart renders average price per category via the external renderer
func (h *Handler) categoryChart(c *gin.Context) {
	img, err := h.chatService.RenderCategoryChart(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "Item not found",
	})
}

// writeError maps service errors to envelope responses. Validation failures
// and misses are surfaced as-is; anything else is logged and hidden behind a
// generic 500.
func (h *Handler) writeError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		h.notFound(c)
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Required fields: SKU, ITEM, CATEGORY, PRICE",
		})
	default:
		h.logger.Error("Internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Internal server error",
		})
	}
}
