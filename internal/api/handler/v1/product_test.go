package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/service"
)

func newProductTestRouter(svc InventoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewProductHandler(svc)
	router.GET("/products", handler.HandleListProductRows)
	router.GET("/api/v1/products", handler.HandleListProducts)
	router.GET("/api/v1/products/:productID", handler.HandleGetProduct)
	router.POST("/api/v1/products", handler.HandleCreateProduct)
	router.PUT("/api/v1/products/:productID", handler.HandleUpdateProduct)
	router.DELETE("/api/v1/products/:productID", handler.HandleDeleteProduct)

	return router
}

func TestProductHandler_HandleListProductRows(t *testing.T) {
	t.Run("Success - legacy row format", func(t *testing.T) {
		// given
		svc := &mockInventoryService{
			products: []domain.Product{
				{ID: 1, Name: "Notebook", Price: 30.00, Stock: 50},
				{ID: 2, Name: "Pen", Price: 10.00, Stock: 100},
			},
		}
		router := newProductTestRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		resp := httptest.NewRecorder()
		// when
		router.ServeHTTP(resp, req)
		// then
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `[[1,"Notebook",30,50],[2,"Pen",10,100]]`, resp.Body.String())
	})
}

func TestProductHandler_HandleGetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// given
		svc := &mockInventoryService{
			products: []domain.Product{
				{ID: 3, Name: "Eraser", Price: 3.00, Stock: 80},
			},
		}
		router := newProductTestRouter(svc)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/3", nil)
		resp := httptest.NewRecorder()
		// when
		router.ServeHTTP(resp, req)
		// then
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"name":"Eraser"`)
		assert.Contains(t, resp.Body.String(), `"stock":80`)
	})

	t.Run("Error - unknown product", func(t *testing.T) {
		// given
		router := newProductTestRouter(&mockInventoryService{err: service.ErrProductNotFound})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/99", nil)
		resp := httptest.NewRecorder()
		// when
		router.ServeHTTP(resp, req)
		// then
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("Error - non-numeric product id", func(t *testing.T) {
		// given
		router := newProductTestRouter(&mockInventoryService{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
		resp := httptest.NewRecorder()
		// when
		router.ServeHTTP(resp, req)
		// then
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestProductHandler_HandleCreateProduct(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		expectStatus int
	}{
		{
			name:         "Success",
			body:         `{"name": "Ruler", "price": 7.50, "stock": 30}`,
			expectStatus: http.StatusCreated,
		},
		{
			name:         "Success - free product with zero price",
			body:         `{"name": "Flyer", "price": 0, "stock": 500}`,
			expectStatus: http.StatusCreated,
		},
		{
			name:         "Error - empty name",
			body:         `{"name": "", "price": 7.50, "stock": 30}`,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "Error - negative price",
			body:         `{"name": "Ruler", "price": -7.50, "stock": 30}`,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "Error - negative stock",
			body:         `{"name": "Ruler", "price": 7.50, "stock": -1}`,
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newProductTestRouter(&mockInventoryService{})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			// when
			router.ServeHTTP(resp, req)
			// then
			assert.Equal(t, tc.expectStatus, resp.Code)
		})
	}
}

func TestProductHandler_HandleUpdateProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// given
		router := newProductTestRouter(&mockInventoryService{})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/3", strings.NewReader(`{"price": 9.99, "stock": 10}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		// when
		router.ServeHTTP(resp, req)
		// then
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"price":9.99`)
	})

	t.Run("Error - unknown product", func(t *testing.T) {
		// given
		router := newProductTestRouter(&mockInventoryService{err: service.ErrProductNotFound})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/99", strings.NewReader(`{"price": 9.99, "stock": 10}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		// when
		router.ServeHTTP(resp, req)
		// then
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("Error - non-numeric product id", func(t *testing.T) {
		// given
		router := newProductTestRouter(&mockInventoryService{})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/products/abc", strings.NewReader(`{"price": 9.99, "stock": 10}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		// when
		router.ServeHTTP(resp, req)
		// then
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestProductHandler_HandleDeleteProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// given
		router := newProductTestRouter(&mockInventoryService{})
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/3", nil)
		resp := httptest.NewRecorder()
		// when
		router.ServeHTTP(resp, req)
		// then
		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("Error - unknown product", func(t *testing.T) {
		// given
		router := newProductTestRouter(&mockInventoryService{err: service.ErrProductNotFound})
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/99", nil)
		resp := httptest.NewRecorder()
		// when
		router.ServeHTTP(resp, req)
		// then
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
