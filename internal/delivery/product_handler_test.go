package delivery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_FindByID(t *testing.T) {
	product := &domain.ProductDTO{
		ID:         1,
		Name:       "The Lord of the Rings",
		Date:       time.Date(2020, time.July, 14, 10, 0, 0, 0, time.UTC),
		ImageURL:   "https://img.example.com/1-big.jpg",
		Price:      decimal.RequireFromString("90.5"),
		Categories: []domain.CategoryRef{{ID: 1, Name: "Books"}},
	}
	mock := &MockProductUseCase{Product: product}
	rec := doRequest(newTestRouter(nil, mock), http.MethodGet, "/products/1", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "The Lord of the Rings", body["name"])
	assert.Equal(t, "https://img.example.com/1-big.jpg", body["imageUrl"])
	assert.Equal(t, 90.5, body["price"])
	assert.Equal(t, "2020-07-14T10:00:00Z", body["date"])
	assert.Equal(t, []any{map[string]any{"id": float64(1), "name": "Books"}}, body["categories"])
}

func TestProductHandler_FindAllRejectsUnknownSort(t *testing.T) {
	mock := &MockProductUseCase{}
	rec := doRequest(newTestRouter(nil, mock), http.MethodGet, "/products?sort=createdAt", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, mock.callCount)
}

func TestProductHandler_Insert(t *testing.T) {
	validBody := map[string]any{
		"name":        "Smart TV",
		"description": "Lorem ipsum",
		"date":        "2020-07-14T10:00:00Z",
		"imageUrl":    "https://img.example.com/2-big.jpg",
		"price":       2190.0,
		"categories":  []map[string]any{{"id": 2}, {"id": 3}},
	}

	testCases := []struct {
		name               string
		body               any
		mock               *MockProductUseCase
		expectedStatusCode int
		expectedField      string
	}{
		{
			name:               "Created",
			body:               validBody,
			mock:               &MockProductUseCase{Product: &domain.ProductDTO{ID: 26, Name: "Smart TV"}},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "Unknown category",
			body:               validBody,
			mock:               &MockProductUseCase{Err: fmt.Errorf("category with id 3: %w", domain.ErrNotFound)},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "Negative price",
			body:               map[string]any{"name": "Smart TV", "price": -1},
			mock:               &MockProductUseCase{},
			expectedStatusCode: http.StatusBadRequest,
			expectedField:      "price",
		},
		{
			name:               "Invalid image url",
			body:               map[string]any{"name": "Smart TV", "imageUrl": "not a url"},
			mock:               &MockProductUseCase{},
			expectedStatusCode: http.StatusBadRequest,
			expectedField:      "ImageURL",
		},
		{
			name:               "Category reference without id",
			body:               map[string]any{"name": "Smart TV", "categories": []map[string]any{{"name": "Books"}}},
			mock:               &MockProductUseCase{},
			expectedStatusCode: http.StatusBadRequest,
			expectedField:      "ID",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(newTestRouter(nil, tc.mock), http.MethodPost, "/products", tc.body)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			switch tc.expectedStatusCode {
			case http.StatusCreated:
				assert.Equal(t, "/products/26", rec.Header().Get("Location"))
				assert.Equal(t, "Smart TV", tc.mock.lastDTO.Name)
				assert.Equal(t, "https://img.example.com/2-big.jpg", tc.mock.lastDTO.ImageURL)
				assert.True(t, decimal.NewFromInt(2190).Equal(tc.mock.lastDTO.Price))
				assert.Equal(t, []domain.CategoryRef{{ID: 2}, {ID: 3}}, tc.mock.lastDTO.Categories)
			case http.StatusBadRequest:
				assert.Zero(t, tc.mock.callCount)
				body := decodeError(t, rec)
				require.NotEmpty(t, body.Errors)
				assert.Equal(t, tc.expectedField, body.Errors[0].FieldName)
			}
		})
	}
}

func TestProductHandler_UpdateAndDelete(t *testing.T) {
	t.Run("Update absent product", func(t *testing.T) {
		mock := &MockProductUseCase{Err: domain.ErrNotFound}
		rec := doRequest(newTestRouter(nil, mock), http.MethodPut, "/products/77", map[string]any{"name": "Ghost"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, uint(77), mock.lastID)
	})

	t.Run("Delete", func(t *testing.T) {
		mock := &MockProductUseCase{}
		rec := doRequest(newTestRouter(nil, mock), http.MethodDelete, "/products/5", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, uint(5), mock.lastID)
	})
}
