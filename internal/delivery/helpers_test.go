package delivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog_service/pkg/db/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testPaging = PageDefaults{DefaultSize: 12, MaxSize: 100}

func init() {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
}

func newTestRouter(categories *MockCategoryUseCase, products *MockProductUseCase) *gin.Engine {
	if categories == nil {
		categories = &MockCategoryUseCase{}
	}
	if products == nil {
		products = &MockProductUseCase{}
	}
	return NewRouter(RouterConfig{
		Categories: categories,
		Products:   products,
		DB:         MockPinger{},
		Paging:     testPaging,
		Logger:     dbtest.Logger(),
	})
}

func doRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(router, req)
}

func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) StandardError {
	t.Helper()
	var body StandardError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
