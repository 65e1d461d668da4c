package delivery

import (
	"testing"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSort(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expected    []domain.SortOrder
		expectedErr bool
	}{
		{
			name:     "Property only",
			raw:      "name",
			expected: []domain.SortOrder{{Property: "name", Direction: domain.Asc}},
		},
		{
			name:     "Property with direction",
			raw:      "price,DESC",
			expected: []domain.SortOrder{{Property: "price", Direction: domain.Desc}},
		},
		{
			name: "Several properties share a direction",
			raw:  "date,name,desc",
			expected: []domain.SortOrder{
				{Property: "date", Direction: domain.Desc},
				{Property: "name", Direction: domain.Desc},
			},
		},
		{
			name:     "Blank segments are ignored",
			raw:      "name,,asc",
			expected: []domain.SortOrder{{Property: "name", Direction: domain.Asc}},
		},
		{
			name:        "Unknown property",
			raw:         "img_url,asc",
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, err := parseSort(tc.raw, domain.ProductSortProperties)
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, orders)
		})
	}
}

func TestPaginationQueryErrors(t *testing.T) {
	queries := []string{
		"?page=abc",
		"?page=-3",
		"?size=0",
		"?size=ten",
		"?sort=name,sideways",
		"?page=100000000000000000&size=100",
		"?page=9223372036854775807",
	}
	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			mock := &MockProductUseCase{}
			rec := doRequest(newTestRouter(nil, mock), "GET", "/products"+query, nil)

			assert.Equal(t, 400, rec.Code)
			assert.Zero(t, mock.callCount)
		})
	}
}

func TestLargePageWithinRangeIsAccepted(t *testing.T) {
	mock := &MockCategoryUseCase{}
	rec := doRequest(newTestRouter(mock, nil), "GET", "/categories?page=1000000&size=100", nil)

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, domain.PageRequest{Page: 1000000, Size: 100}, mock.lastPage)
	assert.Equal(t, 100000000, mock.lastPage.Offset())
}

func TestParseIDRange(t *testing.T) {
	testCases := []struct {
		name               string
		path               string
		expectedStatusCode int
	}{
		{"Largest signed id", "/products/9223372036854775807", 200},
		{"Above signed range", "/products/9223372036854775808", 400},
		{"Above unsigned range", "/products/18446744073709551616", 400},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &MockProductUseCase{Product: &domain.ProductDTO{ID: 1, Name: "x"}}
			rec := doRequest(newTestRouter(nil, mock), "GET", tc.path, nil)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedStatusCode == 400 {
				assert.Zero(t, mock.callCount)
			}
		})
	}
}
