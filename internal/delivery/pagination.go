package delivery

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type PageDefaults struct {
	DefaultSize int
	MaxSize     int
}

// parsePageRequest reads page, size and sort from the query string. sort may repeat and
// takes the form "property[,property...][,asc|desc]".
func parsePageRequest(c *gin.Context, defaults PageDefaults, sortable map[string]string) (domain.PageRequest, error) {
	req := domain.PageRequest{Page: 0, Size: defaults.DefaultSize}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return req, fmt.Errorf("invalid page parameter %q", pageStr)
		}
		req.Page = page
	}

	if sizeStr := c.Query("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 {
			return req, fmt.Errorf("invalid size parameter %q", sizeStr)
		}
		req.Size = min(size, defaults.MaxSize)
	}

	if req.Page > math.MaxInt/req.Size {
		return req, fmt.Errorf("page parameter %d is out of range for size %d", req.Page, req.Size)
	}

	for _, raw := range c.QueryArray("sort") {
		orders, err := parseSort(raw, sortable)
		if err != nil {
			return req, err
		}
		req.Sort = append(req.Sort, orders...)
	}
	return req, nil
}

func parseSort(raw string, sortable map[string]string) ([]domain.SortOrder, error) {
	parts := strings.Split(raw, ",")
	direction := domain.Asc
	if len(parts) > 1 {
		last := strings.TrimSpace(parts[len(parts)-1])
		if d, ok := domain.ParseDirection(last); ok {
			direction = d
			parts = parts[:len(parts)-1]
		}
	}

	var orders []domain.SortOrder
	for _, p := range parts {
		property := strings.TrimSpace(p)
		if property == "" {
			continue
		}
		if _, ok := sortable[property]; !ok {
			return nil, fmt.Errorf("invalid sort property %q", property)
		}
		orders = append(orders, domain.SortOrder{Property: property, Direction: direction})
	}
	return orders, nil
}

func parseID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 63)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", idStr)
	}
	return uint(id), nil
}

func location(c *gin.Context, id uint) string {
	return fmt.Sprintf("%s/%d", strings.TrimSuffix(c.Request.URL.Path, "/"), id)
}
