package domain

import "strings"

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type SortOrder struct {
	Property  string    `json:"property"`
	Direction Direction `json:"direction"`
}

// PageRequest is a zero-based page index plus page size and an ordered list of sort keys.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

func (p PageRequest) Limit() int {
	return p.Size
}

// ParseDirection accepts "asc"/"desc" in any case; anything else is rejected.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(Asc):
		return Asc, true
	case string(Desc):
		return Desc, true
	default:
		return "", false
	}
}

type Page[T any] struct {
	Content          []T         `json:"content"`
	Number           int         `json:"number"`
	Size             int         `json:"size"`
	TotalElements    int64       `json:"totalElements"`
	TotalPages       int         `json:"totalPages"`
	NumberOfElements int         `json:"numberOfElements"`
	First            bool        `json:"first"`
	Last             bool        `json:"last"`
	Sort             []SortOrder `json:"sort"`
}

// NewPage builds the page envelope for content fetched with req out of total rows.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	sort := req.Sort
	if sort == nil {
		sort = []SortOrder{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:          content,
		Number:           req.Page,
		Size:             req.Size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            req.Page == 0,
		Last:             req.Page+1 >= totalPages,
		Sort:             sort,
	}
}

// MapPage converts the content of a page while keeping its metadata.
func MapPage[S, T any](p Page[S], fn func(S) T) Page[T] {
	out := make([]T, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}
	return Page[T]{
		Content:          out,
		Number:           p.Number,
		Size:             p.Size,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		NumberOfElements: p.NumberOfElements,
		First:            p.First,
		Last:             p.Last,
		Sort:             p.Sort,
	}
}
