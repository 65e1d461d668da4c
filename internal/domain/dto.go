package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name" binding:"required,max=255"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// CategoryRef is the projection of a category nested inside a product.
type CategoryRef struct {
	ID   uint   `json:"id" binding:"required"`
	Name string `json:"name"`
}

type ProductDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	ImageURL    string          `json:"imageUrl" binding:"omitempty,url"`
	Price       decimal.Decimal `json:"price"`
	Categories  []CategoryRef   `json:"categories" binding:"dive"`
}

// UnmarshalJSON also accepts the legacy "imgUrl" key. "imageUrl" wins when both are sent.
func (p *ProductDTO) UnmarshalJSON(data []byte) error {
	type plain ProductDTO
	aux := struct {
		*plain
		LegacyImageURL string `json:"imgUrl"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.ImageURL == "" {
		p.ImageURL = aux.LegacyImageURL
	}
	return nil
}
