package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"catalog_service/internal/domain"
)

func toCategoryDTO(c domain.Category) domain.CategoryDTO {
	createdAt := c.CreatedAt
	return domain.CategoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: &createdAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toProductDTO(p domain.Product) domain.ProductDTO {
	refs := make([]domain.CategoryRef, len(p.Categories))
	for i, c := range p.Categories {
		refs[i] = domain.CategoryRef{ID: c.ID, Name: c.Name}
	}
	return domain.ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Date:        p.Date,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		Categories:  refs,
	}
}

func copyCategoryDTOToEntity(dto domain.CategoryDTO, entity *domain.Category) {
	entity.Name = dto.Name
}

// copyProductDTOToEntity copies the scalar fields of dto onto entity and rebuilds its
// category set. All referenced ids are resolved first; the first id that does not exist
// fails the copy with ErrNotFound and leaves entity untouched. The rebuilt set is ordered
// by id, the same order repositories load it in.
func copyProductDTOToEntity(ctx context.Context, categories domain.CategoryRepository, dto domain.ProductDTO, entity *domain.Product) error {
	ids := make([]uint, 0, len(dto.Categories))
	seen := make(map[uint]struct{}, len(dto.Categories))
	for _, ref := range dto.Categories {
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}
		ids = append(ids, ref.ID)
	}

	found, err := categories.FindAllByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[uint]domain.Category, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	resolved := make([]domain.Category, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
		}
		resolved = append(resolved, c)
	}
	slices.SortFunc(resolved, func(a, b domain.Category) int { return cmp.Compare(a.ID, b.ID) })

	entity.Name = dto.Name
	entity.Description = dto.Description
	entity.Date = dto.Date
	entity.ImageURL = dto.ImageURL
	entity.Price = dto.Price
	entity.Categories = resolved
	return nil
}
