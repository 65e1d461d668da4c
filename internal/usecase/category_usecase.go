package usecase

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

var _ domain.CategoryUseCase = (*categoryUseCase)(nil)

type categoryUseCase struct {
	tx  domain.Transactor
	log *logrus.Logger
}

func NewCategoryUseCase(tx domain.Transactor, logger *logrus.Logger) domain.CategoryUseCase {
	return &categoryUseCase{
		tx:  tx,
		log: logger,
	}
}

func (uc *categoryUseCase) FindAllPaged(ctx context.Context, req domain.PageRequest) (domain.Page[domain.CategoryDTO], error) {
	uc.log.Debugf("Use Case: Listing categories (page %d, size %d)", req.Page, req.Size)

	var page domain.Page[domain.CategoryDTO]
	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{ReadOnly: true}, func(repos domain.Repositories) error {
		categories, total, err := repos.Categories().FindAll(ctx, req)
		if err != nil {
			return err
		}
		page = domain.MapPage(domain.NewPage(categories, req, total), toCategoryDTO)
		return nil
	})
	if err != nil {
		uc.log.Errorf("Use Case: Failed to list categories: %v", err)
		return domain.Page[domain.CategoryDTO]{}, fmt.Errorf("could not retrieve categories: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d of %d categories", page.NumberOfElements, page.TotalElements)
	return page, nil
}

func (uc *categoryUseCase) FindByID(ctx context.Context, id uint) (*domain.CategoryDTO, error) {
	var dto domain.CategoryDTO
	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{ReadOnly: true}, func(repos domain.Repositories) error {
		category, err := repos.Categories().FindByID(ctx, id)
		if err != nil {
			return err
		}
		dto = toCategoryDTO(*category)
		return nil
	})
	if err != nil {
		uc.log.Warnf("Use Case: Failed to get category ID %d: %v", id, err)
		return nil, err
	}
	return &dto, nil
}

func (uc *categoryUseCase) Insert(ctx context.Context, dto domain.CategoryDTO) (*domain.CategoryDTO, error) {
	uc.log.Infof("Use Case: Attempting to create category with name '%s'", dto.Name)

	var created domain.CategoryDTO
	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{}, func(repos domain.Repositories) error {
		var entity domain.Category
		copyCategoryDTOToEntity(dto, &entity)
		if err := repos.Categories().Save(ctx, &entity); err != nil {
			return err
		}
		created = toCategoryDTO(entity)
		return nil
	})
	if err != nil {
		uc.log.Errorf("Use Case: Failed to create category '%s': %v", dto.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created with ID %d", created.Name, created.ID)
	return &created, nil
}

// Update fails with ErrNotFound when id does not exist; it never creates a category.
func (uc *categoryUseCase) Update(ctx context.Context, id uint, dto domain.CategoryDTO) (*domain.CategoryDTO, error) {
	uc.log.Infof("Use Case: Attempting to update category ID %d", id)

	var updated domain.CategoryDTO
	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{}, func(repos domain.Repositories) error {
		entity, err := repos.Categories().FindByID(ctx, id)
		if err != nil {
			return err
		}
		copyCategoryDTOToEntity(dto, entity)
		if err := repos.Categories().Save(ctx, entity); err != nil {
			return err
		}
		updated = toCategoryDTO(*entity)
		return nil
	})
	if err != nil {
		uc.log.Warnf("Use Case: Failed to update category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category updated for ID %d", id)
	return &updated, nil
}

func (uc *categoryUseCase) Delete(ctx context.Context, id uint) error {
	uc.log.Infof("Use Case: Attempting to delete category ID %d", id)

	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{}, func(repos domain.Repositories) error {
		exists, err := repos.Categories().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
		}
		return repos.Categories().DeleteByID(ctx, id)
	})
	if err != nil {
		uc.log.Warnf("Use Case: Failed to delete category ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category deleted for ID %d", id)
	return nil
}
