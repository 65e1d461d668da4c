package repository

import (
	"context"
	"fmt"
	"time"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewCategoryRepository(db *gorm.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &gormCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormCategoryRepository) FindAll(ctx context.Context, req domain.PageRequest) ([]domain.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&total).Error; err != nil {
		r.log.Errorf("Failed to count categories: %v", err)
		return nil, 0, fmt.Errorf("could not count categories: %w", translateError(err))
	}

	categories := []domain.Category{}
	query := applySort(r.db.WithContext(ctx), req.Sort, domain.CategorySortProperties).
		Offset(req.Offset()).
		Limit(req.Limit())
	if err := query.Find(&categories).Error; err != nil {
		r.log.Errorf("Failed to list categories (page %d, size %d): %v", req.Page, req.Size, err)
		return nil, 0, fmt.Errorf("could not list categories: %w", translateError(err))
	}

	r.log.Debugf("Retrieved %d of %d categories (page %d, size %d)", len(categories), total, req.Page, req.Size)
	return categories, total, nil
}

func (r *gormCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		err = translateError(err)
		r.log.Debugf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("category with id %d: %w", id, err)
	}
	return &category, nil
}

func (r *gormCategoryRepository) FindAllByIDs(ctx context.Context, ids []uint) ([]domain.Category, error) {
	categories := []domain.Category{}
	if len(ids) == 0 {
		return categories, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		r.log.Errorf("Failed to load categories %v: %v", ids, err)
		return nil, fmt.Errorf("could not load categories: %w", translateError(err))
	}
	return categories, nil
}

func (r *gormCategoryRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.log.Errorf("Failed to check category ID %d: %v", id, err)
		return false, fmt.Errorf("could not check category existence: %w", translateError(err))
	}
	return count > 0, nil
}

// Save inserts the category when it has no id yet and updates it otherwise. An update of a
// missing row fails with ErrNotFound instead of inserting it.
func (r *gormCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	db := r.db.WithContext(ctx)
	if category.ID == 0 {
		if err := db.Create(category).Error; err != nil {
			r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
			return fmt.Errorf("could not create category: %w", translateError(err))
		}
		r.log.Infof("Category created with ID: %d, Name: %s", category.ID, category.Name)
		return nil
	}

	now := time.Now()
	category.UpdatedAt = &now
	res := db.Model(category).Select("Name", "UpdatedAt").Updates(category)
	if res.Error != nil {
		r.log.Errorf("Failed to update category ID %d: %v", category.ID, res.Error)
		return fmt.Errorf("could not update category: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		r.log.Warnf("Category with ID %d not found for update", category.ID)
		return fmt.Errorf("category with id %d: %w", category.ID, domain.ErrNotFound)
	}
	r.log.Infof("Category updated with ID: %d", category.ID)
	return nil
}

func (r *gormCategoryRepository) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Category{}, id)
	if res.Error != nil {
		err := translateError(res.Error)
		r.log.Warnf("Failed to delete category ID %d: %v", id, err)
		return fmt.Errorf("could not delete category %d: %w", id, err)
	}
	if res.RowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Category deleted with ID: %d", id)
	return nil
}
