package repository

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const categoriesAssociation = "Categories"

type gormProductRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewProductRepository(db *gorm.DB, logger *logrus.Logger) domain.ProductRepository {
	return &gormProductRepository{
		db:  db,
		log: logger,
	}
}

func orderCategoriesByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func (r *gormProductRepository) FindAll(ctx context.Context, req domain.PageRequest) ([]domain.Product, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error; err != nil {
		r.log.Errorf("Failed to count products: %v", err)
		return nil, 0, fmt.Errorf("could not count products: %w", translateError(err))
	}

	products := []domain.Product{}
	query := applySort(r.db.WithContext(ctx), req.Sort, domain.ProductSortProperties).
		Preload(categoriesAssociation, orderCategoriesByID).
		Offset(req.Offset()).
		Limit(req.Limit())
	if err := query.Find(&products).Error; err != nil {
		r.log.Errorf("Failed to list products (page %d, size %d): %v", req.Page, req.Size, err)
		return nil, 0, fmt.Errorf("could not list products: %w", translateError(err))
	}

	r.log.Debugf("Retrieved %d of %d products (page %d, size %d)", len(products), total, req.Page, req.Size)
	return products, total, nil
}

func (r *gormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Preload(categoriesAssociation, orderCategoriesByID).
		First(&product, id).Error
	if err != nil {
		err = translateError(err)
		r.log.Debugf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("product with id %d: %w", id, err)
	}
	return &product, nil
}

func (r *gormProductRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.log.Errorf("Failed to check product ID %d: %v", id, err)
		return false, fmt.Errorf("could not check product existence: %w", translateError(err))
	}
	return count > 0, nil
}

// Save writes the product row and then replaces its association rows with
// product.Categories. Categories must already exist.
func (r *gormProductRepository) Save(ctx context.Context, product *domain.Product) error {
	db := r.db.WithContext(ctx)
	if product.ID == 0 {
		if err := db.Omit(categoriesAssociation).Create(product).Error; err != nil {
			r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
			return fmt.Errorf("could not create product: %w", translateError(err))
		}
		r.log.Infof("Product created with ID: %d, Name: %s", product.ID, product.Name)
	} else {
		res := db.Model(product).
			Select("Name", "Description", "Date", "ImageURL", "Price").
			Omit(categoriesAssociation).
			Updates(product)
		if res.Error != nil {
			r.log.Errorf("Failed to update product ID %d: %v", product.ID, res.Error)
			return fmt.Errorf("could not update product: %w", translateError(res.Error))
		}
		if res.RowsAffected == 0 {
			r.log.Warnf("Product with ID %d not found for update", product.ID)
			return fmt.Errorf("product with id %d: %w", product.ID, domain.ErrNotFound)
		}
		r.log.Infof("Product updated with ID: %d", product.ID)
	}

	categories := product.Categories
	association := db.Model(product).Association(categoriesAssociation)
	var err error
	if len(categories) == 0 {
		err = association.Clear()
	} else {
		err = association.Replace(categories)
	}
	if err != nil {
		r.log.Errorf("Failed to replace categories of product ID %d: %v", product.ID, err)
		return fmt.Errorf("could not save categories of product %d: %w", product.ID, translateError(err))
	}
	product.Categories = categories
	return nil
}

// DeleteByID removes the product's association rows before the product itself.
func (r *gormProductRepository) DeleteByID(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(&domain.Product{ID: id}).Association(categoriesAssociation).Clear(); err != nil {
		err = translateError(err)
		r.log.Warnf("Failed to detach categories of product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product %d: %w", id, err)
	}

	res := db.Delete(&domain.Product{}, id)
	if res.Error != nil {
		err := translateError(res.Error)
		r.log.Warnf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product %d: %w", id, err)
	}
	if res.RowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Product deleted with ID: %d", id)
	return nil
}
