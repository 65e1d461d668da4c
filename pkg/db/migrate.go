package db

import (
	"fmt"

	"catalog_service/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates tb_category, tb_product and tb_product_category.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&domain.Category{}, &domain.Product{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
