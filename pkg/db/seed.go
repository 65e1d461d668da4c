package db

import (
	"context"
	"fmt"
	"time"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type seedProduct struct {
	name       string
	price      string
	categories []int
}

var seedCategories = []string{"Books", "Electronics", "Computers"}

var seedProducts = []seedProduct{
	{"The Lord of the Rings", "90.50", []int{0}},
	{"Smart TV", "2190.00", []int{1, 2}},
	{"Macbook Pro", "1250.00", []int{2}},
	{"PC Gamer", "1200.00", []int{2}},
	{"Rails for Dummies", "100.99", []int{0, 2}},
	{"PC Gamer Ex", "1350.00", []int{2}},
	{"PC Gamer X", "1350.00", []int{2}},
	{"PC Gamer Alfa", "1850.00", []int{2}},
	{"PC Gamer Tera", "1950.00", []int{2}},
	{"PC Gamer Y", "1700.00", []int{2}},
	{"PC Gamer Nitro", "1450.00", []int{2}},
	{"PC Gamer Card", "1850.00", []int{2}},
	{"PC Gamer Plus", "1350.00", []int{2}},
	{"PC Gamer Hera", "2250.00", []int{2}},
	{"PC Gamer Neo", "2200.00", []int{2}},
	{"PC Gamer Max", "2340.00", []int{2}},
	{"PC Gamer Turbo", "1280.00", []int{2}},
	{"PC Gamer Hot", "1450.00", []int{2}},
	{"PC Gamer Ez", "1750.00", []int{2}},
	{"PC Gamer Tr", "1650.00", []int{2}},
	{"PC Gamer Tx", "1680.00", []int{2}},
	{"PC Gamer Er", "1850.00", []int{2}},
	{"PC Gamer Min", "2250.00", []int{2}},
	{"PC Gamer Boo", "2350.00", []int{2}},
	{"PC Gamer Foo", "4170.00", []int{2}},
}

// Seed fills an empty catalog with demo categories and products. A catalog that already
// holds categories is left alone.
func Seed(ctx context.Context, gdb *gorm.DB, logger *logrus.Logger) error {
	var count int64
	if err := gdb.WithContext(ctx).Model(&domain.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect catalog before seeding: %w", err)
	}
	if count > 0 {
		logger.Infof("Seed skipped: catalog already holds %d categories", count)
		return nil
	}

	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := make([]domain.Category, len(seedCategories))
		for i, name := range seedCategories {
			categories[i] = domain.Category{Name: name}
		}
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		date := time.Date(2020, time.July, 14, 10, 0, 0, 0, time.UTC)
		for i, sp := range seedProducts {
			product := domain.Product{
				Name:        sp.name,
				Description: "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
				Date:        date.Add(time.Duration(i) * time.Hour),
				ImageURL:    fmt.Sprintf("https://img.example.com/products/%d-big.jpg", i+1),
				Price:       decimal.RequireFromString(sp.price),
			}
			for _, idx := range sp.categories {
				product.Categories = append(product.Categories, categories[idx])
			}
			if err := tx.Create(&product).Error; err != nil {
				return fmt.Errorf("failed to seed product %q: %w", sp.name, err)
			}
		}

		logger.Infof("Seeded %d categories and %d products", len(categories), len(seedProducts))
		return nil
	})
}
