package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"size:255;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`
}

func (Category) TableName() string {
	return "tb_category"
}

// Product owns its rows in tb_product_category but never the categories themselves.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Date        time.Time
	ImageURL    string          `gorm:"column:img_url;size:512"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Categories  []Category      `gorm:"many2many:tb_product_category;joinForeignKey:ProductID;joinReferences:CategoryID"`
}

func (Product) TableName() string {
	return "tb_product"
}
