package domain

import "context"

type ProductRepository interface {
	FindAll(ctx context.Context, req PageRequest) ([]Product, int64, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, id uint) error
}

type ProductUseCase interface {
	FindAllPaged(ctx context.Context, req PageRequest) (Page[ProductDTO], error)
	FindByID(ctx context.Context, id uint) (*ProductDTO, error)
	Insert(ctx context.Context, dto ProductDTO) (*ProductDTO, error)
	Update(ctx context.Context, id uint, dto ProductDTO) (*ProductDTO, error)
	Delete(ctx context.Context, id uint) error
}

// ProductSortProperties maps the sortable JSON properties of a product to their columns.
var ProductSortProperties = map[string]string{
	"id":    "id",
	"name":  "name",
	"date":  "date",
	"price": "price",
}
