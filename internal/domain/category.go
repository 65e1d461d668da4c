package domain

import "context"

type CategoryRepository interface {
	FindAll(ctx context.Context, req PageRequest) ([]Category, int64, error)
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindAllByIDs(ctx context.Context, ids []uint) ([]Category, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, id uint) error
}

type CategoryUseCase interface {
	FindAllPaged(ctx context.Context, req PageRequest) (Page[CategoryDTO], error)
	FindByID(ctx context.Context, id uint) (*CategoryDTO, error)
	Insert(ctx context.Context, dto CategoryDTO) (*CategoryDTO, error)
	Update(ctx context.Context, id uint, dto CategoryDTO) (*CategoryDTO, error)
	Delete(ctx context.Context, id uint) error
}

// CategorySortProperties maps the sortable JSON properties of a category to their columns.
var CategorySortProperties = map[string]string{
	"id":        "id",
	"name":      "name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}
