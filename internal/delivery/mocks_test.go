package delivery

import (
	"context"

	"catalog_service/internal/domain"
)

type MockCategoryUseCase struct {
	Page      domain.Page[domain.CategoryDTO]
	Category  *domain.CategoryDTO
	Err       error
	lastID    uint
	lastDTO   domain.CategoryDTO
	lastPage  domain.PageRequest
	callCount int
}

func (m *MockCategoryUseCase) FindAllPaged(_ context.Context, req domain.PageRequest) (domain.Page[domain.CategoryDTO], error) {
	m.callCount++
	m.lastPage = req
	return m.Page, m.Err
}

func (m *MockCategoryUseCase) FindByID(_ context.Context, id uint) (*domain.CategoryDTO, error) {
	m.callCount++
	m.lastID = id
	return m.Category, m.Err
}

func (m *MockCategoryUseCase) Insert(_ context.Context, dto domain.CategoryDTO) (*domain.CategoryDTO, error) {
	m.callCount++
	m.lastDTO = dto
	return m.Category, m.Err
}

func (m *MockCategoryUseCase) Update(_ context.Context, id uint, dto domain.CategoryDTO) (*domain.CategoryDTO, error) {
	m.callCount++
	m.lastID = id
	m.lastDTO = dto
	return m.Category, m.Err
}

func (m *MockCategoryUseCase) Delete(_ context.Context, id uint) error {
	m.callCount++
	m.lastID = id
	return m.Err
}

type MockProductUseCase struct {
	Page      domain.Page[domain.ProductDTO]
	Product   *domain.ProductDTO
	Err       error
	lastID    uint
	lastDTO   domain.ProductDTO
	lastPage  domain.PageRequest
	callCount int
}

func (m *MockProductUseCase) FindAllPaged(_ context.Context, req domain.PageRequest) (domain.Page[domain.ProductDTO], error) {
	m.callCount++
	m.lastPage = req
	return m.Page, m.Err
}

func (m *MockProductUseCase) FindByID(_ context.Context, id uint) (*domain.ProductDTO, error) {
	m.callCount++
	m.lastID = id
	return m.Product, m.Err
}

func (m *MockProductUseCase) Insert(_ context.Context, dto domain.ProductDTO) (*domain.ProductDTO, error) {
	m.callCount++
	m.lastDTO = dto
	return m.Product, m.Err
}

func (m *MockProductUseCase) Update(_ context.Context, id uint, dto domain.ProductDTO) (*domain.ProductDTO, error) {
	m.callCount++
	m.lastID = id
	m.lastDTO = dto
	return m.Product, m.Err
}

func (m *MockProductUseCase) Delete(_ context.Context, id uint) error {
	m.callCount++
	m.lastID = id
	return m.Err
}

type MockPinger struct {
	Err error
}

func (m MockPinger) PingContext(context.Context) error {
	return m.Err
}
