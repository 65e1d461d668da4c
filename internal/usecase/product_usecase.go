package usecase

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

var _ domain.ProductUseCase = (*productUseCase)(nil)

type productUseCase struct {
	tx  domain.Transactor
	log *logrus.Logger
}

func NewProductUseCase(tx domain.Transactor, logger *logrus.Logger) domain.ProductUseCase {
	return &productUseCase{
		tx:  tx,
		log: logger,
	}
}

func (uc *productUseCase) FindAllPaged(ctx context.Context, req domain.PageRequest) (domain.Page[domain.ProductDTO], error) {
	uc.log.Debugf("Use Case: Listing products (page %d, size %d)", req.Page, req.Size)

	var page domain.Page[domain.ProductDTO]
	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{ReadOnly: true}, func(repos domain.Repositories) error {
		products, total, err := repos.Products().FindAll(ctx, req)
		if err != nil {
			return err
		}
		page = domain.MapPage(domain.NewPage(products, req, total), toProductDTO)
		return nil
	})
	if err != nil {
		uc.log.Errorf("Use Case: Failed to list products: %v", err)
		return domain.Page[domain.ProductDTO]{}, fmt.Errorf("could not retrieve products: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d of %d products", page.NumberOfElements, page.TotalElements)
	return page, nil
}

func (uc *productUseCase) FindByID(ctx context.Context, id uint) (*domain.ProductDTO, error) {
	var dto domain.ProductDTO
	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{ReadOnly: true}, func(repos domain.Repositories) error {
		product, err := repos.Products().FindByID(ctx, id)
		if err != nil {
			return err
		}
		dto = toProductDTO(*product)
		return nil
	})
	if err != nil {
		uc.log.Warnf("Use Case: Failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return &dto, nil
}

func (uc *productUseCase) Insert(ctx context.Context, dto domain.ProductDTO) (*domain.ProductDTO, error) {
	uc.log.Infof("Use Case: Attempting to create product '%s'", dto.Name)

	var created domain.ProductDTO
	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{}, func(repos domain.Repositories) error {
		var entity domain.Product
		if err := copyProductDTOToEntity(ctx, repos.Categories(), dto, &entity); err != nil {
			return err
		}
		if err := repos.Products().Save(ctx, &entity); err != nil {
			return err
		}
		created = toProductDTO(entity)
		return nil
	})
	if err != nil {
		uc.log.Warnf("Use Case: Failed to create product '%s': %v", dto.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created with ID %d", created.Name, created.ID)
	return &created, nil
}

// Update replaces every field of the product, including its category set. Missing
// products and missing categories both fail with ErrNotFound.
func (uc *productUseCase) Update(ctx context.Context, id uint, dto domain.ProductDTO) (*domain.ProductDTO, error) {
	uc.log.Infof("Use Case: Attempting to update product ID %d", id)

	var updated domain.ProductDTO
	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{}, func(repos domain.Repositories) error {
		entity, err := repos.Products().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := copyProductDTOToEntity(ctx, repos.Categories(), dto, entity); err != nil {
			return err
		}
		if err := repos.Products().Save(ctx, entity); err != nil {
			return err
		}
		updated = toProductDTO(*entity)
		return nil
	})
	if err != nil {
		uc.log.Warnf("Use Case: Failed to update product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated for ID %d", id)
	return &updated, nil
}

func (uc *productUseCase) Delete(ctx context.Context, id uint) error {
	uc.log.Infof("Use Case: Attempting to delete product ID %d", id)

	err := uc.tx.WithinTransaction(ctx, domain.TxOptions{}, func(repos domain.Repositories) error {
		exists, err := repos.Products().ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
		}
		return repos.Products().DeleteByID(ctx, id)
	})
	if err != nil {
		uc.log.Warnf("Use Case: Failed to delete product ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Product deleted for ID %d", id)
	return nil
}
