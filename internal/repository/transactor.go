package repository

import (
	"context"
	"database/sql"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormTransactor struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewTransactor(db *gorm.DB, logger *logrus.Logger) domain.Transactor {
	return &gormTransactor{
		db:  db,
		log: logger,
	}
}

type txRepositories struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
}

func (r *txRepositories) Categories() domain.CategoryRepository { return r.categories }
func (r *txRepositories) Products() domain.ProductRepository     { return r.products }

func (t *gormTransactor) WithinTransaction(ctx context.Context, opts domain.TxOptions, fn func(repos domain.Repositories) error) (err error) {
	tx := t.db.WithContext(ctx).Begin(&sql.TxOptions{ReadOnly: opts.ReadOnly})
	if tx.Error != nil {
		t.log.Errorf("Failed to begin transaction: %v", tx.Error)
		return fmt.Errorf("could not start transaction: %w", tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			t.log.Error("Recovered from panic, rolling back transaction")
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			t.log.Debugf("Rolling back transaction due to error: %v", err)
			if rbErr := tx.Rollback().Error; rbErr != nil {
				t.log.Errorf("Failed to rollback transaction: %v", rbErr)
			}
		} else {
			if cErr := tx.Commit().Error; cErr != nil {
				t.log.Errorf("Failed to commit transaction: %v", cErr)
				err = fmt.Errorf("failed to commit transaction: %w", translateError(cErr))
			}
		}
	}()

	err = fn(&txRepositories{
		categories: NewCategoryRepository(tx, t.log),
		products:   NewProductRepository(tx, t.log),
	})
	return err
}
