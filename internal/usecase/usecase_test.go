package usecase

import (
	"context"
	"errors"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/pkg/db/dbtest"

	"github.com/stretchr/testify/require"
)

func newTransactor(t *testing.T) domain.Transactor {
	t.Helper()
	return repository.NewTransactor(dbtest.Open(t), dbtest.Logger())
}

// failingTransactor never reaches the store.
type failingTransactor struct {
	err error
}

func (f failingTransactor) WithinTransaction(context.Context, domain.TxOptions, func(domain.Repositories) error) error {
	return f.err
}

var errStoreDown = errors.New("store unavailable")

func mustInsertCategory(t *testing.T, uc domain.CategoryUseCase, name string) *domain.CategoryDTO {
	t.Helper()
	created, err := uc.Insert(context.Background(), domain.CategoryDTO{Name: name})
	require.NoError(t, err)
	return created
}
