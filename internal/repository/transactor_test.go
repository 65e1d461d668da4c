package repository

import (
	"context"
	"errors"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/pkg/db/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countCategories(t *testing.T, tx domain.Transactor) int64 {
	t.Helper()
	var total int64
	err := tx.WithinTransaction(context.Background(), domain.TxOptions{ReadOnly: true}, func(repos domain.Repositories) error {
		var err error
		_, total, err = repos.Categories().FindAll(context.Background(), domain.PageRequest{Size: 1})
		return err
	})
	require.NoError(t, err)
	return total
}

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	tx := NewTransactor(dbtest.Open(t), dbtest.Logger())

	err := tx.WithinTransaction(context.Background(), domain.TxOptions{}, func(repos domain.Repositories) error {
		return repos.Categories().Save(context.Background(), &domain.Category{Name: "Books"})
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countCategories(t, tx))
}

func TestTransactor_RollsBackOnError(t *testing.T) {
	tx := NewTransactor(dbtest.Open(t), dbtest.Logger())
	boom := errors.New("boom")

	err := tx.WithinTransaction(context.Background(), domain.TxOptions{}, func(repos domain.Repositories) error {
		if err := repos.Categories().Save(context.Background(), &domain.Category{Name: "Books"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(0), countCategories(t, tx))
}

func TestTransactor_RollsBackOnPanic(t *testing.T) {
	tx := NewTransactor(dbtest.Open(t), dbtest.Logger())

	assert.Panics(t, func() {
		_ = tx.WithinTransaction(context.Background(), domain.TxOptions{}, func(repos domain.Repositories) error {
			_ = repos.Categories().Save(context.Background(), &domain.Category{Name: "Books"})
			panic("unexpected")
		})
	})
	assert.Equal(t, int64(0), countCategories(t, tx))
}
