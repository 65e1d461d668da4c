package domain

import "context"

// Repositories gives access to the repositories bound to one transaction.
type Repositories interface {
	Categories() CategoryRepository
	Products() ProductRepository
}

type TxOptions struct {
	ReadOnly bool
}

// Transactor runs fn inside a single transaction. The transaction commits when fn returns
// nil and rolls back on any error or panic.
type Transactor interface {
	WithinTransaction(ctx context.Context, opts TxOptions, fn func(repos Repositories) error) error
}
