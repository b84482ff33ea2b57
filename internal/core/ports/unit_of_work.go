package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per lifecycle operation, so
// concurrent requests never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction around one lifecycle operation. An order and
// the pause it opens or closes are written through the same UnitOfWork and
// become visible together on Commit.
//
// Callers defer Rollback right after Begin and ignore its error; once Commit
// has succeeded there is nothing left to roll back.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the open transaction, or to
	// the plain connection when Begin has not been called.
	OrderRepository() OrderRepository
}
