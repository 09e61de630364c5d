package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// InTx runs fn inside a transaction on base. The transaction commits when fn returns nil
// and rolls back on any error or panic.
func InTx(ctx context.Context, base *gorm.DB, fn func(dbc Context) error) error {
	return base.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Context{Ctx: ctx, Tx: tx})
	})
}
