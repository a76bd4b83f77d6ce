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

func New(ctx context.Context) Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return Context{Ctx: ctx}
}

// DB returns the transaction when one is open, otherwise base, bound to Ctx.
func (c Context) DB(base *gorm.DB) *gorm.DB {
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if c.Tx != nil {
		return c.Tx.WithContext(ctx)
	}
	return base.WithContext(ctx)
}

// Transaction runs fn inside a single transaction bound to ctx.
func Transaction(ctx context.Context, db *gorm.DB, fn func(dbc Context) error) error {
	dbc := New(ctx)
	return db.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		dbc.Tx = tx
		return fn(dbc)
	})
}
