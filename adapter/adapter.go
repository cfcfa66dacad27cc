// Package adapter puts the legacy converter behind the convert.Service contract,
// so callers depend on the interface rather than the concrete converter.
// It adds no behaviour of its own.
package adapter

import (
	"context"
	"go-currency-adapter/convert"
	"go-currency-adapter/domain"
)

// Adapter delegates every call to the wrapped converter unchanged
type Adapter struct {
	legacy convert.Service
}

var _ convert.Service = (*Adapter)(nil)

// New wraps legacy
func New(legacy convert.Service) *Adapter {
	return &Adapter{legacy: legacy}
}

// Convert returns exactly what the wrapped converter returns, errors included.
func (a *Adapter) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Amount, error) {
	return a.legacy.Convert(ctx, amount, from, to)
}
