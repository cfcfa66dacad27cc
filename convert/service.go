package convert

import (
	"context"
	"fmt"
	"go-currency-adapter/domain"
	"go-currency-adapter/rates"
)

// Service interface for converting an amount from one currency to another
type Service interface {
	Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Amount, error)
}

// service the legacy converter, backed by a static rate table
type service struct {
	// table to lookup rates. Never mutated.
	table *rates.Table
}

// NewService constructs a valid Service
func NewService(table *rates.Table) Service {
	return &service{
		table: table,
	}
}

// Convert computes amount * (rate(to) / rate(from)).
// A zero amount converts to zero without looking up either currency,
// so unknown codes only fail for a non-zero amount.
func (s *service) Convert(_ context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Amount, error) {
	if amount == 0 {
		return 0, nil
	}

	fromRate, ok := s.table.Rate(from)
	if !ok {
		return 0, fmt.Errorf("unknown 'from' currency [%v]: %w", from, domain.ErrInvalidConversion)
	}

	toRate, ok := s.table.Rate(to)
	if !ok {
		return 0, fmt.Errorf("unknown 'to' currency [%v]: %w", to, domain.ErrInvalidConversion)
	}

	return domain.Amount(float64(amount) * (float64(toRate) / float64(fromRate))), nil
}
