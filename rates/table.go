package rates

import (
	"errors"
	"fmt"
	"go-currency-adapter/domain"
	"math"
	"sort"
)

// ErrBadRate is returned when a seed rate is not a positive finite number
var ErrBadRate = errors.New("bad rate value")

// Table an immutable lookup of conversion rates.
// A Table is safe for concurrent reads since nothing mutates it after New returns.
type Table struct {
	// rates maps a currency code to its rate
	rates domain.Rates
}

// New constructs a valid Table from seed. seed is copied, later changes to it are not observed.
func New(seed domain.Rates) (*Table, error) {
	rates := make(domain.Rates, len(seed))
	for code, rate := range seed {
		if code == "" {
			return nil, fmt.Errorf("empty currency code: %w", ErrBadRate)
		}
		f := float64(rate)
		if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("currency [%v] rate %v: %w", code, f, ErrBadRate)
		}
		rates[code] = rate
	}
	return &Table{rates: rates}, nil
}

// Default returns the fixed table of static rates.
func Default() *Table {
	table, err := New(domain.Rates{
		"USD": 0.80,
		"GBP": 1.0625,
		"EUR": 0.92,
		"JPY": 150.0,
	})
	if err != nil {
		panic(err) // seed is constant
	}
	return table
}

// Rate looks up the rate for code
func (t *Table) Rate(code domain.Currency) (domain.Rate, bool) {
	rate, ok := t.rates[code]
	return rate, ok
}

// Currencies lists the registered codes in sorted order
func (t *Table) Currencies() []domain.Currency {
	codes := make([]domain.Currency, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
