package domain

import "errors"

// Currency a currency code, e.g. "USD"
type Currency string

// Amount a monetary amount... which should be a float...
type Amount float64

// Rate a conversion factor relative to an implicit base currency.
// Only ratios between two rates carry meaning.
type Rate float64

// Rates maps currency codes to their rate
type Rates map[Currency]Rate

// ErrInvalidConversion is returned when a conversion names a currency with no known rate
var ErrInvalidConversion = errors.New("invalid conversion")
