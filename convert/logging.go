package convert

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-adapter/domain"
	"time"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (converted domain.Amount, err error) {
	defer func(begin time.Time) {
		logger := level.Debug(s.logger)
		if err != nil {
			logger = level.Error(s.logger)
		}
		logger.Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"converted_amount", converted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}
