package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-adapter/convert"
	"go-currency-adapter/domain"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNoInput is returned when the input ends before a valid number is read
var ErrNoInput = errors.New("no valid number before end of input")

const invalidInput = "Invalid input. Please enter a valid number."

// Result of one completed session
type Result struct {
	From      domain.Currency
	To        domain.Currency
	Amount    domain.Amount
	Converted domain.Amount
}

// Session reads one amount, converts it and prints the outcome.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	service convert.Service

	from domain.Currency
	to   domain.Currency

	logger log.Logger
}

// Option configures a Session
type Option func(*Session)

// WithCurrencies sets the conversion direction. Defaults to USD -> EUR.
func WithCurrencies(from, to domain.Currency) Option {
	return func(s *Session) {
		s.from = from
		s.to = to
	}
}

// WithLogger sets the logger, a nop logger is used otherwise
func WithLogger(logger log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New constructs a Session reading from in and printing to out
func New(in io.Reader, out io.Writer, service convert.Service, opts ...Option) *Session {
	s := &Session{
		in:      bufio.NewReader(in),
		out:     out,
		service: service,
		from:    "USD",
		to:      "EUR",
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run prompts until a valid number is entered, converts it, prints both amounts and returns.
// Invalid input is reported and prompted for again. Conversion errors are not recovered.
func (s *Session) Run(ctx context.Context) (Result, error) {
	for {
		if _, err := fmt.Fprintf(s.out, "Enter a number in %v: \n", s.from); err != nil {
			return Result{}, fmt.Errorf("writing prompt: %w", err)
		}

		amount, err := s.next(ctx)
		if errors.Is(err, strconv.ErrSyntax) || errors.Is(err, strconv.ErrRange) {
			level.Debug(s.logger).Log("msg", "rejected input", "err", err)
			if _, err := fmt.Fprintln(s.out, invalidInput); err != nil {
				return Result{}, fmt.Errorf("writing diagnostic: %w", err)
			}
			continue
		}
		if err != nil {
			return Result{}, err
		}

		return s.convert(ctx, amount)
	}
}

func (s *Session) convert(ctx context.Context, amount domain.Amount) (Result, error) {
	converted, err := s.service.Convert(ctx, amount, s.from, s.to)
	if err != nil {
		return Result{}, fmt.Errorf("convert [%v -> %v]: %w", s.from, s.to, err)
	}

	_, err = fmt.Fprintf(s.out, "%v: %v\n%v: %v\n", s.from, FormatInput(amount), s.to, Format(converted))
	if err != nil {
		return Result{}, fmt.Errorf("writing result: %w", err)
	}

	return Result{From: s.from, To: s.to, Amount: amount, Converted: converted}, nil
}

// next reads lines until one holds a token, and parses its first token.
// Blank lines are skipped without prompting again. Lines have no length limit.
func (s *Session) next(ctx context.Context) (domain.Amount, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		if err != nil && line == "" {
			return 0, ErrNoInput
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		return parse(fields[0])
	}
}

// parse accepts plain decimal and exponent notation, independent of locale.
// Non-finite values are rejected.
func parse(token string) (domain.Amount, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: token, Err: strconv.ErrSyntax}
	}
	return domain.Amount(f), nil
}

// Format prints an amount with up to 15 significant digits, keeping a
// trailing ".0" on whole numbers (100 -> "100.0", 114.99999999999999 -> "115.0").
func Format(amount domain.Amount) string {
	return withPoint(strconv.FormatFloat(float64(amount), 'g', 15, 64))
}

// FormatInput prints an amount exactly as parsed, in the shortest form that reads back the same value.
func FormatInput(amount domain.Amount) string {
	f := float64(amount)
	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-4) {
		return withPoint(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return withPoint(strconv.FormatFloat(f, 'f', -1, 64))
}

func withPoint(s string) string {
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}
