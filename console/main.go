package main

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-adapter/adapter"
	"go-currency-adapter/config"
	"go-currency-adapter/convert"
	"go-currency-adapter/prompt"
	"go-currency-adapter/rates"
	"io"
	"os"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load(".env")
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, allow(cfg.LogLevel))

	err = run(context.Background(), os.Stdin, os.Stdout, logger)
	os.Stdin.Close()
	if err != nil {
		level.Error(logger).Log("msg", "conversion failed", "err", err)
		os.Exit(1)
	}
}

// run wires the legacy converter behind the adapter and runs one prompt session.
// The console always converts USD to EUR; opts exist for tests.
func run(ctx context.Context, in io.Reader, out io.Writer, logger log.Logger, opts ...prompt.Option) error {
	table := rates.Default()
	level.Debug(logger).Log("msg", "rate table ready", "currencies", len(table.Currencies()))

	var legacy convert.Service
	legacy = convert.NewService(table)
	legacy = convert.NewLoggingService(log.With(logger, "component", "legacy_converter"), legacy)

	converter := adapter.New(legacy)

	opts = append([]prompt.Option{prompt.WithLogger(log.With(logger, "component", "prompt"))}, opts...)
	session := prompt.New(in, out, converter, opts...)
	result, err := session.Run(ctx)
	if err != nil {
		return err
	}

	level.Info(logger).Log("msg", "converted", "from", result.From, "to", result.To, "amount", result.Amount, "converted_amount", result.Converted)
	return nil
}

func allow(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "info":
		return level.AllowInfo()
	case "warn":
		return level.AllowWarn()
	case "none":
		return level.AllowNone()
	default:
		return level.AllowError()
	}
}
