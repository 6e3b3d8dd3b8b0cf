package main

import (
	"context"
	"log"

	"trade_gateway/internal/modules/accounts"
	"trade_gateway/internal/modules/api"
	"trade_gateway/internal/modules/config"
	"trade_gateway/internal/modules/history"
	"trade_gateway/internal/modules/postgres"
	"trade_gateway/internal/modules/terminal"
	"trade_gateway/pkg/logger"
	"trade_gateway/pkg/tracing"

	"go.uber.org/fx"
)

const serviceName = "trade_gateway"

func main() {
	logger.SetServiceName(serviceName)
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
		),
		config.Module(),
		postgres.Module(),
		accounts.Module(),
		terminal.Module(),
		history.Module(),
		api.Module(),
		fx.Invoke(registerTracer),
	)
	app.Run()
}

func registerTracer(lc fx.Lifecycle, cfg *config.Config) error {
	tracing.SetServiceName(serviceName)
	_, closeTracer, err := tracing.InitTracer(tracing.Config{
		Host: cfg.Jaeger.Host,
		Port: cfg.Jaeger.Port,
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			closeTracer()
			return nil
		},
	})
	return nil
}
