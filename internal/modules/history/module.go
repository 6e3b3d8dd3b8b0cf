package history

import (
	"trade_gateway/internal/modules/history/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("history",
		fx.Provide(
			service.New, // func(*config.Config, service.ConnectionProvider) *service.Service
		),
	)
}
