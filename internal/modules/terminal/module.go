package terminal

import (
	historysvc "trade_gateway/internal/modules/history/service"
	"trade_gateway/internal/modules/terminal/service"

	"go.uber.org/fx"
)

// connectionProvider adapts *service.Client to the history module's
// ConnectionProvider port.
type connectionProvider struct {
	client *service.Client
}

func (p connectionProvider) Connection(accountID string) historysvc.Connection {
	return p.client.Connection(accountID)
}

func Module() fx.Option {
	return fx.Module("terminal",
		fx.Provide(
			service.NewClient,
		),
		fx.Provide(
			func(c *service.Client) historysvc.ConnectionProvider {
				return connectionProvider{client: c}
			},
		),
	)
}
