package accounts

import (
	"trade_gateway/internal/modules/accounts/service"
	"trade_gateway/internal/modules/accounts/service/pg"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("accounts",
		fx.Provide(
			pg.NewAccounts, // *pg.Accounts
		),
		fx.Provide(
			func(s *pg.Accounts) service.Store {
				return s
			},
		),
		fx.Provide(
			service.NewRegistry,
		),
	)
}
