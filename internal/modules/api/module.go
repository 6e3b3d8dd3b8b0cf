package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	accsvc "trade_gateway/internal/modules/accounts/service"
	"trade_gateway/internal/modules/api/service"
	"trade_gateway/internal/modules/config"
	historysvc "trade_gateway/internal/modules/history/service"
	terminalsvc "trade_gateway/internal/modules/terminal/service"

	"github.com/bytedance/sonic"
	"go.uber.org/fx"
)

type Config struct {
	Addr string // e.g. ":8080"
}

func NewConfig(cfg *config.Config) Config {
	return Config{Addr: fmt.Sprintf("%s:%d", cfg.Service.Host, cfg.Service.PublicPort)}
}

func NewMux(state *service.State, handlers *service.Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		// liveness: the process is up
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		// readiness: the service can take traffic
		if !state.Ready() {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"ready":     state.Ready(),
			"uptimeSec": int64(state.Uptime().Seconds()),
			"lastRequestUnix": func() int64 {
				t := state.LastRequest()
				if t.IsZero() {
					return 0
				}
				return t.Unix()
			}(),
		}
		data, _ := sonic.Marshal(resp)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})

	handlers.Register(mux)

	return mux
}

func RunHTTP(lc fx.Lifecycle, cfg Config, mux *http.ServeMux, state *service.State) {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			go func() { _ = srv.Serve(ln) }()
			state.SetReady(true)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			state.SetReady(false)
			return srv.Shutdown(ctx)
		},
	})
}

func Module() fx.Option {
	return fx.Module("api",
		fx.Provide(
			service.NewState,
			NewConfig,
			NewMux,
			service.NewHandlers,
		),
		// Adapters: concrete services -> handler ports.
		fx.Provide(
			func(s *historysvc.Service) service.HistoryService { return s },
			func(r *accsvc.Registry) service.AccountRegistry { return r },
			func(c *terminalsvc.Client) service.Terminal { return c },
		),
		fx.Invoke(RunHTTP),
	)
}
