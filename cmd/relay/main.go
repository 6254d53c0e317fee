package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	apihandler "marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/delivery/worker"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/domain/constants"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/realtime"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			subscribeNATS,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		realtime.NewHub,
		newBroadcaster,
		newWebsocketServer,
	)
}

func newBroadcaster(hub *realtime.Hub) handler.LocalBroadcaster {
	return hub
}

func newWebsocketServer(hub *realtime.Hub) apihandler.WebsocketServer {
	return hub
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewPushHandler,
		apihandler.NewRealtimeHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// subscribeNATS feeds the hub from NATS when that provider is selected; the google provider
// reaches this process through the /push endpoint instead.
func subscribeNATS(lc fx.Lifecycle, cfg *config.Config, hub *realtime.Hub, logger *slog.Logger) error {
	if cfg.Realtime == nil || cfg.Realtime.Provider != constants.RealtimeProviderNATS {
		return nil
	}

	conn, err := realtime.NewNATSConnection(cfg.Realtime.NATSURL, cfg.Env.ServiceName+"-relay", logger)
	if err != nil {
		return err
	}
	relay := realtime.NewNATSRelay(conn, cfg.Realtime.SubjectPrefix, hub, logger)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return relay.Start()
		},
		OnStop: func(context.Context) error {
			return relay.Stop()
		},
	})

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					os.Exit(1)
				}
			}
		}()
	}
}
