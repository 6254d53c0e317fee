package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/api"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/cache"
	"marketplace/internal/infra/email"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/media"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/infra/qrcode"
	"marketplace/internal/infra/realtime"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		media.Module,
		email.Module,
		cache.Module,
		realtime.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBuyerRepository,
			postgres.NewSellerRepository,
			postgres.NewPublicationRepository,
			postgres.NewChatRepository,
			postgres.NewMessageRepository,
			postgres.NewNotificationRepository,
			postgres.NewOrderDetailRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			metrics.NewManager,
			newMetrics,
			newWebsocketServer,
		),
	)
}

// newMetrics exposes the prometheus manager to the usecases
func newMetrics(m *metrics.Manager) service.Metrics {
	return m
}

// newWebsocketServer lets the realtime handler attach clients to the hub
func newWebsocketServer(hub *realtime.Hub) handler.WebsocketServer {
	return hub
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewAccountService,
			impl.NewBuyerService,
			impl.NewPublicationService,
			impl.NewChatService,
			impl.NewPurchaseService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBuyerHandler,
			handler.NewPublicationHandler,
			handler.NewChatHandler,
			handler.NewPurchaseHandler,
			handler.NewNotificationHandler,
			handler.NewRealtimeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// migrate keeps the schema in sync when env.autoMigrate is set
func migrate(cfg *config.Config, db *gorm.DB, logger *slog.Logger) error {
	if !cfg.Env.AutoMigrate {
		return nil
	}

	logger.Info("Running schema auto-migration")

	return postgres.AutoMigrate(db)
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
