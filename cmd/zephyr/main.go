package main

import (
	"context"
	"log/slog"
	"os"

	"zephyr/config"
	"zephyr/internal/delivery"
	"zephyr/internal/delivery/http"
	"zephyr/internal/delivery/http/cookie"
	"zephyr/internal/delivery/http/middleware"
	"zephyr/internal/delivery/http/router/handler"
	"zephyr/internal/domain/service"
	"zephyr/internal/infra/auth"
	"zephyr/internal/infra/authevents"
	"zephyr/internal/infra/cache"
	"zephyr/internal/infra/identity/supabase"
	logs "zephyr/internal/infra/log"
	"zephyr/internal/infra/persistence/postgres"
	"zephyr/internal/infra/pubsub"
	"zephyr/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			supabase.NewIdentityProvider,
			auth.NewJWTService,
			cache.NewProfileMirror,
			// One hub feeds every session context of this process
			fx.Annotate(
				authevents.NewHub,
				fx.As(new(service.AuthEventSource)),
				fx.As(new(service.AuthEventSink)),
			),
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialValidator,
			impl.NewIdentifierResolver,
			impl.NewAuthService,
			impl.NewSessionContextFactory,
			impl.NewRouteGuard,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			cookie.NewJar,
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewPageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
