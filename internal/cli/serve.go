package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sessiontag/internal/server"
	"github.com/dmitrymomot/sessiontag/pkg/cookie"
	"github.com/dmitrymomot/sessiontag/pkg/httpserver"
	"github.com/dmitrymomot/sessiontag/pkg/identity"
	"github.com/dmitrymomot/sessiontag/pkg/logger"
	"github.com/dmitrymomot/sessiontag/pkg/redis"
	"github.com/dmitrymomot/sessiontag/pkg/requestid"
	"github.com/dmitrymomot/sessiontag/pkg/telemetry"
)

func newServeCommand() *cobra.Command {
	var (
		envFiles []string
		addr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Run the HTTP service.

Routes:
  GET|POST /identity    resolve the session identity (sets sid/sfp cookies)
  GET|POST /telemetry   session telemetry reports
  GET      /healthz     liveness and readiness
  GET      /session.js  browser snippet

Configuration is read from the environment and an optional .env file:
  HTTP_ADDR, SESSION_ID_NAME, SESSION_FP_NAME, SESSION_COOKIE_SAME_SITE,
  SESSION_TRUST_FORWARDED_PROTO, REDIS_URL, TELEMETRY_ENABLED, LOG_LEVEL, ...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(envFiles)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "load variables from these .env files first")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	return cmd
}

func runServer(ctx context.Context, cfg appConfig) error {
	log := logger.NewFromConfig(cfg.Logger,
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			identity.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	var (
		checks      []httpserver.Check
		redisClient goredis.Cmdable
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		redisClient = client
		checks = append(checks, httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)})
		log.InfoContext(ctx, "redis connected")
	}

	resolver := identity.NewFromConfig(cfg.Identity,
		identity.WithLogger(log),
		identity.WithCookieManager(cookie.NewFromConfig(cfg.Cookie)),
	)

	handler := server.Router(server.RouterOptions{
		Resolver:         resolver,
		Logger:           log,
		Telemetry:        telemetry.NewSinkFromConfig(cfg.Telemetry, log, redisClient),
		TelemetryMaxBody: cfg.Telemetry.MaxBody,
		HealthChecks:     checks,
		HealthTimeout:    cfg.HTTP.HealthTimeout,
	})

	idName, fpName := resolver.EntryNames()
	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(ctx context.Context, addr string) {
			log.InfoContext(ctx, "serving session identity",
				slog.String("addr", addr),
				slog.String("identifier_entry", idName),
				slog.String("fingerprint_entry", fpName),
			)
		}),
	)

	return srv.Run(ctx, handler)
}
