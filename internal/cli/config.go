package cli

import (
	"github.com/dmitrymomot/sessiontag/pkg/config"
	"github.com/dmitrymomot/sessiontag/pkg/cookie"
	"github.com/dmitrymomot/sessiontag/pkg/httpserver"
	"github.com/dmitrymomot/sessiontag/pkg/identity"
	"github.com/dmitrymomot/sessiontag/pkg/logger"
	"github.com/dmitrymomot/sessiontag/pkg/redis"
	"github.com/dmitrymomot/sessiontag/pkg/telemetry"
)

// appConfig groups the configuration of every component started by serve.
type appConfig struct {
	Logger    logger.Config
	HTTP      httpserver.Config
	Identity  identity.Config
	Cookie    cookie.Config
	Redis     redis.Config
	Telemetry telemetry.Config
}

func loadConfig(envFiles []string) (appConfig, error) {
	var cfg appConfig

	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return cfg, err
		}
	}

	for _, load := range []func() error{
		func() error { return config.Load(&cfg.Logger) },
		func() error { return config.Load(&cfg.HTTP) },
		func() error { return config.Load(&cfg.Identity) },
		func() error { return config.Load(&cfg.Cookie) },
		func() error { return config.Load(&cfg.Redis) },
		func() error { return config.Load(&cfg.Telemetry) },
	} {
		if err := load(); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}
