// Package redis connects to Redis with retries and exposes a health check.
//
// The client backs the capped per-session telemetry log (see
// telemetry.RedisSink). Redis is optional: Config.Enabled reports whether a
// REDIS_URL was configured.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	check := httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)}
//
// Errors wrap the go-redis cause with errors.Join under the package
// sentinels.
package redis
