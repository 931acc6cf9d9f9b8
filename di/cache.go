package di

import (
	"hotie/config"
	"hotie/infras/otel"
	"hotie/infras/redis"
	"hotie/shared/cache"

	"github.com/rs/zerolog/log"
)

// ProvideCache builds the cache backend named by CACHE_DRIVER.
func ProvideCache(cfg *config.Config, ot otel.Otel) cache.Cache {
	switch cfg.Cache.Driver {
	case config.CacheDriverMemory:
		log.Info().Msg("Using in-process memory cache")

		return cache.NewMemoryCache(cfg, ot)
	case config.CacheDriverRedis:
		return cache.NewRedisCache(redis.New(cfg), ot)
	default:
		log.Warn().Str("driver", cfg.Cache.Driver).Msg("Unknown cache driver, using redis")

		return cache.NewRedisCache(redis.New(cfg), ot)
	}
}
