package app

import (
	server "github.com/floradu88/astro-api-client/internal/adapters/primary/http"
	astroApi "github.com/floradu88/astro-api-client/internal/adapters/secondary/astroApi"
	kafkaAdapter "github.com/floradu88/astro-api-client/internal/adapters/secondary/kafka"
	"github.com/floradu88/astro-api-client/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/floradu88/astro-api-client/internal/adapters/secondary/storage/redis"
	"github.com/floradu88/astro-api-client/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres *pg.Config           `envconfig:"POSTGRES"`
	Redis    *redisAdapter.Config `envconfig:"REDIS"`
	Log      *logger.Config       `envconfig:"LOG"`
	Server   *server.Config       `envconfig:"APISERVER"`
	AstroAPI *astroApi.Config     `envconfig:"ASTRO_API"`
	Kafka    *kafkaAdapter.Config `envconfig:"KAFKA"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
