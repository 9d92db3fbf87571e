package horoscope

import (
	"log/slog"
	"time"

	"github.com/floradu88/astro-api-client/internal/ports/cache"
	"github.com/floradu88/astro-api-client/internal/ports/kafka"
	"github.com/floradu88/astro-api-client/internal/ports/repository"
	"github.com/floradu88/astro-api-client/internal/ports/service"
)

const defaultCacheTTL = 12 * time.Hour

// Service бизнес-логика расчёта гороскопов поверх астро-API.
// Cache, RequestRepo и Producer опциональны: при nil соответствующий
// шаг просто пропускается.
type Service struct {
	Client      service.IAstroAPIClient
	Cache       cache.Cache
	RequestRepo repository.IRequestRepo
	Producer    kafka.IProducer
	CacheTTL    time.Duration
	Log         *slog.Logger
}

// New создаёт новый сервис расчёта гороскопов
func New(
	client service.IAstroAPIClient,
	reportCache cache.Cache,
	requestRepo repository.IRequestRepo,
	producer kafka.IProducer,
	log *slog.Logger,
) service.IHoroscopeService {
	return &Service{
		Client:      client,
		Cache:       reportCache,
		RequestRepo: requestRepo,
		Producer:    producer,
		CacheTTL:    defaultCacheTTL,
		Log:         log,
	}
}
