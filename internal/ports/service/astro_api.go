package service

import (
	"context"
	"encoding/json"

	astroApi "github.com/floradu88/astro-api-client/internal/adapters/secondary/astroApi"
)

// IAstroAPIClient часть клиента астро-API, которую использует бизнес-логика.
// Выделен в порт ради подмены в тестах.
type IAstroAPIClient interface {
	WesternHoroscope(ctx context.Context, person *astroApi.BirthData) (*astroApi.WesternHoroscopeResponse, error)
	PersonalityReport(ctx context.Context, person *astroApi.BirthData) (json.RawMessage, error)
	SynastryHoroscope(ctx context.Context, pair astroApi.PairBirthData) (json.RawMessage, error)
	ZodiacCompatibility(ctx context.Context, signs ...string) (json.RawMessage, error)
}
