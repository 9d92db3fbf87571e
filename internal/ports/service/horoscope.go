package service

import (
	"context"
	"encoding/json"

	astroApi "github.com/floradu88/astro-api-client/internal/adapters/secondary/astroApi"
	"github.com/floradu88/astro-api-client/internal/domain"
)

// IHoroscopeService интерфейс бизнес-логики расчёта гороскопов
type IHoroscopeService interface {
	// NatalHoroscope возвращает полную натальную карту
	NatalHoroscope(ctx context.Context, person *astroApi.BirthData) (*astroApi.WesternHoroscopeResponse, error)
	// PersonalityReport возвращает отчёт о личности (с кэшированием)
	PersonalityReport(ctx context.Context, person *astroApi.BirthData) (domain.Report, error)
	// SynastryReport возвращает синастрию пары (с кэшированием)
	SynastryReport(ctx context.Context, pair astroApi.PairBirthData) (domain.Report, error)
	// SignCompatibility возвращает совместимость знаков зодиака
	SignCompatibility(ctx context.Context, signs ...string) (json.RawMessage, error)
}
