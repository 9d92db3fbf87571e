package horoscope

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	astroApi "github.com/floradu88/astro-api-client/internal/adapters/secondary/astroApi"
	"github.com/floradu88/astro-api-client/internal/domain"
)

// personKey детерминированный ключ кэша для данных одного человека
func personKey(b *astroApi.BirthData) string {
	return fmt.Sprintf("%d-%d-%d-%d:%d@%g,%g,%g",
		b.Year, b.Month, b.Day, b.Hour, b.Minute,
		b.Latitude, b.Longitude, b.Timezone)
}

// pairKey детерминированный ключ кэша для пары
func pairKey(pair astroApi.PairBirthData) string {
	orb := "-"
	if pair.Orb != nil {
		orb = fmt.Sprintf("%g", *pair.Orb)
	}
	return personKey(pair.Primary) + "|" + personKey(pair.Secondary) + "|" + orb
}

// NatalHoroscope возвращает полную натальную карту. Структурированный
// ответ не кэшируется - фиксируется только аудит обращения.
func (s *Service) NatalHoroscope(ctx context.Context, person *astroApi.BirthData) (*astroApi.WesternHoroscopeResponse, error) {
	resp, err := s.Client.WesternHoroscope(ctx, person)
	if err != nil {
		return nil, s.wrapClientError("natal horoscope failed", err)
	}

	s.audit(ctx, domain.ReportKindNatal, astroApi.WesternHoroscopeEndpoint, personKey(person), false)
	return resp, nil
}

// PersonalityReport возвращает отчёт о личности. Свежий отчёт кэшируется
// и публикуется как событие.
func (s *Service) PersonalityReport(ctx context.Context, person *astroApi.BirthData) (domain.Report, error) {
	if person == nil {
		return nil, domain.WrapBusinessError(astroApi.ErrNoBirthData)
	}

	key := "personality:" + personKey(person)
	if report, ok := s.fromCache(ctx, key); ok {
		s.audit(ctx, domain.ReportKindPersonality, astroApi.PersonalityReportEndpoint, personKey(person), true)
		return report, nil
	}

	raw, err := s.Client.PersonalityReport(ctx, person)
	if err != nil {
		return nil, s.wrapClientError("personality report failed", err)
	}

	report := domain.Report(raw)
	s.toCache(ctx, key, report)
	requestID := s.audit(ctx, domain.ReportKindPersonality, astroApi.PersonalityReportEndpoint, personKey(person), false)
	s.publish(ctx, requestID, domain.ReportKindPersonality, astroApi.PersonalityReportEndpoint, report)

	return report, nil
}

// SynastryReport возвращает синастрию пары с кэшированием
func (s *Service) SynastryReport(ctx context.Context, pair astroApi.PairBirthData) (domain.Report, error) {
	if pair.Primary == nil || pair.Secondary == nil {
		// валидация дублируется кодировщиком, но здесь она отсекает
		// обращение к кэшу с неполным ключом
		if pair.Primary == nil {
			return nil, domain.WrapBusinessError(astroApi.ErrNoPrimaryPerson)
		}
		return nil, domain.WrapBusinessError(astroApi.ErrNoSecondaryPerson)
	}

	key := "synastry:" + pairKey(pair)
	if report, ok := s.fromCache(ctx, key); ok {
		s.audit(ctx, domain.ReportKindSynastry, astroApi.SynastryHoroscopeEndpoint, pairKey(pair), true)
		return report, nil
	}

	raw, err := s.Client.SynastryHoroscope(ctx, pair)
	if err != nil {
		return nil, s.wrapClientError("synastry report failed", err)
	}

	report := domain.Report(raw)
	s.toCache(ctx, key, report)
	requestID := s.audit(ctx, domain.ReportKindSynastry, astroApi.SynastryHoroscopeEndpoint, pairKey(pair), false)
	s.publish(ctx, requestID, domain.ReportKindSynastry, astroApi.SynastryHoroscopeEndpoint, report)

	return report, nil
}

// SignCompatibility возвращает совместимость знаков зодиака с кэшированием
func (s *Service) SignCompatibility(ctx context.Context, signs ...string) (json.RawMessage, error) {
	key := "compatibility:" + strings.ToLower(strings.Join(signs, "/"))
	if report, ok := s.fromCache(ctx, key); ok {
		s.audit(ctx, domain.ReportKindCompatibility, astroApi.ZodiacCompatibilityEndpoint, key, true)
		return json.RawMessage(report), nil
	}

	raw, err := s.Client.ZodiacCompatibility(ctx, signs...)
	if err != nil {
		return nil, s.wrapClientError("sign compatibility failed", err)
	}

	report := domain.Report(raw)
	s.toCache(ctx, key, report)
	requestID := s.audit(ctx, domain.ReportKindCompatibility, astroApi.ZodiacCompatibilityEndpoint, key, false)
	s.publish(ctx, requestID, domain.ReportKindCompatibility, astroApi.ZodiacCompatibilityEndpoint, report)

	return raw, nil
}
