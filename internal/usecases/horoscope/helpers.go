package horoscope

import (
	"context"
	"errors"
	"fmt"

	astroApi "github.com/floradu88/astro-api-client/internal/adapters/secondary/astroApi"
	"github.com/floradu88/astro-api-client/internal/domain"
	"github.com/google/uuid"
)

// fromCache пытается достать отчёт из кэша; промах - не ошибка
func (s *Service) fromCache(ctx context.Context, key string) (domain.Report, bool) {
	if s.Cache == nil {
		return nil, false
	}
	value, err := s.Cache.Get(ctx, key)
	if err != nil || value == "" {
		return nil, false
	}
	s.Log.Debug("report served from cache", "key", key)
	return domain.Report(value), true
}

// toCache кладёт отчёт в кэш; ошибка кэша не роняет запрос
func (s *Service) toCache(ctx context.Context, key string, report domain.Report) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, key, string(report), s.CacheTTL); err != nil {
		s.Log.Warn("failed to cache report", "key", key, "error", err)
	}
}

// audit фиксирует обращение в журнале; ошибка журнала не роняет запрос
func (s *Service) audit(ctx context.Context, kind domain.ReportKind, endpoint, params string, cacheHit bool) uuid.UUID {
	request := domain.NewRequest(kind, endpoint, params, cacheHit)
	if s.RequestRepo == nil {
		return request.ID
	}
	if err := s.RequestRepo.Create(ctx, request); err != nil {
		s.Log.Warn("failed to record request audit",
			"error", err,
			"endpoint", endpoint)
	}
	return request.ID
}

// publish отправляет событие об отчёте; отсутствие producer - не ошибка
func (s *Service) publish(ctx context.Context, requestID uuid.UUID, kind domain.ReportKind, endpoint string, report domain.Report) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.SendReportEvent(ctx, requestID, kind, endpoint, report); err != nil {
		s.Log.Warn("failed to publish report event",
			"error", err,
			"request_id", requestID,
			"endpoint", endpoint)
	}
}

// wrapClientError различает ошибки валидации, отказ внешнего API и
// остальное. Ошибки валидации и отказы API уже содержат всё нужное
// вызывающему и оборачиваются как бизнес-ошибки.
func (s *Service) wrapClientError(msg string, err error) error {
	var apiErr *astroApi.APIError
	if errors.As(err, &apiErr) {
		if apiErr.LicenseRestricted() {
			s.Log.Warn(msg, "error", err, "license_restricted", true)
		} else {
			s.Log.Warn(msg, "error", err)
		}
		return domain.WrapBusinessError(err)
	}

	switch {
	case errors.Is(err, astroApi.ErrNoBirthData),
		errors.Is(err, astroApi.ErrNoPrimaryPerson),
		errors.Is(err, astroApi.ErrNoSecondaryPerson),
		errors.Is(err, astroApi.ErrEmptyPathSegment),
		errors.Is(err, astroApi.ErrSignCount):
		return domain.WrapBusinessError(err)
	}

	s.Log.Error(msg, "error", err)
	return fmt.Errorf("%s: %w", msg, err)
}
