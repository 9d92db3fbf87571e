package repository

import (
	"context"

	"github.com/floradu88/astro-api-client/internal/domain"
)

// IRequestRepo интерфейс репозитория аудита обращений к внешнему API
type IRequestRepo interface {
	// Create сохраняет запись аудита
	Create(ctx context.Context, request *domain.Request) error
	// ListRecent возвращает последние записи аудита
	ListRecent(ctx context.Context, limit int) ([]domain.Request, error)
	// CountByKind возвращает количество обращений по типу отчёта
	CountByKind(ctx context.Context, kind domain.ReportKind) (int64, error)
}
