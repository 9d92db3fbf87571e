package requestRepo

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/floradu88/astro-api-client/internal/domain"
	"github.com/floradu88/astro-api-client/internal/ports/persistence"
	ports "github.com/floradu88/astro-api-client/internal/ports/repository"
)

type requestColumns struct {
	TableName string
	ID        string
	Kind      string
	Endpoint  string
	Params    string
	CacheHit  string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns requestColumns
}

// New создаёт новый репозиторий аудита обращений к внешнему API
func New(db persistence.Persistence, log *slog.Logger) ports.IRequestRepo {
	cols := requestColumns{
		TableName: "requests",
		ID:        "id",
		Kind:      "kind",
		Endpoint:  "endpoint",
		Params:    "params",
		CacheHit:  "cache_hit",
		CreatedAt: "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.Kind,
		r.columns.Endpoint,
		r.columns.Params,
		r.columns.CacheHit,
		r.columns.CreatedAt)
}

// Create сохраняет запись аудита
func (r *Repository) Create(ctx context.Context, request *domain.Request) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.Exec(ctx, query,
		request.ID,
		request.Kind,
		request.Endpoint,
		request.Params,
		request.CacheHit,
		request.CreatedAt)
	if err != nil {
		r.Log.Error("failed to create request audit record",
			"error", err,
			"request_id", request.ID,
			"endpoint", request.Endpoint)
		return fmt.Errorf("failed to create request audit record: %w", err)
	}
	r.Log.Debug("request audit record created",
		"id", request.ID,
		"endpoint", request.Endpoint)
	return nil
}

// ListRecent возвращает последние записи аудита
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.Request, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC LIMIT $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.CreatedAt)

	var requests []domain.Request
	if err := r.db.Select(ctx, &requests, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent requests: %w", err)
	}
	return requests, nil
}

// CountByKind возвращает количество обращений по типу отчёта
func (r *Repository) CountByKind(ctx context.Context, kind domain.ReportKind) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		r.columns.TableName,
		r.columns.Kind)

	var count int64
	if err := r.db.Get(ctx, &count, query, kind); err != nil {
		return 0, fmt.Errorf("failed to count requests by kind: %w", err)
	}
	return count, nil
}
