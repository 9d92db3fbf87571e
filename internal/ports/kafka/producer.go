package kafka

import (
	"context"

	"github.com/floradu88/astro-api-client/internal/domain"
	"github.com/google/uuid"
)

// IProducer интерфейс для публикации событий о сгенерированных отчётах
type IProducer interface {
	// SendReportEvent публикует событие с сырым JSON отчёта
	SendReportEvent(ctx context.Context, requestID uuid.UUID, kind domain.ReportKind, endpoint string, report domain.Report) error
	// Close закрывает producer
	Close() error
}
