package domain

import (
	"time"

	"github.com/google/uuid"
)

// Request запись аудита одного обращения к внешнему API
type Request struct {
	ID        uuid.UUID  `db:"id"`
	Kind      ReportKind `db:"kind"`
	Endpoint  string     `db:"endpoint"`
	Params    string     `db:"params"` // form-encoded параметры запроса
	CacheHit  bool       `db:"cache_hit"`
	CreatedAt time.Time  `db:"created_at"`
}

// NewRequest создаёт запись аудита для обращения к эндпоинту
func NewRequest(kind ReportKind, endpoint, params string, cacheHit bool) *Request {
	return &Request{
		ID:        uuid.New(),
		Kind:      kind,
		Endpoint:  endpoint,
		Params:    params,
		CacheHit:  cacheHit,
		CreatedAt: time.Now().UTC(),
	}
}
