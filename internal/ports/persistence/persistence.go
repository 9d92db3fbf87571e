package persistence

import "context"

// Persistence интерфейс слоя хранения. Реализуется pg-адаптером,
// репозитории не знают о конкретной СУБД.
type Persistence interface {
	// Get выполняет запрос и сканирует результат в структуру (одна запись)
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	// Select выполняет запрос и сканирует результаты в слайс структур
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	// Exec выполняет запрос без возврата данных (INSERT, UPDATE, DELETE)
	Exec(ctx context.Context, query string, args ...interface{}) error
	// NamedExec выполняет именованный запрос (использует struct tags)
	NamedExec(ctx context.Context, query string, arg interface{}) error
	// Close закрывает подключение к базе данных
	Close() error
}
