package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/floradu88/astro-api-client/internal/ports/cache"
)

// entry значение кэша со сроком годности
type entry struct {
	value     string
	expiresAt time.Time // нулевое время - без TTL
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// ReportCache in-memory реализация cache.Cache. Используется когда
// Redis не настроен - например локально или в тестах.
type ReportCache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewReportCache создаёт новый in-memory кэш отчётов
func NewReportCache() cache.Cache {
	return &ReportCache{
		entries: make(map[string]entry),
	}
}

// Get получает значение по ключу; просроченные записи удаляются лениво
func (c *ReportCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	if e.expired(time.Now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", fmt.Errorf("key not found: %s", key)
	}
	return e.value, nil
}

// Set устанавливает значение с TTL (ttl <= 0 - без срока)
func (c *ReportCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: expiresAt}
	return nil
}

// Delete удаляет значение по ключу
func (c *ReportCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// Exists проверяет существование ключа
func (c *ReportCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()
	return exists && !e.expired(time.Now()), nil
}

// Close ничего не закрывает, нужен для соответствия интерфейсу
func (c *ReportCache) Close() error {
	return nil
}
