package astroApi

import (
	"errors"
	"fmt"
	"net/http"
)

// Ошибки валидации входных данных. Возникают до любого сетевого вызова
// и исправляются на стороне вызывающего.
var (
	ErrNoBirthData       = errors.New("birth data is required")
	ErrNoPrimaryPerson   = errors.New("primary person birth data is required")
	ErrNoSecondaryPerson = errors.New("secondary person birth data is required")
	ErrEmptyPathSegment  = errors.New("path segment must not be empty")
	ErrSignCount         = errors.New("compatibility expects from 2 to 4 zodiac signs")
)

// APIError представляет отказ удалённого сервиса: HTTP статус и
// нетронутое тело ответа. Клиент не интерпретирует причину и не
// повторяет запрос - тело отдаётся вызывающему как есть.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.LicenseRestricted() {
		return fmt.Sprintf("astrology API error [status=%d]: endpoint is not available for the current license tier: %s",
			e.StatusCode, truncateString(e.Body, 200))
	}
	return fmt.Sprintf("astrology API error [status=%d]: %s", e.StatusCode, truncateString(e.Body, 500))
}

// LicenseRestricted сообщает, что эндпоинт недоступен на текущем тарифе.
// Сервис отвечает 405 на эндпоинты вне подписки.
func (e *APIError) LicenseRestricted() bool {
	return e.StatusCode == http.StatusMethodNotAllowed
}

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
