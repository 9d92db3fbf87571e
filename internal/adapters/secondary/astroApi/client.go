package astroApi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Client - клиент для работы с астрологическим API.
// Отправляет form-encoded POST запросы с Basic-аутентификацией и
// разбирает JSON ответы. Не хранит состояния между вызовами, безопасен
// для конкурентного использования.
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент для работы с астро-API
func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		Log: log,
	}
}

// buildURL собирает полный URL из BaseURL, ApiVersion и endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

// setHeaders устанавливает стандартные заголовки для запросов к API
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.UserID, c.cfg.ApiKey)
	if c.cfg.Language != "" {
		req.Header.Set("Accept-Language", c.cfg.Language)
	}
}

// errorEnvelope конверт ошибки, который сервис иногда кладёт в 2xx ответ
type errorEnvelope struct {
	Status *bool  `json:"status"`
	Msg    string `json:"msg"`
	Error  string `json:"error"`
}

// post выполняет запрос к эндпоинту и возвращает сырое тело ответа.
// Не-2xx статус и конверт status:false отдаются как *APIError с
// нетронутым телом - причину интерпретирует вызывающий.
func (c *Client) post(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(endpoint), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	rawJSON := string(body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Ошибка внешнего API - Debug
		c.Log.Debug("astrology API returned non-2xx status",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(rawJSON, 200),
		)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: rawJSON}
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Status != nil && !*envelope.Status {
			c.Log.Debug("astrology API returned error envelope",
				"endpoint", endpoint,
				"msg", envelope.Msg,
				"body_preview", truncateString(rawJSON, 200),
			)
			return nil, &APIError{StatusCode: resp.StatusCode, Body: rawJSON}
		}
	}

	return body, nil
}

// postJSON выполняет запрос и разбирает ответ в указанную структуру
func (c *Client) postJSON(ctx context.Context, endpoint string, form url.Values, out any) error {
	body, err := c.post(ctx, endpoint, form)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.Log.Debug("failed to unmarshal astrology API response",
			"endpoint", endpoint,
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("astrology API unmarshal failed [endpoint=%s]: %w", endpoint, err)
	}
	return nil
}

// postSingle общий путь одиночных эндпоинтов
func (c *Client) postSingle(ctx context.Context, endpoint string, person *BirthData) (json.RawMessage, error) {
	form, err := singleForm(person)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, endpoint, form)
}

// postTransit общий путь транзитных эндпоинтов
func (c *Client) postTransit(ctx context.Context, endpoint string, transit *TransitData) (json.RawMessage, error) {
	form, err := transitForm(transit)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, endpoint, form)
}

// postPair общий путь парных эндпоинтов. Формат тела выбирается по
// имени эндпоинта (pairBodyFormat), path может содержать дополнительные
// сегменты после имени.
func (c *Client) postPair(ctx context.Context, endpoint, fullPath string, pair PairBirthData) (json.RawMessage, error) {
	form, err := pairForm(pairBodyFormat(endpoint), pair)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, fullPath, form)
}

// --- Одиночные эндпоинты ---

// WesternHoroscope рассчитывает полную натальную карту: планеты, дома, аспекты
func (c *Client) WesternHoroscope(ctx context.Context, person *BirthData) (*WesternHoroscopeResponse, error) {
	form, err := singleForm(person)
	if err != nil {
		return nil, err
	}
	var resp WesternHoroscopeResponse
	if err := c.postJSON(ctx, WesternHoroscopeEndpoint, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Planets возвращает тропические позиции планет
func (c *Client) Planets(ctx context.Context, person *BirthData) ([]Planet, error) {
	form, err := singleForm(person)
	if err != nil {
		return nil, err
	}
	var planets []Planet
	if err := c.postJSON(ctx, PlanetsEndpoint, form, &planets); err != nil {
		return nil, err
	}
	return planets, nil
}

// HouseCusps возвращает куспиды домов, асцендент и MC
func (c *Client) HouseCusps(ctx context.Context, person *BirthData) (*HouseCuspsResponse, error) {
	form, err := singleForm(person)
	if err != nil {
		return nil, err
	}
	var resp HouseCuspsResponse
	if err := c.postJSON(ctx, HouseCuspsEndpoint, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NatalWheelChart возвращает URL сгенерированного колеса натальной карты
func (c *Client) NatalWheelChart(ctx context.Context, person *BirthData) (*ChartURLResponse, error) {
	form, err := singleForm(person)
	if err != nil {
		return nil, err
	}
	var resp ChartURLResponse
	if err := c.postJSON(ctx, NatalWheelChartEndpoint, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PersonalityReport возвращает текстовый отчёт о личности
func (c *Client) PersonalityReport(ctx context.Context, person *BirthData) (json.RawMessage, error) {
	return c.postSingle(ctx, PersonalityReportEndpoint, person)
}

// RomanticPersonalityReport возвращает отчёт о романтической стороне личности
func (c *Client) RomanticPersonalityReport(ctx context.Context, person *BirthData) (json.RawMessage, error) {
	return c.postSingle(ctx, RomanticPersonalityReportEndpoint, person)
}

// LifeForecastReport возвращает прогноз жизненных периодов
func (c *Client) LifeForecastReport(ctx context.Context, person *BirthData) (json.RawMessage, error) {
	return c.postSingle(ctx, LifeForecastReportEndpoint, person)
}

// MoonPhaseReport возвращает отчёт о фазе Луны на момент рождения
func (c *Client) MoonPhaseReport(ctx context.Context, person *BirthData) (json.RawMessage, error) {
	return c.postSingle(ctx, MoonPhaseReportEndpoint, person)
}

// SolarReturnDetails возвращает детали соляра
func (c *Client) SolarReturnDetails(ctx context.Context, person *BirthData) (json.RawMessage, error) {
	return c.postSingle(ctx, SolarReturnDetailsEndpoint, person)
}

// --- Транзитные эндпоинты ---

// DailyTransits возвращает дневные транзиты к натальной карте
func (c *Client) DailyTransits(ctx context.Context, transit *TransitData) (json.RawMessage, error) {
	return c.postTransit(ctx, DailyTransitsEndpoint, transit)
}

// WeeklyTransits возвращает недельные транзиты
func (c *Client) WeeklyTransits(ctx context.Context, transit *TransitData) (json.RawMessage, error) {
	return c.postTransit(ctx, WeeklyTransitsEndpoint, transit)
}

// MonthlyTransits возвращает месячные транзиты
func (c *Client) MonthlyTransits(ctx context.Context, transit *TransitData) (json.RawMessage, error) {
	return c.postTransit(ctx, MonthlyTransitsEndpoint, transit)
}

// --- Парные эндпоинты (гибридный формат) ---

// GeneralAscendantReport возвращает общий отчёт по асценденту пары
func (c *Client) GeneralAscendantReport(ctx context.Context, pair PairBirthData) (json.RawMessage, error) {
	return c.postPair(ctx, GeneralAscendantReportEndpoint, GeneralAscendantReportEndpoint+"/tropical", pair)
}

// GeneralSignReport возвращает общий отчёт по положению планеты в знаке
func (c *Client) GeneralSignReport(ctx context.Context, pair PairBirthData, planet string) (json.RawMessage, error) {
	segment, err := pathSegment(planet)
	if err != nil {
		return nil, err
	}
	return c.postPair(ctx, GeneralSignReportEndpoint, GeneralSignReportEndpoint+"/tropical/"+segment, pair)
}

// GeneralHouseReport возвращает общий отчёт по положению планеты в доме
func (c *Client) GeneralHouseReport(ctx context.Context, pair PairBirthData, planet string) (json.RawMessage, error) {
	segment, err := pathSegment(planet)
	if err != nil {
		return nil, err
	}
	return c.postPair(ctx, GeneralHouseReportEndpoint, GeneralHouseReportEndpoint+"/tropical/"+segment, pair)
}

// --- Парные эндпоинты (композитный формат) ---

// SynastryHoroscope рассчитывает синастрию двух карт
func (c *Client) SynastryHoroscope(ctx context.Context, pair PairBirthData) (json.RawMessage, error) {
	return c.postPair(ctx, SynastryHoroscopeEndpoint, SynastryHoroscopeEndpoint, pair)
}

// CompositeHoroscope рассчитывает композитную карту пары
func (c *Client) CompositeHoroscope(ctx context.Context, pair PairBirthData) (json.RawMessage, error) {
	return c.postPair(ctx, CompositeHoroscopeEndpoint, CompositeHoroscopeEndpoint, pair)
}

// MatchPercentage возвращает процент совместимости пары
func (c *Client) MatchPercentage(ctx context.Context, pair PairBirthData) (*MatchPercentageResponse, error) {
	form, err := pairForm(pairBodyFormat(MatchPercentageEndpoint), pair)
	if err != nil {
		return nil, err
	}
	var resp MatchPercentageResponse
	if err := c.postJSON(ctx, MatchPercentageEndpoint, form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoveCompatibilityReport возвращает отчёт о любовной совместимости
func (c *Client) LoveCompatibilityReport(ctx context.Context, pair PairBirthData) (json.RawMessage, error) {
	return c.postPair(ctx, LoveCompatibilityReportEndpoint, LoveCompatibilityReportEndpoint, pair)
}

// KarmaDestinyReport возвращает кармический отчёт пары
func (c *Client) KarmaDestinyReport(ctx context.Context, pair PairBirthData) (json.RawMessage, error) {
	return c.postPair(ctx, KarmaDestinyReportEndpoint, KarmaDestinyReportEndpoint, pair)
}

// FriendshipReport возвращает отчёт о дружеской совместимости
func (c *Client) FriendshipReport(ctx context.Context, pair PairBirthData) (json.RawMessage, error) {
	return c.postPair(ctx, FriendshipReportEndpoint, FriendshipReportEndpoint, pair)
}

// RomanticForecastReport возвращает романтический прогноз пары
func (c *Client) RomanticForecastReport(ctx context.Context, pair PairBirthData) (json.RawMessage, error) {
	return c.postPair(ctx, RomanticForecastReportEndpoint, RomanticForecastReportEndpoint, pair)
}

// PartnerReport возвращает отчёт о партнёре
func (c *Client) PartnerReport(ctx context.Context, pair PairBirthData) (json.RawMessage, error) {
	return c.postPair(ctx, PartnerReportEndpoint, PartnerReportEndpoint, pair)
}

// --- Эндпоинты по знакам зодиака ---

// ZodiacCompatibility возвращает совместимость 2-4 знаков зодиака.
// Все данные передаются сегментами пути, тело запроса пустое.
func (c *Client) ZodiacCompatibility(ctx context.Context, signs ...string) (json.RawMessage, error) {
	fullPath, err := signsPath(signs)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, fullPath, url.Values{})
}

// DailySunSignPrediction возвращает дневной прогноз по солнечному знаку
func (c *Client) DailySunSignPrediction(ctx context.Context, sign string) (json.RawMessage, error) {
	segment, err := pathSegment(sign)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, DailySunSignPredictionEndpoint+"/"+segment, url.Values{})
}

// NextDaySunSignPrediction возвращает прогноз на завтра
func (c *Client) NextDaySunSignPrediction(ctx context.Context, sign string) (json.RawMessage, error) {
	segment, err := pathSegment(sign)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, NextDaySunSignPredictionEndpoint+"/"+segment, url.Values{})
}

// PreviousDaySunSignPrediction возвращает прогноз на вчера
func (c *Client) PreviousDaySunSignPrediction(ctx context.Context, sign string) (json.RawMessage, error) {
	segment, err := pathSegment(sign)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, PreviousDaySunSignPredictionEndpoint+"/"+segment, url.Values{})
}

// --- Таро ---

// TarotPredictions возвращает таро-предсказание по трём баллам
func (c *Client) TarotPredictions(ctx context.Context, scores TarotScores) (json.RawMessage, error) {
	return c.post(ctx, TarotPredictionsEndpoint, tarotForm(scores))
}
