package astroApi

import "strings"

// Эндпоинты API. Пути относительны версии API (v1).
const (
	// одиночные: тело формата singleForm
	WesternHoroscopeEndpoint          = "western_horoscope"
	PlanetsEndpoint                   = "planets/tropical"
	HouseCuspsEndpoint                = "house_cusps/tropical"
	NatalWheelChartEndpoint           = "natal_wheel_chart"
	PersonalityReportEndpoint         = "personality_report/tropical"
	RomanticPersonalityReportEndpoint = "romantic_personality_report/tropical"
	LifeForecastReportEndpoint        = "life_forecast_report/tropical"
	MoonPhaseReportEndpoint           = "moon_phase_report"
	SolarReturnDetailsEndpoint        = "solar_return_details"

	// транзитные: тело transitForm
	DailyTransitsEndpoint   = "natal_transits/daily"
	WeeklyTransitsEndpoint  = "natal_transits/weekly"
	MonthlyTransitsEndpoint = "natal_transits/monthly"

	// парные: тело pairForm, формат по pairBodyFormat
	GeneralAscendantReportEndpoint  = "general_ascendant_report"
	GeneralSignReportEndpoint       = "general_sign_report"
	GeneralHouseReportEndpoint      = "general_house_report"
	SynastryHoroscopeEndpoint       = "synastry_horoscope"
	CompositeHoroscopeEndpoint      = "composite_horoscope"
	MatchPercentageEndpoint         = "match_percentage"
	LoveCompatibilityReportEndpoint = "love_compatibility_report/tropical"
	KarmaDestinyReportEndpoint      = "karma_destiny_report/tropical"
	FriendshipReportEndpoint        = "friendship_report/tropical"
	RomanticForecastReportEndpoint  = "romantic_forecast_report/tropical"
	PartnerReportEndpoint           = "partner_report/tropical"

	// по знакам зодиака: данные только в пути
	ZodiacCompatibilityEndpoint          = "zodiac_compatibility"
	DailySunSignPredictionEndpoint       = "sun_sign_prediction/daily"
	NextDaySunSignPredictionEndpoint     = "sun_sign_prediction/daily/next"
	PreviousDaySunSignPredictionEndpoint = "sun_sign_prediction/daily/previous"

	// таро: тело tarotForm
	TarotPredictionsEndpoint = "tarot_predictions"
)

// bodyFormat формат тела запроса для парных эндпоинтов
type bodyFormat int

const (
	formatComposite bodyFormat = iota // p_/s_ префиксы у обеих персон
	formatHybrid                      // первая персона без префикса, вторая с s_
)

// hybridReportEndpoints - парные эндпоинты, которые требуют гибридный формат.
// Список фиксированный и установлен опытным путём против живого сервиса:
// на композитном теле эти три эндпоинта отвечают ошибкой валидации полей
// первой персоны. По имени или форме URL формат не предсказывается,
// поэтому формат выбирается только по этому списку.
var hybridReportEndpoints = map[string]struct{}{
	GeneralAscendantReportEndpoint: {},
	GeneralSignReportEndpoint:      {},
	GeneralHouseReportEndpoint:     {},
}

// pairBodyFormat возвращает формат тела для парного эндпоинта
func pairBodyFormat(endpoint string) bodyFormat {
	if _, ok := hybridReportEndpoints[endpoint]; ok {
		return formatHybrid
	}
	return formatComposite
}

// pathSegment нормализует пользовательский сегмент пути (имя планеты,
// знак зодиака): обрезает пробелы, приводит к нижнему регистру.
// Пустой сегмент - ошибка валидации до сетевого вызова.
func pathSegment(v string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	if s == "" {
		return "", ErrEmptyPathSegment
	}
	return s, nil
}

// signsPath собирает путь эндпоинта совместимости из 2-4 знаков
func signsPath(signs []string) (string, error) {
	if len(signs) < 2 || len(signs) > 4 {
		return "", ErrSignCount
	}
	segments := make([]string, 0, len(signs)+1)
	segments = append(segments, ZodiacCompatibilityEndpoint)
	for _, sign := range signs {
		s, err := pathSegment(sign)
		if err != nil {
			return "", err
		}
		segments = append(segments, s)
	}
	return strings.Join(segments, "/"), nil
}
