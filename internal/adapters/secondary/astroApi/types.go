package astroApi

// BirthData представляет данные рождения одного человека.
// Одна и та же структура используется для одиночных запросов и для
// первой/второй персоны в парных запросах - роль определяется местом
// подстановки, а не типом.
type BirthData struct {
	Day       int     // день (1-31)
	Month     int     // месяц (1-12)
	Year      int     // год
	Hour      int     // час (0-23)
	Minute    int     // минута (0-59)
	Latitude  float64 // широта в градусах
	Longitude float64 // долгота в градусах
	Timezone  float64 // смещение от UTC в часах
}

// PairBirthData агрегирует данные двух персон для парных расчётов.
// Orb задаётся только для аспектных отчётов; при nil ключ orb
// не попадает в тело запроса вовсе.
type PairBirthData struct {
	Primary   *BirthData
	Secondary *BirthData
	Orb       *float64
}

// PairFromPersons собирает PairBirthData из двух отдельных записей.
// Вторая точка входа для вызывающих, у которых нет агрегата.
func PairFromPersons(primary, secondary *BirthData, orb *float64) PairBirthData {
	return PairBirthData{
		Primary:   primary,
		Secondary: secondary,
		Orb:       orb,
	}
}

// TransitData представляет данные рождения плюс таймзону прогноза
// для транзитных эндпоинтов.
type TransitData struct {
	BirthData
	PredictionTimezone float64
}

// TarotScores представляет три независимых балла для таро-предсказаний.
// Диапазон 0-100 на стороне клиента не проверяется - это зона
// ответственности удалённого сервиса.
type TarotScores struct {
	Love    int
	Career  int
	Finance int
}

// Planet представляет позицию планеты в ответе API
type Planet struct {
	Name       string  `json:"name"`
	FullDegree float64 `json:"full_degree"`
	NormDegree float64 `json:"norm_degree"`
	Speed      float64 `json:"speed"`
	IsRetro    string  `json:"is_retro"`
	Sign       string  `json:"sign"`
	House      int     `json:"house"`
}

// HouseCusp представляет куспид дома в ответе API
type HouseCusp struct {
	House  int     `json:"house"`
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree"`
}

// PlanetAspect представляет аспект между двумя планетами
type PlanetAspect struct {
	AspectingPlanet string  `json:"aspecting_planet"`
	AspectedPlanet  string  `json:"aspected_planet"`
	Type            string  `json:"type"`
	Orb             float64 `json:"orb"`
	Diff            float64 `json:"diff"`
}

// WesternHoroscopeResponse представляет полные данные натальной карты
type WesternHoroscopeResponse struct {
	Planets []Planet       `json:"planets"`
	Houses  []HouseCusp    `json:"houses"`
	Aspects []PlanetAspect `json:"aspects"`
}

// HouseCuspsResponse представляет ответ эндпоинта куспидов домов
type HouseCuspsResponse struct {
	Houses    []HouseCusp `json:"houses"`
	Ascendant float64     `json:"ascendant"`
	Midheaven float64     `json:"midheaven"`
}

// ChartURLResponse представляет ответ с URL сгенерированной карты
type ChartURLResponse struct {
	ChartURL string `json:"chart_url"`
}

// MatchPercentageResponse представляет ответ эндпоинта совместимости
type MatchPercentageResponse struct {
	MatchPercentage float64 `json:"match_percentage"`
	MatchReport     string  `json:"match_report"`
}
