package astroApi

import (
	"net/url"
	"strconv"
)

// Кодировщик тел запросов. Сервис принимает application/x-www-form-urlencoded
// и парсит значения как числа на своей стороне, поэтому все числовые поля
// рендерятся одной канонической процедурой без локалезависимых разделителей.

// formatInt каноническое строковое представление целого поля
func formatInt(v int) string {
	return strconv.Itoa(v)
}

// formatFloat каноническое строковое представление дробного поля.
// Минимальная запись без хвостовых нулей: 19.20 -> "19.2", 1.0 -> "1".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writePerson добавляет восемь полей рождения с заданным префиксом ключей
func writePerson(form url.Values, prefix string, b BirthData) {
	form.Set(prefix+"day", formatInt(b.Day))
	form.Set(prefix+"month", formatInt(b.Month))
	form.Set(prefix+"year", formatInt(b.Year))
	form.Set(prefix+"hour", formatInt(b.Hour))
	form.Set(prefix+"min", formatInt(b.Minute))
	form.Set(prefix+"lat", formatFloat(b.Latitude))
	form.Set(prefix+"lon", formatFloat(b.Longitude))
	form.Set(prefix+"tzone", formatFloat(b.Timezone))
}

// singleForm кодирует данные одного человека: ровно восемь ключей
// day, month, year, hour, min, lat, lon, tzone без префиксов
func singleForm(b *BirthData) (url.Values, error) {
	if b == nil {
		return nil, ErrNoBirthData
	}
	form := url.Values{}
	writePerson(form, "", *b)
	return form, nil
}

// transitForm кодирует данные для транзитных эндпоинтов: восемь полей
// рождения плюс prediction_timezone
func transitForm(t *TransitData) (url.Values, error) {
	if t == nil {
		return nil, ErrNoBirthData
	}
	form := url.Values{}
	writePerson(form, "", t.BirthData)
	form.Set("prediction_timezone", formatFloat(t.PredictionTimezone))
	return form, nil
}

// pairForm кодирует пару персон в формате, который ожидает эндпоинт.
// Формат выбирается диспетчером (pairBodyFormat), не выводится из пути.
func pairForm(format bodyFormat, pair PairBirthData) (url.Values, error) {
	return personsForm(format, pair.Primary, pair.Secondary, pair.Orb)
}

// personsForm общая точка для обоих вариантов входа (агрегат или две
// отдельные записи). Композитный формат: p_/s_ префиксы у обеих персон.
// Гибридный: первая персона без префикса, вторая с s_ - так требуют
// три general_*_report эндпоинта, остальные на таком теле падают с
// ошибкой валидации.
func personsForm(format bodyFormat, primary, secondary *BirthData, orb *float64) (url.Values, error) {
	if primary == nil {
		return nil, ErrNoPrimaryPerson
	}
	if secondary == nil {
		return nil, ErrNoSecondaryPerson
	}

	primaryPrefix := "p_"
	if format == formatHybrid {
		primaryPrefix = ""
	}

	form := url.Values{}
	writePerson(form, primaryPrefix, *primary)
	writePerson(form, "s_", *secondary)

	// orb попадает в тело только когда задан; пустое или нулевое
	// значение вместо отсутствующего сервис трактует иначе
	if orb != nil {
		form.Set("orb", formatFloat(*orb))
	}

	return form, nil
}

// tarotForm кодирует три балла для таро-предсказаний
func tarotForm(s TarotScores) url.Values {
	form := url.Values{}
	form.Set("love", formatInt(s.Love))
	form.Set("career", formatInt(s.Career))
	form.Set("finance", formatInt(s.Finance))
	return form
}
