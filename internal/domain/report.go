package domain

// Report - JSON представление астрологического отчёта как его вернул
// внешний сервис. Хранится в кэше и публикуется в Kafka без разбора
// структуры.
type Report []byte

// ReportKind тип отчёта для аудита и событий
type ReportKind string

const (
	ReportKindNatal         ReportKind = "natal"
	ReportKindPersonality   ReportKind = "personality"
	ReportKindSynastry      ReportKind = "synastry"
	ReportKindCompatibility ReportKind = "compatibility"
)
