package astroApi

// Config конфигурация клиента астрологического API.
// Учётные данные задаются один раз при создании клиента и не меняются
// в течение его жизни.
type Config struct {
	BaseURL        string `envconfig:"BASE_URL" default:"https://json.astrologyapi.com"`
	ApiVersion     string `envconfig:"VERSION" default:"v1"`
	UserID         string `envconfig:"USER_ID" required:"true"`
	ApiKey         string `envconfig:"API_KEY" required:"true"`
	Language       string `envconfig:"LANGUAGE"`              // Accept-Language для локализованных отчётов
	TimeoutSeconds int    `envconfig:"TIMEOUT" default:"30"`  // в секундах
	SkipSSL        string `envconfig:"SKIP_SSL"`              // Railway требует строки вместо bool
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}
