package horoscopeController

import (
	"errors"
	"log/slog"
	"net/http"

	astroApi "github.com/floradu88/astro-api-client/internal/adapters/secondary/astroApi"
	"github.com/floradu88/astro-api-client/internal/domain"
	"github.com/floradu88/astro-api-client/internal/ports/service"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	HoroscopeService service.IHoroscopeService
	Log              *slog.Logger
}

func New(horoscopeService service.IHoroscopeService, log *slog.Logger) *Controller {
	return &Controller{
		HoroscopeService: horoscopeService,
		Log:              log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.POST("/horoscope/natal", c.natal)
	api.POST("/horoscope/personality", c.personality)
	api.POST("/horoscope/synastry", c.synastry)
	api.GET("/compatibility/:sign/:partner_sign", c.compatibility)
}

func (c *Controller) natal(ctx *gin.Context) {
	var payload BirthDataRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		c.Log.Warn("failed to bind natal request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	horoscope, err := c.HoroscopeService.NatalHoroscope(ctx.Request.Context(), payload.toBirthData())
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, horoscope)
}

func (c *Controller) personality(ctx *gin.Context) {
	var payload BirthDataRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		c.Log.Warn("failed to bind personality request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	report, err := c.HoroscopeService.PersonalityReport(ctx.Request.Context(), payload.toBirthData())
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", report)
}

func (c *Controller) synastry(ctx *gin.Context) {
	var payload SynastryRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		c.Log.Warn("failed to bind synastry request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	report, err := c.HoroscopeService.SynastryReport(ctx.Request.Context(), payload.toPair())
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", report)
}

func (c *Controller) compatibility(ctx *gin.Context) {
	sign := ctx.Param("sign")
	partnerSign := ctx.Param("partner_sign")

	report, err := c.HoroscopeService.SignCompatibility(ctx.Request.Context(), sign, partnerSign)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", report)
}

// respondError транслирует ошибки бизнес-логики в HTTP ответ.
// Отказ внешнего API отдаётся с его статусом и нетронутым телом, чтобы
// вызывающий мог отличить ограничение тарифа от невалидных данных.
func (c *Controller) respondError(ctx *gin.Context, err error) {
	var apiErr *astroApi.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status >= 200 && status <= 299 {
			// конверт status:false в 2xx ответе внешнего сервиса
			status = http.StatusBadGateway
		}
		ctx.Data(status, "application/json", []byte(apiErr.Body))
		return
	}

	if domain.IsBusinessError(err) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Log.Error("horoscope request failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
