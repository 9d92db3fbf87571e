package horoscopeController

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	astroApi "github.com/floradu88/astro-api-client/internal/adapters/secondary/astroApi"
	"github.com/floradu88/astro-api-client/internal/domain"
	"github.com/gin-gonic/gin"
)

// fakeHoroscopeService подменяет бизнес-логику в тестах контроллера
type fakeHoroscopeService struct {
	report json.RawMessage
	err    error

	lastPair  astroApi.PairBirthData
	lastSigns []string
}

func (f *fakeHoroscopeService) NatalHoroscope(ctx context.Context, person *astroApi.BirthData) (*astroApi.WesternHoroscopeResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &astroApi.WesternHoroscopeResponse{Planets: []astroApi.Planet{{Name: "Sun", Sign: "Taurus"}}}, nil
}

func (f *fakeHoroscopeService) PersonalityReport(ctx context.Context, person *astroApi.BirthData) (domain.Report, error) {
	return domain.Report(f.report), f.err
}

func (f *fakeHoroscopeService) SynastryReport(ctx context.Context, pair astroApi.PairBirthData) (domain.Report, error) {
	f.lastPair = pair
	return domain.Report(f.report), f.err
}

func (f *fakeHoroscopeService) SignCompatibility(ctx context.Context, signs ...string) (json.RawMessage, error) {
	f.lastSigns = signs
	return f.report, f.err
}

func newTestRouter(svc *fakeHoroscopeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	controller.RegisterRoutes(router)
	return router
}

func TestNatalEndpoint(t *testing.T) {
	router := newTestRouter(&fakeHoroscopeService{})

	body := `{"day":10,"month":5,"year":1990,"hour":11,"min":55,"lat":19.2,"lon":25.2,"tzone":5.5}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/horoscope/natal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Taurus") {
		t.Errorf("unexpected response body: %s", rec.Body.String())
	}
}

func TestNatalEndpointRejectsInvalidBody(t *testing.T) {
	router := newTestRouter(&fakeHoroscopeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/horoscope/natal", strings.NewReader(`{"day":40}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}

func TestSynastryEndpointPassesOrb(t *testing.T) {
	svc := &fakeHoroscopeService{report: json.RawMessage(`{"ok":true}`)}
	router := newTestRouter(svc)

	body := `{
		"primary": {"day":10,"month":5,"year":1990,"hour":11,"min":55,"lat":19.2,"lon":25.2,"tzone":5.5},
		"secondary": {"day":10,"month":5,"year":1990,"hour":15,"min":22,"lat":19.33,"lon":25.2,"tzone":5.5},
		"orb": 1
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/horoscope/synastry", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}
	if svc.lastPair.Orb == nil || *svc.lastPair.Orb != 1 {
		t.Errorf("orb was not passed through: %+v", svc.lastPair.Orb)
	}
}

func TestCompatibilityEndpoint(t *testing.T) {
	svc := &fakeHoroscopeService{report: json.RawMessage(`{"report":"fine"}`)}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/compatibility/aries/leo", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if len(svc.lastSigns) != 2 || svc.lastSigns[0] != "aries" || svc.lastSigns[1] != "leo" {
		t.Errorf("signs: got %v", svc.lastSigns)
	}
}

func TestAPIErrorPropagatesStatusAndBody(t *testing.T) {
	apiBody := `{"status":false,"msg":"endpoint not allowed"}`
	svc := &fakeHoroscopeService{
		err: domain.WrapBusinessError(&astroApi.APIError{
			StatusCode: http.StatusMethodNotAllowed,
			Body:       apiBody,
		}),
	}
	router := newTestRouter(svc)

	body := `{"day":10,"month":5,"year":1990}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/horoscope/personality", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rec.Code)
	}
	if rec.Body.String() != apiBody {
		t.Errorf("body must be propagated untouched: got %q", rec.Body.String())
	}
}

func TestValidationErrorMapsToBadRequest(t *testing.T) {
	svc := &fakeHoroscopeService{err: domain.WrapBusinessError(astroApi.ErrNoPrimaryPerson)}
	router := newTestRouter(svc)

	body := `{
		"primary": {"day":10,"month":5,"year":1990},
		"secondary": {"day":11,"month":6,"year":1991}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/horoscope/synastry", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}
