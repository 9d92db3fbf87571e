package astroApi

import (
	"errors"
	"net/url"
	"reflect"
	"testing"
)

var (
	testPrimary = BirthData{
		Day:       10,
		Month:     5,
		Year:      1990,
		Hour:      11,
		Minute:    55,
		Latitude:  19.20,
		Longitude: 25.20,
		Timezone:  5.5,
	}
	testSecondary = BirthData{
		Day:       10,
		Month:     5,
		Year:      1990,
		Hour:      15,
		Minute:    22,
		Latitude:  19.33,
		Longitude: 25.20,
		Timezone:  5.5,
	}
)

func floatPtr(v float64) *float64 { return &v }

func TestSingleForm(t *testing.T) {
	person := testPrimary
	person.Hour = 19

	form, err := singleForm(&person)
	if err != nil {
		t.Fatalf("singleForm returned error: %v", err)
	}

	want := url.Values{
		"day":   {"10"},
		"month": {"5"},
		"year":  {"1990"},
		"hour":  {"19"},
		"min":   {"55"},
		"lat":   {"19.2"},
		"lon":   {"25.2"},
		"tzone": {"5.5"},
	}
	if !reflect.DeepEqual(form, want) {
		t.Errorf("singleForm: got %v, want %v", form, want)
	}
	if len(form) != 8 {
		t.Errorf("singleForm key count: got %d, want 8", len(form))
	}
}

func TestSingleFormNilInput(t *testing.T) {
	if _, err := singleForm(nil); !errors.Is(err, ErrNoBirthData) {
		t.Errorf("singleForm(nil): got %v, want ErrNoBirthData", err)
	}
}

func TestTransitForm(t *testing.T) {
	transit := &TransitData{
		BirthData:          testPrimary,
		PredictionTimezone: -3.5,
	}

	form, err := transitForm(transit)
	if err != nil {
		t.Fatalf("transitForm returned error: %v", err)
	}

	if len(form) != 9 {
		t.Errorf("transitForm key count: got %d, want 9", len(form))
	}
	if got := form.Get("prediction_timezone"); got != "-3.5" {
		t.Errorf("prediction_timezone: got %q, want %q", got, "-3.5")
	}
	if got := form.Get("tzone"); got != "5.5" {
		t.Errorf("tzone: got %q, want %q", got, "5.5")
	}

	if _, err := transitForm(nil); !errors.Is(err, ErrNoBirthData) {
		t.Errorf("transitForm(nil): got %v, want ErrNoBirthData", err)
	}
}

func TestPairFormComposite(t *testing.T) {
	pair := PairBirthData{
		Primary:   &testPrimary,
		Secondary: &testSecondary,
		Orb:       floatPtr(1),
	}

	form, err := pairForm(formatComposite, pair)
	if err != nil {
		t.Fatalf("pairForm returned error: %v", err)
	}

	want := url.Values{
		"p_day":   {"10"},
		"p_month": {"5"},
		"p_year":  {"1990"},
		"p_hour":  {"11"},
		"p_min":   {"55"},
		"p_lat":   {"19.2"},
		"p_lon":   {"25.2"},
		"p_tzone": {"5.5"},
		"s_day":   {"10"},
		"s_month": {"5"},
		"s_year":  {"1990"},
		"s_hour":  {"15"},
		"s_min":   {"22"},
		"s_lat":   {"19.33"},
		"s_lon":   {"25.2"},
		"s_tzone": {"5.5"},
		"orb":     {"1"},
	}
	if !reflect.DeepEqual(form, want) {
		t.Errorf("composite form: got %v, want %v", form, want)
	}
	if len(form) != 17 {
		t.Errorf("composite key count with orb: got %d, want 17", len(form))
	}
}

func TestPairFormCompositeWithoutOrb(t *testing.T) {
	pair := PairBirthData{Primary: &testPrimary, Secondary: &testSecondary}

	form, err := pairForm(formatComposite, pair)
	if err != nil {
		t.Fatalf("pairForm returned error: %v", err)
	}

	if len(form) != 16 {
		t.Errorf("composite key count without orb: got %d, want 16", len(form))
	}
	if _, present := form["orb"]; present {
		t.Errorf("orb key must be omitted when orb is not set, got %q", form.Get("orb"))
	}
}

func TestPairFormHybrid(t *testing.T) {
	pair := PairBirthData{
		Primary:   &testPrimary,
		Secondary: &testSecondary,
		Orb:       floatPtr(1),
	}

	form, err := pairForm(formatHybrid, pair)
	if err != nil {
		t.Fatalf("pairForm returned error: %v", err)
	}

	want := url.Values{
		"day":     {"10"},
		"month":   {"5"},
		"year":    {"1990"},
		"hour":    {"11"},
		"min":     {"55"},
		"lat":     {"19.2"},
		"lon":     {"25.2"},
		"tzone":   {"5.5"},
		"s_day":   {"10"},
		"s_month": {"5"},
		"s_year":  {"1990"},
		"s_hour":  {"15"},
		"s_min":   {"22"},
		"s_lat":   {"19.33"},
		"s_lon":   {"25.2"},
		"s_tzone": {"5.5"},
		"orb":     {"1"},
	}
	if !reflect.DeepEqual(form, want) {
		t.Errorf("hybrid form: got %v, want %v", form, want)
	}

	for _, key := range []string{"p_day", "p_month", "p_year", "p_hour", "p_min", "p_lat", "p_lon", "p_tzone"} {
		if _, present := form[key]; present {
			t.Errorf("hybrid form must not contain %q", key)
		}
	}
}

func TestPairFormMissingPersons(t *testing.T) {
	tests := []struct {
		name    string
		pair    PairBirthData
		wantErr error
	}{
		{
			name:    "missing primary",
			pair:    PairBirthData{Secondary: &testSecondary},
			wantErr: ErrNoPrimaryPerson,
		},
		{
			name:    "missing secondary",
			pair:    PairBirthData{Primary: &testPrimary},
			wantErr: ErrNoSecondaryPerson,
		},
		{
			name:    "missing both",
			pair:    PairBirthData{},
			wantErr: ErrNoPrimaryPerson,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, format := range []bodyFormat{formatComposite, formatHybrid} {
				if _, err := pairForm(format, tt.pair); !errors.Is(err, tt.wantErr) {
					t.Errorf("format %d: got %v, want %v", format, err, tt.wantErr)
				}
			}
		})
	}
}

func TestPairFromPersonsConverges(t *testing.T) {
	orb := floatPtr(2.5)
	fromPair, err := pairForm(formatHybrid, PairBirthData{Primary: &testPrimary, Secondary: &testSecondary, Orb: orb})
	if err != nil {
		t.Fatalf("pairForm returned error: %v", err)
	}
	fromPersons, err := pairForm(formatHybrid, PairFromPersons(&testPrimary, &testSecondary, orb))
	if err != nil {
		t.Fatalf("pairForm from persons returned error: %v", err)
	}
	if !reflect.DeepEqual(fromPair, fromPersons) {
		t.Errorf("entry points diverge: %v vs %v", fromPair, fromPersons)
	}
}

func TestFormEncodingIdempotent(t *testing.T) {
	pair := PairBirthData{Primary: &testPrimary, Secondary: &testSecondary, Orb: floatPtr(1)}

	first, err := pairForm(formatComposite, pair)
	if err != nil {
		t.Fatalf("pairForm returned error: %v", err)
	}
	second, err := pairForm(formatComposite, pair)
	if err != nil {
		t.Fatalf("pairForm returned error: %v", err)
	}

	if first.Encode() != second.Encode() {
		t.Errorf("encoding is not idempotent: %q vs %q", first.Encode(), second.Encode())
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{19.20, "19.2"},
		{25.20, "25.2"},
		{5.5, "5.5"},
		{1, "1"},
		{0, "0"},
		{-3.5, "-3.5"},
		{19.333333, "19.333333"},
	}

	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTarotForm(t *testing.T) {
	form := tarotForm(TarotScores{Love: 70, Career: 45, Finance: 90})

	want := url.Values{
		"love":    {"70"},
		"career":  {"45"},
		"finance": {"90"},
	}
	if !reflect.DeepEqual(form, want) {
		t.Errorf("tarotForm: got %v, want %v", form, want)
	}
}
