package astroApi

import (
	"errors"
	"testing"
)

func TestPairBodyFormat(t *testing.T) {
	hybrid := []string{
		GeneralAscendantReportEndpoint,
		GeneralSignReportEndpoint,
		GeneralHouseReportEndpoint,
	}
	for _, endpoint := range hybrid {
		if got := pairBodyFormat(endpoint); got != formatHybrid {
			t.Errorf("pairBodyFormat(%q): got %d, want formatHybrid", endpoint, got)
		}
	}

	composite := []string{
		SynastryHoroscopeEndpoint,
		CompositeHoroscopeEndpoint,
		MatchPercentageEndpoint,
		LoveCompatibilityReportEndpoint,
		KarmaDestinyReportEndpoint,
		FriendshipReportEndpoint,
		RomanticForecastReportEndpoint,
		PartnerReportEndpoint,
	}
	for _, endpoint := range composite {
		if got := pairBodyFormat(endpoint); got != formatComposite {
			t.Errorf("pairBodyFormat(%q): got %d, want formatComposite", endpoint, got)
		}
	}

	// формат не выводится из формы URL: похожие на отчёты имена
	// вне списка остаются композитными
	if got := pairBodyFormat("general_love_report"); got != formatComposite {
		t.Errorf("pairBodyFormat for unknown report name: got %d, want formatComposite", got)
	}
}

func TestPathSegment(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain", in: "sun", want: "sun"},
		{name: "uppercase", in: "Jupiter", want: "jupiter"},
		{name: "padded", in: "  mars  ", want: "mars"},
		{name: "empty", in: "", wantErr: ErrEmptyPathSegment},
		{name: "whitespace only", in: "   ", wantErr: ErrEmptyPathSegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathSegment(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("pathSegment(%q): got err %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("pathSegment(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("pathSegment(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSignsPath(t *testing.T) {
	tests := []struct {
		name    string
		signs   []string
		want    string
		wantErr error
	}{
		{name: "two signs", signs: []string{"aries", "leo"}, want: "zodiac_compatibility/aries/leo"},
		{name: "four signs", signs: []string{"aries", "leo", "Libra", "pisces"}, want: "zodiac_compatibility/aries/leo/libra/pisces"},
		{name: "one sign", signs: []string{"aries"}, wantErr: ErrSignCount},
		{name: "five signs", signs: []string{"a", "b", "c", "d", "e"}, wantErr: ErrSignCount},
		{name: "blank sign", signs: []string{"aries", "  "}, wantErr: ErrEmptyPathSegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := signsPath(tt.signs)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("signsPath(%v): got err %v, want %v", tt.signs, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("signsPath(%v) returned error: %v", tt.signs, err)
			}
			if got != tt.want {
				t.Errorf("signsPath(%v): got %q, want %q", tt.signs, got, tt.want)
			}
		})
	}
}
