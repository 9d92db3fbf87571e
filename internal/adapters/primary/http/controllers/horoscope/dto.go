package horoscopeController

import (
	astroApi "github.com/floradu88/astro-api-client/internal/adapters/secondary/astroApi"
)

// BirthDataRequest данные рождения одного человека.
// Нулевой час/минута валидны, поэтому required стоит только на полях,
// где ноль не имеет смысла.
type BirthDataRequest struct {
	Day       int     `json:"day" binding:"required,min=1,max=31"`
	Month     int     `json:"month" binding:"required,min=1,max=12"`
	Year      int     `json:"year" binding:"required"`
	Hour      int     `json:"hour" binding:"min=0,max=23"`
	Minute    int     `json:"min" binding:"min=0,max=59"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Timezone  float64 `json:"tzone"`
}

func (r *BirthDataRequest) toBirthData() *astroApi.BirthData {
	return &astroApi.BirthData{
		Day:       r.Day,
		Month:     r.Month,
		Year:      r.Year,
		Hour:      r.Hour,
		Minute:    r.Minute,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
	}
}

// SynastryRequest данные пары для синастрии
type SynastryRequest struct {
	Primary   *BirthDataRequest `json:"primary" binding:"required"`
	Secondary *BirthDataRequest `json:"secondary" binding:"required"`
	Orb       *float64          `json:"orb"`
}

func (r *SynastryRequest) toPair() astroApi.PairBirthData {
	return astroApi.PairFromPersons(r.Primary.toBirthData(), r.Secondary.toBirthData(), r.Orb)
}
