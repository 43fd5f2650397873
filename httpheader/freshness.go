package httpheader

import (
	"time"

	"github.com/benbjohnson/clock"
)

// StoredResponse is the cache-relevant view of a stored response: its
// validator headers plus the times the cache recorded around the exchange.
type StoredResponse struct {
	Date         *HTTPDate
	Expires      *HTTPDate
	Age          *Age
	CacheControl CacheControl

	RequestTime  time.Time
	ResponseTime time.Time
}

// Freshness computes freshness lifetimes and current age for stored
// responses. The clock is injectable so tests can pin "now".
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7234#section-4.2
type Freshness struct {
	clock clock.Clock
}

func NewFreshness(c clock.Clock) *Freshness {
	return &Freshness{clock: c}
}

// Lifetime returns the freshness lifetime of the response, preferring
// s-maxage over max-age over Expires minus Date. The boolean reports
// whether any of the three sources was present.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7234#section-4.2.1
func (f *Freshness) Lifetime(resp StoredResponse) (time.Duration, bool) {
	if d, ok := resp.CacheControl.SMaxAge(); ok {
		return d, true
	}
	if d, ok := resp.CacheControl.MaxAge(); ok {
		return d, true
	}
	if resp.Expires != nil {
		date := f.dateValue(resp)
		return resp.Expires.Time().Sub(date), true
	}
	return 0, false
}

// CurrentAge estimates the response's age at the current instant.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7234#section-4.2.3
func (f *Freshness) CurrentAge(resp StoredResponse) time.Duration {
	date := f.dateValue(resp)

	apparentAge := resp.ResponseTime.Sub(date)
	if apparentAge < 0 {
		apparentAge = 0
	}

	var ageValue time.Duration
	if resp.Age != nil {
		ageValue = resp.Age.Duration()
	}

	responseDelay := resp.ResponseTime.Sub(resp.RequestTime)
	correctedAgeValue := ageValue + responseDelay

	correctedInitialAge := apparentAge
	if correctedAgeValue > correctedInitialAge {
		correctedInitialAge = correctedAgeValue
	}

	residentTime := f.clock.Now().Sub(resp.ResponseTime)
	return correctedInitialAge + residentTime
}

// IsFresh reports whether the response's lifetime exceeds its current age.
// A response carrying no-store or no-cache, or without any lifetime source,
// is never fresh.
func (f *Freshness) IsFresh(resp StoredResponse) bool {
	if resp.CacheControl.NoStore() || resp.CacheControl.NoCache() {
		return false
	}
	lifetime, ok := f.Lifetime(resp)
	if !ok {
		return false
	}
	return lifetime > f.CurrentAge(resp)
}

// A missing Date header defaults to the time the response was received.
func (f *Freshness) dateValue(resp StoredResponse) time.Time {
	if resp.Date != nil {
		return resp.Date.Time()
	}
	return resp.ResponseTime
}
