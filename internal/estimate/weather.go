package estimate

import (
	"math/rand"
	"time"
)

const hotThresholdC = 30.0

// Rand is the source of jitter for weather estimates. Float64 must return a
// value in [0, 1). *rand.Rand from math/rand satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Estimator derives weather and stock recommendations. The zero value is not
// usable; construct it with NewEstimator.
type Estimator struct {
	rng Rand
	now func() time.Time
}

// NewEstimator creates an Estimator. A nil rng falls back to the process-wide
// random source and a nil now falls back to time.Now.
func NewEstimator(rng Rand, now func() time.Time) *Estimator {
	if rng == nil {
		rng = globalRand{}
	}
	if now == nil {
		now = time.Now
	}
	return &Estimator{rng: rng, now: now}
}

// Weather estimates the weather for a calendar date from its month alone.
//
// location is currently ignored; it is kept so a real lookup can be added
// without changing callers.
func (e *Estimator) Weather(location string, date time.Time) WeatherReading {
	month := date.Month()
	isMonsoon := month >= time.June && month <= time.October
	isSummer := month >= time.April && month <= time.June

	// June matches both bands; monsoon wins.
	switch {
	case isMonsoon:
		return WeatherReading{
			Condition:   ConditionRainy,
			Temperature: 25 + e.rng.Float64()*5,
			Humidity:    80 + e.rng.Float64()*15,
		}
	case isSummer:
		return WeatherReading{
			Condition:   ConditionSunny,
			Temperature: 30 + e.rng.Float64()*8,
			Humidity:    40 + e.rng.Float64()*20,
		}
	default:
		return WeatherReading{
			Condition:   ConditionCloudy,
			Temperature: 20 + e.rng.Float64()*10,
			Humidity:    60 + e.rng.Float64()*20,
		}
	}
}
