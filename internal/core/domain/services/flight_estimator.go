package services

import (
	"time"

	"luggage/internal/core/domain/model/kernel"
)

// DefaultFlightDuration is used for routes missing from the duration table.
const DefaultFlightDuration = 4 * time.Hour

var flightDurations = map[string]time.Duration{
	"JFK-LAX": 6*time.Hour + 30*time.Minute,
	"LAX-JFK": 6*time.Hour + 30*time.Minute,
	"JFK-SFO": 6*time.Hour + 30*time.Minute,
	"SFO-JFK": 6*time.Hour + 30*time.Minute,
	"ORD-LAX": 4*time.Hour + 30*time.Minute,
	"LAX-ORD": 4*time.Hour + 30*time.Minute,
	"DFW-LAX": 3*time.Hour + 30*time.Minute,
	"LAX-DFW": 3*time.Hour + 30*time.Minute,
	"JFK-LHR": 7*time.Hour + 30*time.Minute,
	"LHR-JFK": 8*time.Hour + 30*time.Minute,
	"LAX-NRT": 11 * time.Hour,
	"NRT-LAX": 10 * time.Hour,
}

// FlightEstimate is a scheduled flight with an estimated arrival.
type FlightEstimate struct {
	FlightNumber string
	Route        kernel.Route
	Departure    time.Time
	Arrival      time.Time
	Duration     time.Duration
}

// FlightEstimator derives arrival times from a fixed table of typical route
// durations. It does not talk to any flight data provider.
type FlightEstimator struct{}

func NewFlightEstimator() FlightEstimator {
	return FlightEstimator{}
}

func (FlightEstimator) Estimate(flightNumber string, route kernel.Route, departure time.Time) FlightEstimate {
	d, ok := flightDurations[route.String()]
	if !ok {
		d = DefaultFlightDuration
	}
	return FlightEstimate{
		FlightNumber: flightNumber,
		Route:        route,
		Departure:    departure,
		Arrival:      departure.Add(d),
		Duration:     d,
	}
}
