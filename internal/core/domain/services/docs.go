// Package services provides domain services that work across the listing and
// match aggregates of the luggage marketplace.
//
// The package includes:
//   - Matchmaker: compatibility rules and pending-match construction
//   - TravelerVisibility: read-time redaction of traveler identity
//   - FlightEstimator: arrival estimates from a fixed route-duration table
//
// All services are stateless and never touch storage.
package services
