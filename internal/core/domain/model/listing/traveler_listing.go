package listing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/pkg/errs"
)

const (
	// MinimumLeadTime separates listing creation (and match search) from departure.
	MinimumLeadTime = 24 * time.Hour

	// DropOffCutoff is how long before departure the sender must hand the package over.
	DropOffCutoff = 3 * time.Hour
)

// ErrTravelerListingIsNotConstructed is returned for a listing built outside its constructors.
var ErrTravelerListingIsNotConstructed = errors.New(
	"TravelerListing must be created via NewTravelerListing constructor")

// TravelerListing offers availableWeight of luggage space on one flight.
type TravelerListing struct {
	id              kernel.UUID
	userID          kernel.UUID
	route           kernel.Route
	flightNumber    string
	departureTime   time.Time
	arrivalTime     time.Time
	availableWeight kernel.Weight
	isActive        bool
	createdAt       time.Time

	isConstructed bool
}

// NewTravelerListing validates a new listing against now. Departure must be
// at least MinimumLeadTime away and arrival must follow departure.
func NewTravelerListing(
	id, userID kernel.UUID,
	route kernel.Route,
	flightNumber string,
	departureTime, arrivalTime time.Time,
	availableWeight kernel.Weight,
	now time.Time,
) (*TravelerListing, error) {
	l := &TravelerListing{
		flightNumber:  strings.ToUpper(strings.TrimSpace(flightNumber)),
		isActive:      true,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setIDs(id, userID),
		l.setRoute(route),
		l.setWeight(availableWeight),
		l.setSchedule(departureTime, arrivalTime, now),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreTravelerListing rebuilds a persisted listing. The creation-time lead
// check is not repeated: a listing never becomes invalid as time passes.
func RestoreTravelerListing(
	id, userID kernel.UUID,
	route kernel.Route,
	flightNumber string,
	departureTime, arrivalTime time.Time,
	availableWeight kernel.Weight,
	isActive bool,
	createdAt time.Time,
) (*TravelerListing, error) {
	l := &TravelerListing{
		flightNumber:  flightNumber,
		isActive:      isActive,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setIDs(id, userID),
		l.setRoute(route),
		l.setWeight(availableWeight),
		l.setTimes(departureTime, arrivalTime),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *TravelerListing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrTravelerListingIsNotConstructed
	}
	return nil
}

func (l *TravelerListing) ID() kernel.UUID                { return l.id }
func (l *TravelerListing) UserID() kernel.UUID            { return l.userID }
func (l *TravelerListing) Route() kernel.Route            { return l.route }
func (l *TravelerListing) FlightNumber() string           { return l.flightNumber }
func (l *TravelerListing) DepartureTime() time.Time       { return l.departureTime }
func (l *TravelerListing) ArrivalTime() time.Time         { return l.arrivalTime }
func (l *TravelerListing) AvailableWeight() kernel.Weight { return l.availableWeight }
func (l *TravelerListing) IsActive() bool                 { return l.isActive }
func (l *TravelerListing) CreatedAt() time.Time           { return l.createdAt }

// DropOffDeadline is the last instant the sender may complete the origin drop-off.
func (l *TravelerListing) DropOffDeadline() time.Time {
	return l.departureTime.Add(-DropOffCutoff)
}

// HasDeparted reports whether the flight left before now.
func (l *TravelerListing) HasDeparted(now time.Time) bool {
	return !l.departureTime.After(now)
}

// Deactivate hides the listing from search and matching.
func (l *TravelerListing) Deactivate() {
	l.isActive = false
}

func (l *TravelerListing) setIDs(id, userID kernel.UUID) error {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return err
	}
	l.id = id
	l.userID = userID
	return nil
}

func (l *TravelerListing) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	l.route = route
	return nil
}

func (l *TravelerListing) setWeight(w kernel.Weight) error {
	if err := w.Validate(); err != nil {
		return err
	}
	l.availableWeight = w
	return nil
}

func (l *TravelerListing) setSchedule(departure, arrival, now time.Time) error {
	if err := l.setTimes(departure, arrival); err != nil {
		return err
	}
	if earliest := now.Add(MinimumLeadTime); departure.Before(earliest) {
		return errs.NewValueIsInvalidErrorWithCause(
			"departureTime",
			fmt.Errorf("departure time must be at least 24 hours from now (earliest %s)", earliest.Format(time.RFC3339)),
		)
	}
	return nil
}

func (l *TravelerListing) setTimes(departure, arrival time.Time) error {
	if departure.IsZero() {
		return errs.NewValueIsRequiredError("departureTime")
	}
	if arrival.IsZero() {
		return errs.NewValueIsRequiredError("arrivalTime")
	}
	if !arrival.After(departure) {
		return errs.NewValueIsInvalidErrorWithCause(
			"arrivalTime",
			errors.New("arrival time must be after departure time"),
		)
	}
	// Always UTC: stores compare these as text.
	l.departureTime = departure.UTC()
	l.arrivalTime = arrival.UTC()
	return nil
}
