package listing

import (
	"errors"
	"strings"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/user"
	"luggage/internal/pkg/errs"
)

// ErrSenderListingIsNotConstructed is returned for a listing built outside its constructors.
var ErrSenderListingIsNotConstructed = errors.New(
	"SenderListing must be created via NewSenderListing constructor")

// SenderListing describes a package waiting for a traveler.
type SenderListing struct {
	id            kernel.UUID
	userID        kernel.UUID
	receiverID    *kernel.UUID
	receiverEmail string
	route         kernel.Route
	packageWeight kernel.Weight
	packageType   PackageType
	description   string
	isActive      bool
	createdAt     time.Time

	isConstructed bool
}

// NewSenderListing validates a new package listing. receiverID is the
// already-resolved account behind receiverEmail and must differ from the sender.
func NewSenderListing(
	id, userID, receiverID kernel.UUID,
	receiverEmail string,
	route kernel.Route,
	packageWeight kernel.Weight,
	packageType PackageType,
	description string,
	now time.Time,
) (*SenderListing, error) {
	l := &SenderListing{
		isActive:      true,
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setIDs(id, userID),
		l.setReceiver(userID, receiverID, receiverEmail),
		l.setRoute(route),
		l.setWeight(packageWeight),
		l.setPackageType(packageType),
		l.setDescription(description),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreSenderListing rebuilds a persisted listing. receiverID may be nil for
// rows written before the receiver became mandatory; the matcher skips those.
func RestoreSenderListing(
	id, userID kernel.UUID,
	receiverID *kernel.UUID,
	receiverEmail string,
	route kernel.Route,
	packageWeight kernel.Weight,
	packageType PackageType,
	description string,
	isActive bool,
	createdAt time.Time,
) (*SenderListing, error) {
	l := &SenderListing{
		receiverEmail: receiverEmail,
		description:   description,
		packageType:   packageType,
		isActive:      isActive,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if receiverID != nil {
		if err := receiverID.Validate(); err != nil {
			return nil, err
		}
		rid := *receiverID
		l.receiverID = &rid
	}

	if err := errors.Join(
		l.setIDs(id, userID),
		l.setRoute(route),
		l.setWeight(packageWeight),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *SenderListing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrSenderListingIsNotConstructed
	}
	return nil
}

func (l *SenderListing) ID() kernel.UUID              { return l.id }
func (l *SenderListing) UserID() kernel.UUID          { return l.userID }
func (l *SenderListing) ReceiverEmail() string        { return l.receiverEmail }
func (l *SenderListing) Route() kernel.Route          { return l.route }
func (l *SenderListing) PackageWeight() kernel.Weight { return l.packageWeight }
func (l *SenderListing) PackageType() PackageType     { return l.packageType }
func (l *SenderListing) Description() string          { return l.description }
func (l *SenderListing) IsActive() bool               { return l.isActive }
func (l *SenderListing) CreatedAt() time.Time         { return l.createdAt }

// ReceiverID returns the receiver and whether one is recorded.
func (l *SenderListing) ReceiverID() (kernel.UUID, bool) {
	if l.receiverID == nil {
		return kernel.UUID{}, false
	}
	return *l.receiverID, true
}

func (l *SenderListing) setIDs(id, userID kernel.UUID) error {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return err
	}
	l.id = id
	l.userID = userID
	return nil
}

func (l *SenderListing) setReceiver(senderID, receiverID kernel.UUID, email string) error {
	if err := user.ValidateEmail("receiverEmail", email); err != nil {
		return err
	}
	if err := receiverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiverId", err)
	}
	if receiverID.IsEqual(senderID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"receiverEmail",
			errors.New("receiver must be a different user than the sender"),
		)
	}
	l.receiverID = &receiverID
	l.receiverEmail = user.NormalizeEmail(email)
	return nil
}

func (l *SenderListing) setRoute(route kernel.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	l.route = route
	return nil
}

func (l *SenderListing) setWeight(w kernel.Weight) error {
	if err := w.Validate(); err != nil {
		return err
	}
	l.packageWeight = w
	return nil
}

func (l *SenderListing) setPackageType(t PackageType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	l.packageType = t
	return nil
}

func (l *SenderListing) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	l.description = description
	return nil
}
