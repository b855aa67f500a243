package listingrepo

import (
	"context"
	"errors"
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/ports"
	"luggage/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormTravelerListingRepository implements ports.TravelerListingRepository.
type GormTravelerListingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormTravelerListingRepository(db *gorm.DB, tracker aggregateTracker) *GormTravelerListingRepository {
	return &GormTravelerListingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTravelerListingRepository) Add(ctx context.Context, aggregate *listing.TravelerListing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := travelerFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTravelerListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.TravelerListing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TravelerListingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("travelerListing", id.String())
		}
		return nil, err
	}

	return travelerToDomain(dto)
}

func (r *GormTravelerListingRepository) FindCandidates(
	ctx context.Context,
	c ports.TravelerCandidates,
) ([]*listing.TravelerListing, error) {
	var dtos []TravelerListingDTO
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("origin_airport = ? AND destination_airport = ?",
			c.Route.Origin().String(), c.Route.Destination().String()).
		Where("available_weight >= ?", c.MinWeight.Kilograms()).
		Where("user_id <> ?", c.ExcludeUserID.Bytes()).
		Where("departure_time >= ?", c.DepartsFrom.UTC()).
		Order("departure_time ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]*listing.TravelerListing, 0, len(dtos))
	for _, dto := range dtos {
		l, convErr := travelerToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, l)
	}

	return result, nil
}

func (r *GormTravelerListingRepository) DeactivateDeparted(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&TravelerListingDTO{}).
		Where("is_active = ? AND departure_time < ?", true, now.UTC()).
		Update("is_active", false)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
