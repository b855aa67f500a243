package listingrepo

import (
	"context"
	"errors"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/listing"
	"luggage/internal/core/ports"
	"luggage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSenderListingRepository implements ports.SenderListingRepository.
type GormSenderListingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormSenderListingRepository(db *gorm.DB, tracker aggregateTracker) *GormSenderListingRepository {
	return &GormSenderListingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormSenderListingRepository) Add(ctx context.Context, aggregate *listing.SenderListing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := senderFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSenderListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.SenderListing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SenderListingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("senderListing", id.String())
		}
		return nil, err
	}

	return senderToDomain(dto)
}

func (r *GormSenderListingRepository) FindCandidates(
	ctx context.Context,
	c ports.SenderCandidates,
) ([]*listing.SenderListing, error) {
	var dtos []SenderListingDTO
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("origin_airport = ? AND destination_airport = ?",
			c.Route.Origin().String(), c.Route.Destination().String()).
		Where("package_weight <= ?", c.MaxWeight.Kilograms()).
		Where("user_id <> ?", c.ExcludeUserID.Bytes()).
		Where("created_at <= ?", c.CreatedUntil.UTC()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]*listing.SenderListing, 0, len(dtos))
	for _, dto := range dtos {
		l, convErr := senderToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, l)
	}

	return result, nil
}
