package matchrepo

import (
	"context"
	"errors"
	"fmt"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"
	"luggage/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormMatchRepository implements ports.MatchRepository.
type GormMatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormMatchRepository(db *gorm.DB, tracker aggregateTracker) *GormMatchRepository {
	return &GormMatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddIfAbsent relies on idx_match_pair: a conflicting insert affects no rows.
func (r *GormMatchRepository) AddIfAbsent(ctx context.Context, aggregate *match.Match) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "traveler_listing_id"}, {Name: "sender_listing_id"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

func (r *GormMatchRepository) Get(ctx context.Context, id kernel.UUID) (*match.Match, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("match", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update writes status, checkpoints and updatedAt, bumping the version. The
// row must still carry the version the aggregate was loaded with.
func (r *GormMatchRepository) Update(ctx context.Context, aggregate *match.Match) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MatchDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":                         dto.Status,
			"drop_off_completed":             dto.DropOffCompleted,
			"pick_up_completed":              dto.PickUpCompleted,
			"destination_drop_off_completed": dto.DestinationDropOffCompleted,
			"destination_pick_up_completed":  dto.DestinationPickUpCompleted,
			"updated_at":                     dto.UpdatedAt,
			"version":                        gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError(
			"match",
			fmt.Errorf("match %s changed since version %d was read", aggregate.ID(), dto.Version),
		)
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GormIssueReportRepository implements ports.IssueReportRepository.
type GormIssueReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormIssueReportRepository(db *gorm.DB, tracker aggregateTracker) *GormIssueReportRepository {
	return &GormIssueReportRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormIssueReportRepository) Add(ctx context.Context, report *match.IssueReport) error {
	if report == nil {
		return errs.NewValueIsRequiredError("issueReport")
	}

	dto := issueFromDomain(report)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(report.ID(), report)
	return nil
}
