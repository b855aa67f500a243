// Package matchrepo persists matches and the issue reports filed against them.
package matchrepo

import (
	"time"

	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/domain/model/match"

	"github.com/google/uuid"
)

// MatchDTO is a matches row. The pair of listing ids is unique so concurrent
// matching runs cannot insert the same pairing twice.
type MatchDTO struct {
	ID                          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TravelerListingID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair"`
	SenderListingID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_match_pair"`
	TravelerID                  uuid.UUID `gorm:"type:uuid;index;not null"`
	SenderID                    uuid.UUID `gorm:"type:uuid;index;not null"`
	ReceiverID                  uuid.UUID `gorm:"type:uuid;index;not null"`
	Status                      int       `gorm:"not null"`
	DropOffCompleted            bool      `gorm:"not null"`
	PickUpCompleted             bool      `gorm:"not null"`
	DestinationDropOffCompleted bool      `gorm:"not null"`
	DestinationPickUpCompleted  bool      `gorm:"not null"`
	CreatedAt                   time.Time `gorm:"index;not null"`
	UpdatedAt                   time.Time `gorm:"not null"`
	Version                     int       `gorm:"not null;default:0"`
}

func (MatchDTO) TableName() string {
	return "matches"
}

// IssueReportDTO is an issue_reports row.
type IssueReportDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	MatchID      uuid.UUID `gorm:"type:uuid;index;not null"`
	ReportedByID uuid.UUID `gorm:"type:uuid;not null"`
	Description  string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (IssueReportDTO) TableName() string {
	return "issue_reports"
}

func fromDomain(m *match.Match) MatchDTO {
	c := m.Checkpoints()
	return MatchDTO{
		ID:                          m.ID().Bytes(),
		TravelerListingID:           m.TravelerListingID().Bytes(),
		SenderListingID:             m.SenderListingID().Bytes(),
		TravelerID:                  m.TravelerID().Bytes(),
		SenderID:                    m.SenderID().Bytes(),
		ReceiverID:                  m.ReceiverID().Bytes(),
		Status:                      int(m.Status()),
		DropOffCompleted:            c.DropOff,
		PickUpCompleted:             c.PickUp,
		DestinationDropOffCompleted: c.DestinationDropOff,
		DestinationPickUpCompleted:  c.DestinationPickUp,
		CreatedAt:                   m.CreatedAt().UTC(),
		UpdatedAt:                   m.UpdatedAt().UTC(),
		Version:                     m.Version(),
	}
}

func toDomain(dto MatchDTO) (*match.Match, error) {
	raw := []uuid.UUID{
		dto.ID, dto.TravelerListingID, dto.SenderListingID,
		dto.TravelerID, dto.SenderID, dto.ReceiverID,
	}
	ids := make([]kernel.UUID, len(raw))
	for i, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return match.RestoreMatch(
		ids[0], ids[1], ids[2],
		match.Participants{TravelerID: ids[3], SenderID: ids[4], ReceiverID: ids[5]},
		match.Status(dto.Status),
		match.Checkpoints{
			DropOff:            dto.DropOffCompleted,
			PickUp:             dto.PickUpCompleted,
			DestinationDropOff: dto.DestinationDropOffCompleted,
			DestinationPickUp:  dto.DestinationPickUpCompleted,
		},
		dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)
}

func issueFromDomain(r *match.IssueReport) IssueReportDTO {
	return IssueReportDTO{
		ID:           r.ID().Bytes(),
		MatchID:      r.MatchID().Bytes(),
		ReportedByID: r.ReportedByID().Bytes(),
		Description:  r.Description(),
		CreatedAt:    r.CreatedAt(),
	}
}
