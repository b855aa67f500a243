// Package postgres implements ports.UnitOfWork on top of GORM.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// after Begin share that transaction; before Begin they use the plain
// connection. Every aggregate a repository writes is tracked so callers can
// inspect what a committed transaction touched.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if _, err := uow.MatchRepository().AddIfAbsent(ctx, m); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and is
// safe to ignore.
package postgres

import (
	"context"

	"luggage/internal/adapters/out/postgres/listingrepo"
	"luggage/internal/adapters/out/postgres/matchrepo"
	"luggage/internal/adapters/out/postgres/userrepo"
	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during the unit of work.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// Models lists every table DTO, in migration order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&listingrepo.TravelerListingDTO{},
		&listingrepo.SenderListingDTO{},
		&matchrepo.MatchDTO{},
		&matchrepo.IssueReportDTO{},
	}
}

// GormUnitOfWorkFactory creates one GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork is not safe for concurrent use.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TravelerListingRepository() ports.TravelerListingRepository {
	return listingrepo.NewGormTravelerListingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SenderListingRepository() ports.SenderListingRepository {
	return listingrepo.NewGormSenderListingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MatchRepository() ports.MatchRepository {
	return matchrepo.NewGormMatchRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) IssueReportRepository() ports.IssueReportRepository {
	return matchrepo.NewGormIssueReportRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns what was written since the last rollback.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return append([]TrackedAggregate(nil), uow.trackedAggregates...)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
