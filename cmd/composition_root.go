package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	api "luggage/internal/adapters/in/http"
	"luggage/internal/adapters/out/airports"
	"luggage/internal/adapters/out/auth"
	"luggage/internal/adapters/out/notify"
	"luggage/internal/adapters/out/postgres"
	"luggage/internal/adapters/out/redis"
	"luggage/internal/core/application/usecases/commands"
	"luggage/internal/core/application/usecases/queries"
	"luggage/internal/core/domain/model/kernel"
	"luggage/internal/core/ports"
	"luggage/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	logger     *slog.Logger

	notifications *notify.Dispatcher
	tokens        *auth.JWTTokenService
	hasher        *auth.BcryptHasher
	airports      *airports.StaticCatalog
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	sender ports.NotificationSender,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	clock := kernel.SystemClock{}

	tokens, err := auth.NewJWTTokenService(configs.JWTSecret, configs.JWTTTL, clock)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs:       configs,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:         clock,
		logger:        logger,
		notifications: notify.NewDispatcher(sender, configs.NotifyWorkers, configs.NotifyBuffer, logger),
		tokens:        tokens,
		hasher:        auth.NewBcryptHasher(bcrypt.DefaultCost),
		airports:      airports.NewStaticCatalog(),
	}, nil
}

func (c *CompositionRoot) Notifications() *notify.Dispatcher {
	return c.notifications
}

func (c *CompositionRoot) TokenVerifier() ports.TokenVerifier {
	return c.tokens
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) listingUoWFactory() commands.ListingUoWFactory {
	return FuncListingUoWFactory(func() commands.ListingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) matchingUoWFactory() commands.MatchingUoWFactory {
	return FuncMatchingUoWFactory(func() commands.MatchingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) matchUoWFactory() commands.MatchUoWFactory {
	return FuncMatchUoWFactory(func() commands.MatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens, c.clock)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateMatchFromTravelerListingCommandHandler() commands.MatchFromTravelerListingCommandHandler {
	return commands.NewMatchFromTravelerListingCommandHandler(c.matchingUoWFactory(), c.notifications, c.clock, c.logger)
}

func (c *CompositionRoot) CreateMatchFromSenderListingCommandHandler() commands.MatchFromSenderListingCommandHandler {
	return commands.NewMatchFromSenderListingCommandHandler(c.matchingUoWFactory(), c.notifications, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCreateTravelerListingCommandHandler() commands.CreateTravelerListingCommandHandler {
	return commands.NewCreateTravelerListingCommandHandler(
		c.listingUoWFactory(),
		c.CreateMatchFromTravelerListingCommandHandler(),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreateSenderListingCommandHandler() commands.CreateSenderListingCommandHandler {
	return commands.NewCreateSenderListingCommandHandler(
		c.listingUoWFactory(),
		c.CreateMatchFromSenderListingCommandHandler(),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateTransitionMatchCommandHandler() commands.TransitionMatchCommandHandler {
	return commands.NewTransitionMatchCommandHandler(c.matchUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateMatchStatusCommandHandler() commands.UpdateMatchStatusCommandHandler {
	return commands.NewUpdateMatchStatusCommandHandler(c.matchUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	return commands.NewReportIssueCommandHandler(c.matchUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateExpireListingsCommandHandler() commands.ExpireListingsCommandHandler {
	return commands.NewExpireListingsCommandHandler(c.listingUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMyTravelerListingsQueryHandler() queries.GetMyTravelerListingsQueryHandler {
	return queries.NewGetMyTravelerListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMySenderListingsQueryHandler() queries.GetMySenderListingsQueryHandler {
	return queries.NewGetMySenderListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchListingsQueryHandler() queries.SearchListingsQueryHandler {
	return queries.NewSearchListingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMatchesQueryHandler() queries.GetMatchesQueryHandler {
	return queries.NewGetMatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchAirportsQueryHandler() queries.SearchAirportsQueryHandler {
	return queries.NewSearchAirportsQueryHandler(c.airports)
}

func (c *CompositionRoot) CreateLookupFlightQueryHandler() queries.LookupFlightQueryHandler {
	return queries.NewLookupFlightQueryHandler(c.clock)
}

// Handlers collects every use case served over HTTP.
func (c *CompositionRoot) Handlers() api.Handlers {
	return api.Handlers{
		RegisterUser:          c.CreateRegisterUserCommandHandler(),
		Login:                 c.CreateLoginCommandHandler(),
		CreateTravelerListing: c.CreateCreateTravelerListingCommandHandler(),
		CreateSenderListing:   c.CreateCreateSenderListingCommandHandler(),
		TransitionMatch:       c.CreateTransitionMatchCommandHandler(),
		UpdateMatchStatus:     c.CreateUpdateMatchStatusCommandHandler(),
		ReportIssue:           c.CreateReportIssueCommandHandler(),

		GetUser:               c.CreateGetUserQueryHandler(),
		GetMyTravelerListings: c.CreateGetMyTravelerListingsQueryHandler(),
		GetMySenderListings:   c.CreateGetMySenderListingsQueryHandler(),
		SearchListings:        c.CreateSearchListingsQueryHandler(),
		GetMatches:            c.CreateGetMatchesQueryHandler(),
		SearchAirports:        c.CreateSearchAirportsQueryHandler(),
		LookupFlight:          c.CreateLookupFlightQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireListingsCommandHandler(), c.logger)
}

// CreateAuthRateLimitStore shares counters through Redis when it is
// configured and falls back to a per-process store otherwise. The returned
// func releases the Redis client.
func (c *CompositionRoot) CreateAuthRateLimitStore(ctx context.Context) (middleware.RateLimiterStore, func(), error) {
	limit := c.configs.AuthRateLimit
	if limit <= 0 {
		return nil, func() {}, nil
	}

	if c.configs.RedisAddr == "" {
		store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(limit) / time.Minute.Seconds()),
			Burst:     limit,
			ExpiresIn: 3 * time.Minute,
		})
		return store, func() {}, nil
	}

	client, err := redis.NewClient(ctx, c.configs.RedisAddr, c.configs.RedisPassword)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return redis.NewRateLimiter(client, int64(limit), time.Minute), func() { _ = client.Close() }, nil
}

// CreateRouter builds the HTTP API.
func (c *CompositionRoot) CreateRouter(rateLimit middleware.RateLimiterStore) (*echo.Echo, error) {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return nil, err
	}

	return api.NewRouter(api.NewServer(c.Handlers(), c.logger), api.RouterConfig{
		Verifier:      c.tokens,
		AuthRateLimit: rateLimit,
		Database:      sqlDB,
		Logger:        c.logger,
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncListingUoWFactory func() commands.ListingUoW

func (f FuncListingUoWFactory) Create() commands.ListingUoW {
	return f()
}

type FuncMatchingUoWFactory func() commands.MatchingUoW

func (f FuncMatchingUoWFactory) Create() commands.MatchingUoW {
	return f()
}

type FuncMatchUoWFactory func() commands.MatchUoW

func (f FuncMatchUoWFactory) Create() commands.MatchUoW {
	return f()
}
