package riderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/riderrepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/rider"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RiderRepositoryIntegrationTestSuite provides integration tests for
// GormRiderRepository, in particular the claim under contention.
type RiderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *riderrepo.GormRiderRepository
	tracker    *MockAggregateTracker
}

func (suite *RiderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&riderrepo.RiderDTO{}))
}

func (suite *RiderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE riders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = riderrepo.NewGormRiderRepository(suite.db, suite.tracker)
}

func (suite *RiderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RiderRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()

	testRider := suite.createAvailableRider("Nurlan")
	suite.tracker.On("TrackAggregate", testRider.ID(), testRider).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testRider))

	retrieved, err := suite.repository.Get(ctx, testRider.ID())
	suite.Require().NoError(err)

	suite.Equal(testRider.ID(), retrieved.ID())
	suite.Equal("Nurlan", retrieved.Name())
	suite.Equal(rider.VehicleMotorbike, retrieved.Vehicle())
	suite.Equal(rider.Available, retrieved.Availability())
	suite.Nil(retrieved.ActiveOrderID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGet_NonExistentRider_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestClaimAvailable_AvailableRider_BecomesBusy() {
	ctx := context.Background()

	testRider := suite.createAvailableRider("Nurlan")
	suite.tracker.On("TrackAggregate", testRider.ID(), testRider).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testRider))

	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.ClaimAvailable(ctx, testRider.ID(), orderID))

	retrieved, err := suite.repository.Get(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.Equal(rider.Busy, retrieved.Availability())
	suite.Require().NotNil(retrieved.ActiveOrderID())
	suite.Equal(orderID, *retrieved.ActiveOrderID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestClaimAvailable_BusyRider_ReturnsUnavailable() {
	ctx := context.Background()

	testRider := suite.createAvailableRider("Nurlan")
	suite.tracker.On("TrackAggregate", testRider.ID(), testRider).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testRider))

	suite.Require().NoError(suite.repository.ClaimAvailable(ctx, testRider.ID(), kernel.NewUUID()))

	err := suite.repository.ClaimAvailable(ctx, testRider.ID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, rider.ErrRiderUnavailable)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestClaimAvailable_NonExistentRider_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.ClaimAvailable(ctx, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestClaimAvailable_ConcurrentClaims_ExactlyOneWins() {
	ctx := context.Background()

	testRider := suite.createAvailableRider("Nurlan")
	suite.tracker.On("TrackAggregate", testRider.ID(), testRider).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testRider))

	const claimers = 8
	results := make([]error, claimers)

	var wg sync.WaitGroup
	for i := range claimers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = suite.repository.ClaimAvailable(ctx, testRider.ID(), kernel.NewUUID())
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			suite.Require().ErrorIs(err, rider.ErrRiderUnavailable)
		}
	}
	suite.Equal(1, winners)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestUpdate_Release_ClearsActiveOrder() {
	ctx := context.Background()

	testRider := suite.createAvailableRider("Nurlan")
	suite.tracker.On("TrackAggregate", testRider.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testRider))

	suite.Require().NoError(suite.repository.ClaimAvailable(ctx, testRider.ID(), kernel.NewUUID()))

	claimed, err := suite.repository.Get(ctx, testRider.ID())
	suite.Require().NoError(err)

	claimed.Release()
	suite.Require().NoError(suite.repository.Update(ctx, claimed))

	retrieved, err := suite.repository.Get(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.Equal(rider.Available, retrieved.Availability())
	suite.Nil(retrieved.ActiveOrderID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGetAll_ReturnsWholeFleet() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	for _, name := range []string{"Nurlan", "Aruzhan", "Bekzat"} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createAvailableRider(name)))
	}

	riders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(riders, 3)

	suite.tracker.AssertExpectations(suite.T())
}

// createAvailableRider builds an available motorbike rider.
func (suite *RiderRepositoryIntegrationTestSuite) createAvailableRider(name string) *rider.Rider {
	testRider, err := rider.NewRider(kernel.NewUUID(), name, rider.VehicleMotorbike)
	suite.Require().NoError(err)
	return testRider
}

func TestRiderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RiderRepositoryIntegrationTestSuite))
}
