package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/paymentrepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
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

// PaymentRepositoryIntegrationTestSuite provides integration tests for
// GormPaymentRepository, including the storage-level one-active-attempt rule.
type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *paymentrepo.GormPaymentRepository
	tracker    *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&paymentrepo.PaymentDTO{}))
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE payments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = paymentrepo.NewGormPaymentRepository(suite.db, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()

	attempt := suite.createCardPayment(kernel.NewUUID(), 2400)
	suite.tracker.On("TrackAggregate", attempt.ID(), attempt).Once()

	suite.Require().NoError(suite.repository.Add(ctx, attempt))

	retrieved, err := suite.repository.Get(ctx, attempt.ID())
	suite.Require().NoError(err)

	suite.Equal(attempt.ID(), retrieved.ID())
	suite.Equal(attempt.OrderID(), retrieved.OrderID())
	suite.Equal(payment.Card, retrieved.Method())
	suite.Equal(payment.Processing, retrieved.Status())
	suite.True(attempt.Amount().IsEqual(retrieved.Amount()))
	suite.True(retrieved.RefundedAmount().IsZero())
	suite.Empty(retrieved.TransactionID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_SecondActiveAttempt_ReturnsDuplicateError() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	first := suite.createCardPayment(orderID, 2400)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// The handler-level ledger check can miss a concurrent insert; the
	// partial unique index is the last line of defense.
	second := suite.createCardPayment(orderID, 2400)
	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, payment.ErrDuplicateActivePayment)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_AfterFailedAttempt_Succeeds() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	first := suite.createCardPayment(orderID, 2400)
	suite.Require().NoError(first.Settle(payment.Failed, "txn-1"))
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createCardPayment(orderID, 2400)
	suite.Require().NoError(suite.repository.Add(ctx, second))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_PersistsSettlementColumns() {
	ctx := context.Background()

	attempt := suite.createCardPayment(kernel.NewUUID(), 2400)
	suite.tracker.On("TrackAggregate", attempt.ID(), attempt).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, attempt))

	suite.Require().NoError(attempt.Settle(payment.Completed, "txn-100"))
	suite.Require().NoError(suite.repository.Update(ctx, attempt))

	retrieved, err := suite.repository.Get(ctx, attempt.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.Completed, retrieved.Status())
	suite.Equal("txn-100", retrieved.TransactionID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_PersistsRefundAccounting() {
	ctx := context.Background()

	attempt := suite.createCardPayment(kernel.NewUUID(), 2400)
	suite.Require().NoError(attempt.Settle(payment.Completed, "txn-100"))
	suite.tracker.On("TrackAggregate", attempt.ID(), attempt).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, attempt))

	refund, err := kernel.NewMoneyFromInt(400)
	suite.Require().NoError(err)
	suite.Require().NoError(attempt.Refund(refund))
	suite.Require().NoError(suite.repository.Update(ctx, attempt))

	retrieved, err := suite.repository.Get(ctx, attempt.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.PartiallyRefunded, retrieved.Status())
	suite.True(refund.IsEqual(retrieved.RefundedAmount()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGet_NonExistentPayment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetAllByOrder_ReturnsLedgerOldestFirst() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	first := suite.createCardPayment(orderID, 2400)
	suite.Require().NoError(first.Settle(payment.Failed, "txn-1"))
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createCardPayment(orderID, 2400)
	suite.Require().NoError(second.Settle(payment.Failed, "txn-2"))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	// Unrelated order; must not appear in the ledger.
	other := suite.createCardPayment(kernel.NewUUID(), 900)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	ledger, err := suite.repository.GetAllByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(ledger, 2)
	suite.Equal(first.ID(), ledger[0].ID())
	suite.Equal(second.ID(), ledger[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetAllStaleProcessing_HonorsCutoff() {
	ctx := context.Background()

	stale := suite.createCardPayment(kernel.NewUUID(), 2400)
	fresh := suite.createCardPayment(kernel.NewUUID(), 900)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	// Age the first attempt past the cutoff.
	agedAt := time.Now().Add(-time.Hour)
	suite.Require().NoError(suite.db.Model(&paymentrepo.PaymentDTO{}).
		Where("id = ?", stale.ID().Bytes()).
		Update("created_at", agedAt).Error)

	cutoff := time.Now().Add(-30 * time.Minute)
	found, err := suite.repository.GetAllStaleProcessing(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(stale.ID(), found[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createCardPayment builds a processing card attempt for the given order.
func (suite *PaymentRepositoryIntegrationTestSuite) createCardPayment(
	orderID kernel.UUID, amount int64,
) *payment.Payment {
	money, err := kernel.NewMoneyFromInt(amount)
	suite.Require().NoError(err)

	attempt, err := payment.NewPayment(kernel.NewUUID(), orderID, payment.Card, money)
	suite.Require().NoError(err)
	return attempt
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
