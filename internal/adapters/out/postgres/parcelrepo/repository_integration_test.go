package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelshift/internal/adapters/out/postgres/parcelrepo"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for
// ParcelRepository using PostgreSQL containers to verify persistence and
// guarded-write behavior.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()

	err := suite.repository.Add(ctx, testParcel)
	suite.Require().NoError(err)

	suite.assertParcelCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_ExistingParcel_ReturnsParcel() {
	ctx := context.Background()

	original := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal("sender@example.com", retrieved.CreatedBy())
	suite.Equal("books", retrieved.Title())
	suite.Equal("north", retrieved.SenderServiceCenter())
	suite.Equal("south", retrieved.ReceiverServiceCenter())
	suite.InDelta(120.0, retrieved.DeliveryCost(), 0.001)
	suite.Equal(parcel.Unpaid, retrieved.PaymentStatus())
	suite.Equal(parcel.NotCollected, retrieved.DeliveryStatus())
	suite.Nil(retrieved.AssignedRider())
	suite.False(retrieved.CashedOut())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NonExistentParcel_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_AssignRider_Success() {
	ctx := context.Background()

	original := suite.createPaidTestParcel()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	assigned, err := parcel.NewAssignedRider(kernel.NewUUID(), "Kamal", "kamal@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(original.AssignRider(assigned))

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.RiderAssigned, retrieved.DeliveryStatus())
	suite.Require().NotNil(retrieved.AssignedRider())
	suite.Equal("kamal@example.com", retrieved.AssignedRider().Email())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_LostAssignmentRace_ReturnsConflict() {
	ctx := context.Background()

	original := suite.createPaidTestParcel()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Two workflows load the same parcel.
	first, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	firstRider, err := parcel.NewAssignedRider(kernel.NewUUID(), "Kamal", "kamal@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(first.AssignRider(firstRider))
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second assignment finds the row already advanced.
	secondRider, err := parcel.NewAssignedRider(kernel.NewUUID(), "Rahim", "rahim@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(second.AssignRider(secondRider))

	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	// The winner's rider is still on the row.
	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal("kamal@example.com", retrieved.AssignedRider().Email())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_NonExistentParcel_ReturnsNotFound() {
	ctx := context.Background()

	ghost := suite.createTestParcel()

	err := suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetFirstAssignable_ReturnsOldestPaidParcel() {
	ctx := context.Background()

	unpaid := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", unpaid.ID(), unpaid).Once()
	suite.Require().NoError(suite.repository.Add(ctx, unpaid))

	older := suite.restoreParcelCreatedAt(time.Now().UTC().Add(-2 * time.Hour))
	suite.tracker.On("TrackAggregate", older.ID(), older).Once()
	suite.Require().NoError(suite.repository.Add(ctx, older))

	newer := suite.restoreParcelCreatedAt(time.Now().UTC().Add(-1 * time.Hour))
	suite.tracker.On("TrackAggregate", newer.ID(), newer).Once()
	suite.Require().NoError(suite.repository.Add(ctx, newer))

	first, err := suite.repository.GetFirstAssignable(ctx)
	suite.Require().NoError(err)
	suite.True(older.ID().IsEqual(first.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetFirstAssignable_NothingWaiting_ReturnsNotFound() {
	ctx := context.Background()

	first, err := suite.repository.GetFirstAssignable(ctx)
	suite.Nil(first)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetAllSettleable_ReturnsDeliveredUnflagged() {
	ctx := context.Background()

	delivered := suite.restoreDeliveredParcel("kamal@example.com", false)
	suite.tracker.On("TrackAggregate", delivered.ID(), delivered).Once()
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	flagged := suite.restoreDeliveredParcel("kamal@example.com", true)
	suite.tracker.On("TrackAggregate", flagged.ID(), flagged).Once()
	suite.Require().NoError(suite.repository.Add(ctx, flagged))

	otherRider := suite.restoreDeliveredParcel("rahim@example.com", false)
	suite.tracker.On("TrackAggregate", otherRider.ID(), otherRider).Once()
	suite.Require().NoError(suite.repository.Add(ctx, otherRider))

	settleable, err := suite.repository.GetAllSettleable(ctx, "kamal@example.com")
	suite.Require().NoError(err)
	suite.Require().Len(settleable, 1)
	suite.True(delivered.ID().IsEqual(settleable[0].ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_ExistingParcel_Success() {
	ctx := context.Background()

	testParcel := suite.createTestParcel()
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	suite.Require().NoError(suite.repository.Delete(ctx, testParcel.ID()))
	suite.assertParcelCount(0)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_NonExistentParcel_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"sender@example.com",
		"books",
		"north",
		"south",
		120.0,
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) createPaidTestParcel() *parcel.Parcel {
	p := suite.createTestParcel()
	suite.Require().NoError(p.MarkPaid())
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) restoreParcelCreatedAt(
	createdAt time.Time,
) *parcel.Parcel {
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(),
		"sender@example.com",
		"books",
		"north",
		"south",
		120.0,
		parcel.Paid,
		parcel.NotCollected,
		nil,
		false,
		createdAt,
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) restoreDeliveredParcel(
	riderEmail string,
	cashedOut bool,
) *parcel.Parcel {
	assigned, err := parcel.NewAssignedRider(kernel.NewUUID(), "Rider", riderEmail)
	suite.Require().NoError(err)

	p, err := parcel.RestoreParcel(
		kernel.NewUUID(),
		"sender@example.com",
		"books",
		"north",
		"south",
		100.0,
		parcel.Paid,
		parcel.Delivered,
		&assigned,
		cashedOut,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) assertParcelCount(expected int) {
	var count int64
	err := suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
