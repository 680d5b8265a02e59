package invoicerepo_test

import (
	"context"
	"testing"
	"time"

	"lastmile/internal/adapters/out/postgres/invoicerepo"
	"lastmile/internal/core/domain/model/invoice"
	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type InvoiceRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *invoicerepo.GormInvoiceRepository
}

func (suite *InvoiceRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&invoicerepo.InvoiceDTO{})
	suite.Require().NoError(err)

	suite.repo = invoicerepo.NewGormInvoiceRepository(db, mockAggregateTracker{})
}

func (suite *InvoiceRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE invoices").Error
	suite.Require().NoError(err)
}

func (suite *InvoiceRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *InvoiceRepositoryTestSuite) newInvoice(orderID kernel.UUID) *invoice.Invoice {
	inv, err := invoice.NewInvoice(
		kernel.NewUUID(), orderID, "1790012345001",
		decimal.NewFromFloat(25.5), decimal.NewFromFloat(3.06), decimal.NewFromFloat(28.56),
	)
	suite.Require().NoError(err)
	return inv
}

func (suite *InvoiceRepositoryTestSuite) TestAddAndGetRoundTrip() {
	ctx := context.Background()
	inv := suite.newInvoice(kernel.NewUUID())

	suite.Require().NoError(suite.repo.Add(ctx, inv))

	got, err := suite.repo.Get(ctx, inv.ID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(inv.ID()))
	suite.True(got.OrderID().IsEqual(inv.OrderID()))
	suite.Equal("1790012345001", got.CustomerTaxID())
	suite.True(got.Subtotal().Equal(decimal.NewFromFloat(25.5)))
	suite.True(got.TaxAmount().Equal(decimal.NewFromFloat(3.06)))
	suite.True(got.Total().Equal(decimal.NewFromFloat(28.56)))
	suite.Equal(invoice.Draft, got.Status())
	suite.Nil(got.IssuedAt())
}

func (suite *InvoiceRepositoryTestSuite) TestAddSecondInvoiceForSameOrderFails() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repo.Add(ctx, suite.newInvoice(orderID)))

	err := suite.repo.Add(ctx, suite.newInvoice(orderID))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *InvoiceRepositoryTestSuite) TestGetByOrderID() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	inv := suite.newInvoice(orderID)

	suite.Require().NoError(suite.repo.Add(ctx, inv))

	got, err := suite.repo.GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(inv.ID()))

	_, err = suite.repo.GetByOrderID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InvoiceRepositoryTestSuite) TestUpdatePersistsIssuedInvoice() {
	ctx := context.Background()
	inv := suite.newInvoice(kernel.NewUUID())
	suite.Require().NoError(suite.repo.Add(ctx, inv))

	issuedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	suite.Require().NoError(inv.Issue(issuedAt))
	suite.Require().NoError(suite.repo.Update(ctx, inv))

	got, err := suite.repo.Get(ctx, inv.ID())
	suite.Require().NoError(err)
	suite.Equal(invoice.Issued, got.Status())
	suite.Require().NotNil(got.IssuedAt())
	suite.True(got.IssuedAt().Equal(issuedAt))
}

func (suite *InvoiceRepositoryTestSuite) TestUpdateMissingInvoiceFails() {
	ctx := context.Background()
	inv := suite.newInvoice(kernel.NewUUID())

	err := suite.repo.Update(ctx, inv)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InvoiceRepositoryTestSuite) TestGetMissingInvoiceFails() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *InvoiceRepositoryTestSuite) TestGetAllInDraftStatus() {
	ctx := context.Background()

	draft1 := suite.newInvoice(kernel.NewUUID())
	draft2 := suite.newInvoice(kernel.NewUUID())
	issued := suite.newInvoice(kernel.NewUUID())

	suite.Require().NoError(suite.repo.Add(ctx, draft1))
	suite.Require().NoError(suite.repo.Add(ctx, draft2))
	suite.Require().NoError(suite.repo.Add(ctx, issued))

	suite.Require().NoError(issued.Issue(time.Now().UTC()))
	suite.Require().NoError(suite.repo.Update(ctx, issued))

	drafts, err := suite.repo.GetAllInDraftStatus(ctx)
	suite.Require().NoError(err)
	suite.Len(drafts, 2)
	for _, inv := range drafts {
		suite.Equal(invoice.Draft, inv.Status())
	}
}

func TestInvoiceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryTestSuite))
}
