//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"parkreserve/internal/infra"
	"parkreserve/internal/usecase/commands"
	"parkreserve/internal/usecase/queries"
	"parkreserve/tests/common/builder"
	"parkreserve/tests/common/dbtest"
	commandsmock "parkreserve/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	reservationRepo *commandsmock.MockReservationRepository
	gateway         *commandsmock.MockPaymentGateway
	paymentCommands commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.reservationRepo = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.paymentCommands = commands.NewPaymentCommands(s.reservationRepo, s.gateway, &dbtest.StubUnitOfWork{}, "inr")
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) TestCreateIntent() {
	ctx := context.Background()

	s.Run("success: charges the stored price in minor units", func() {
		b := builder.NewReservationBuilder()
		entity := b.BuildReconstructed()

		s.reservationRepo.EXPECT().
			FindOwnedForUpdate(gomock.Any(), gomock.Any(), b.ID, b.UserID).
			Return(entity, nil)
		s.gateway.EXPECT().
			CreateIntent(gomock.Any(), int64(10000), "inr", map[string]string{
				"reservation_id": b.ID.String(),
				"user_id":        b.UserID.String(),
			}).
			Return(&commands.PaymentIntent{
				ID:           "pi_test_123",
				ClientSecret: "pi_test_123_secret",
				Status:       "requires_payment_method",
				AmountMinor:  10000,
				Currency:     "inr",
			}, nil)

		result, err := s.paymentCommands.CreateIntent(ctx, b.UserID, commands.CreateIntentInput{ReservationID: b.ID})
		s.Require().NoError(err)
		s.Equal("pi_test_123", result.PaymentIntentID)
		s.Equal("pi_test_123_secret", result.ClientSecret)
		s.Equal(int64(10000), result.AmountMinor)
		s.Equal("inr", result.Currency)
	})

	s.Run("error: reservation not found", func() {
		b := builder.NewReservationBuilder()

		s.reservationRepo.EXPECT().
			FindOwnedForUpdate(gomock.Any(), gomock.Any(), b.ID, b.UserID).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.paymentCommands.CreateIntent(ctx, b.UserID, commands.CreateIntentInput{ReservationID: b.ID})
		s.ErrorIs(err, queries.ErrReservationNotFound)
	})

	s.Run("error: already paid reservation", func() {
		b := builder.NewReservationBuilder()
		entity := b.AsActive().BuildReconstructed()

		s.reservationRepo.EXPECT().
			FindOwnedForUpdate(gomock.Any(), gomock.Any(), b.ID, b.UserID).
			Return(entity, nil)

		_, err := s.paymentCommands.CreateIntent(ctx, b.UserID, commands.CreateIntentInput{ReservationID: b.ID})
		s.ErrorIs(err, commands.ErrNotPayable)
	})

	s.Run("error: provider failure", func() {
		b := builder.NewReservationBuilder()
		entity := b.BuildReconstructed()

		s.reservationRepo.EXPECT().
			FindOwnedForUpdate(gomock.Any(), gomock.Any(), b.ID, b.UserID).
			Return(entity, nil)
		s.gateway.EXPECT().
			CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stripe: timeout"))

		_, err := s.paymentCommands.CreateIntent(ctx, b.UserID, commands.CreateIntentInput{ReservationID: b.ID})
		s.ErrorIs(err, commands.ErrPaymentProviderFailure)
	})
}
